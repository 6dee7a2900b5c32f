package extract

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sblando/words-cloud/internal/samples"
)

func TestText_PlainFormats(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
	}{
		{"notes.txt", "plain text body"},
		{"readme.md", "# Heading\n\nmarkdown body"},
		{"longform.markdown", "more markdown"},
		{"SHOUTY.TXT", "upper case extension"},
	}
	for _, tc := range cases {
		path := filepath.Join(dir, tc.name)
		if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		got, err := Text(path)
		if err != nil {
			t.Fatalf("Text(%s): %v", tc.name, err)
		}
		if got != tc.content {
			t.Errorf("Text(%s) = %q, want %q", tc.name, got, tc.content)
		}
	}
}

func TestText_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	if err := os.WriteFile(path, []byte("not really a spreadsheet"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := Text(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestText_EmptyFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.txt")
	if err := os.WriteFile(path, []byte("  \n\t\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := Text(path)
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestText_MissingFile(t *testing.T) {
	if _, err := Text(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestText_PDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.pdf")
	if err := samples.WritePDF(path, []string{"alpha beta gamma alpha"}); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(got, "alpha beta gamma alpha") {
		t.Fatalf("extracted text %q does not contain the page line", got)
	}
}

func TestText_PDFCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 garbage without a body"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Text(path); err == nil {
		t.Fatal("expected an error for a corrupt PDF")
	}
}

func TestText_DOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.docx")
	if err := samples.WriteDOCX(path, []string{"alpha", "beta gamma"}); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if fields := strings.Fields(got); !reflect.DeepEqual(fields, want) {
		t.Fatalf("extracted words = %v, want %v", fields, want)
	}
	// Paragraph boundary must survive as whitespace, not run words together.
	if strings.Contains(got, "alphabeta") {
		t.Fatalf("paragraphs ran together in %q", got)
	}
}

func TestText_DOCXUnescapesEntities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.docx")
	if err := samples.WriteDOCX(path, []string{"R&D <results>"}); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(got, "R&D <results>") {
		t.Fatalf("entities not unescaped in %q", got)
	}
}

func TestText_DOCXCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("PK garbage, not a zip"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Text(path); err == nil {
		t.Fatal("expected an error for a corrupt DOCX")
	}
}

func TestText_HTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	page := `<html><body><nav>skip me</nav><main><p>kept paragraph</p></main></body></html>`
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := Text(path)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(got, "kept paragraph") {
		t.Fatalf("expected main content in %q", got)
	}
	if strings.Contains(got, "skip me") {
		t.Fatalf("nav text leaked into %q", got)
	}
}

func TestFromHTML_PrefersMainOverBody(t *testing.T) {
	html := `<!doctype html>
	<html>
	  <head><title>Test Page</title></head>
	  <body>
	    <nav>Nav should be ignored</nav>
	    <main>
	      <h1>Main Heading</h1>
	      <p>This is the main content paragraph.</p>
	    </main>
	    <footer>Footer text</footer>
	  </body>
	</html>`

	text := FromHTML([]byte(html))
	if !strings.Contains(text, "Main Heading") {
		t.Fatalf("expected to contain main heading")
	}
	if !strings.Contains(text, "This is the main content paragraph.") {
		t.Fatalf("expected to contain main paragraph")
	}
	if strings.Contains(text, "Nav should be ignored") {
		t.Fatalf("did not expect nav text in extracted content")
	}
	if strings.Contains(text, "Footer text") {
		t.Fatalf("did not expect footer text in extracted content")
	}
}

func TestFromHTML_FallbackToBody(t *testing.T) {
	html := `<!doctype html>
	<html>
	  <head><title>No Main</title></head>
	  <body>
	    <h2>Body Heading</h2>
	    <p>Body paragraph</p>
	  </body>
	</html>`

	text := FromHTML([]byte(html))
	if !strings.Contains(text, "Body Heading") {
		t.Fatalf("expected to contain body heading")
	}
	if !strings.Contains(text, "Body paragraph") {
		t.Fatalf("expected to contain body paragraph")
	}
}

func TestFromHTML_HeadingsKeepTheirOwnLines(t *testing.T) {
	html := `<html><body><h2>References</h2><p>Smith 2020</p></body></html>`
	text := FromHTML([]byte(html))
	var found bool
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "References" {
			found = true
		}
	}
	if !found {
		t.Fatalf("heading should sit on its own line, got %q", text)
	}
}

func TestSupported(t *testing.T) {
	for _, ext := range []string{".pdf", ".txt", ".docx", ".md", ".markdown", ".html", ".htm", ".PDF", ".Txt"} {
		if !Supported(ext) {
			t.Errorf("Supported(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{".xlsx", ".png", "", ".doc", ".rtf"} {
		if Supported(ext) {
			t.Errorf("Supported(%q) = true, want false", ext)
		}
	}
}

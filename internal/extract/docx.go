package extract

import (
	"fmt"
	"regexp"

	"github.com/nguyenthenguyen/docx"
	"golang.org/x/net/html"
)

var (
	docxBreakRe = regexp.MustCompile(`</w:p>|<w:br[^>]*>|<w:tab[^>]*>`)
	xmlTagRe    = regexp.MustCompile(`<[^>]+>`)
)

// fromDOCX pulls the character data out of the word/document.xml part.
// Paragraph ends and explicit breaks become newlines before the remaining
// tags are stripped, so words from adjacent paragraphs do not run together.
func fromDOCX(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer r.Close()

	content := r.Editable().GetContent()
	content = docxBreakRe.ReplaceAllString(content, "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

// Package samples builds small documents in the binary formats the extractor
// understands. cmd/mkcorpus uses it to lay down a demo corpus, and tests use
// it to create fixtures without shipping binary files in the repository.
package samples

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes a single-page PDF containing the given lines of text.
// Text is limited to the Latin-1 range of the built-in Helvetica font.
func WritePDF(path string, lines []string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetFont("Helvetica", "", 12)
	pdf.AddPage()
	for _, line := range lines {
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}
	return pdf.OutputFileAndClose(path)
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Word readers expect this part to exist even when the document links to
// nothing.
const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

// WriteDOCX writes a minimal WordprocessingML package with one paragraph per
// element of paragraphs.
func WriteDOCX(path string, paragraphs []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}
	zw := zip.NewWriter(f)
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/document.xml", documentXML(paragraphs)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err == nil {
			_, err = w.Write([]byte(part.body))
		}
		if err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("write docx part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finish docx: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close docx: %w", err)
	}
	return nil
}

func documentXML(paragraphs []string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		b.WriteString(escapeXML(p))
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

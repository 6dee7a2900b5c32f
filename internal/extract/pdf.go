package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// fromPDF extracts plain text from a PDF page by page. The parser panics on
// some malformed files, so the recover turns that into an ordinary error and
// a bad document only skips itself.
func fromPDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("pdf page %d: %w", i, err)
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

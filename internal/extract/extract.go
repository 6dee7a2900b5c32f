// Package extract reads supported document formats into raw text. One file
// per format, with a single dispatch entry point keyed on the file extension.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat reports a file extension no extractor handles.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrNoText reports that a file parsed cleanly but yielded no usable text,
// for example a scanned PDF without a text layer.
var ErrNoText = errors.New("no text extracted")

// Supported reports whether files with the given extension (leading dot, any
// case) can be extracted.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".pdf", ".txt", ".docx", ".md", ".markdown", ".html", ".htm":
		return true
	}
	return false
}

// Text reads the file at path and returns its raw text content, dispatching
// on the extension. Unknown extensions fail with ErrUnsupportedFormat; parse
// failures and empty results are ordinary errors so the caller can skip the
// file and keep going.
func Text(path string) (string, error) {
	var (
		text string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md", ".markdown":
		text, err = fromPlain(path)
	case ".pdf":
		text, err = fromPDF(path)
	case ".docx":
		text, err = fromDOCX(path)
	case ".html", ".htm":
		text, err = fromHTMLFile(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

func fromPlain(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(b), nil
}

// Package cloud renders word-cloud PNG images from ranked term frequencies.
package cloud

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/psykhi/wordclouds"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/sblando/words-cloud/internal/count"
)

// ErrEmptyCounts reports that there are no terms to draw.
var ErrEmptyCounts = errors.New("no terms to draw")

// Renderer draws word clouds with fixed, simple styling: 1024x1024 canvas,
// white background, a small palette, at most the 100 most frequent terms.
// Construct with New; Close releases the staged font file when the embedded
// default typeface is in use.
type Renderer struct {
	width    int
	height   int
	maxWords int
	fontFile string
	tempFont string
	palette  []color.Color
}

// New prepares a Renderer. fontFile selects the TTF used for layout; when
// empty, the embedded Go Regular face is written to a temporary file because
// the layout library loads fonts from disk.
func New(fontFile string) (*Renderer, error) {
	r := &Renderer{
		width:    1024,
		height:   1024,
		maxWords: 100,
		palette:  defaultPalette(),
	}
	if fontFile != "" {
		if _, err := os.Stat(fontFile); err != nil {
			return nil, fmt.Errorf("font file: %w", err)
		}
		r.fontFile = fontFile
		return r, nil
	}

	tmp, err := os.CreateTemp("", "words-cloud-*.ttf")
	if err != nil {
		return nil, fmt.Errorf("stage font: %w", err)
	}
	if _, err := tmp.Write(goregular.TTF); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("stage font: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("stage font: %w", err)
	}
	r.fontFile = tmp.Name()
	r.tempFont = tmp.Name()
	return r, nil
}

// Close removes the staged font file, if any. Safe to call more than once.
func (r *Renderer) Close() error {
	if r.tempFont == "" {
		return nil
	}
	err := os.Remove(r.tempFont)
	r.tempFont = ""
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Render lays out the most frequent terms into an image. entries must be
// ranked most frequent first, as Counts.Top returns them. The layout library
// panics on some inputs, so the recover turns that into an ordinary error
// the caller can log and move past.
func (r *Renderer) Render(entries []count.Entry) (img image.Image, err error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCounts
	}
	defer func() {
		if rec := recover(); rec != nil {
			img = nil
			err = fmt.Errorf("draw cloud: %v", rec)
		}
	}()

	words := make(map[string]int, len(entries))
	for i, e := range entries {
		if r.maxWords > 0 && i >= r.maxWords {
			break
		}
		words[e.Term] = e.Count
	}

	w := wordclouds.NewWordcloud(words,
		wordclouds.FontFile(r.fontFile),
		wordclouds.FontMaxSize(120),
		wordclouds.FontMinSize(12),
		wordclouds.Width(r.width),
		wordclouds.Height(r.height),
		wordclouds.Colors(r.palette),
		wordclouds.BackgroundColor(color.White),
	)
	return w.Draw(), nil
}

// RenderFile renders entries and writes the image to path as PNG. On encode
// failure the partial file is removed.
func (r *Renderer) RenderFile(path string, entries []count.Entry) error {
	img, err := r.Render(entries)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}
	return nil
}

func defaultPalette() []color.Color {
	return []color.Color{
		color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
		color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	}
}

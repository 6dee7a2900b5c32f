// Package app wires extraction, normalization, counting, reporting, and
// rendering into one sequential run over an input directory.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/sblando/words-cloud/internal/cloud"
	"github.com/sblando/words-cloud/internal/count"
	"github.com/sblando/words-cloud/internal/extract"
	"github.com/sblando/words-cloud/internal/normalize"
	"github.com/sblando/words-cloud/internal/report"
	"github.com/sblando/words-cloud/internal/stopwords"
)

// ErrNoFilesProcessed is returned when no input document makes it through
// the pipeline. Per the exit code policy, this condition should result in a
// non-zero process exit.
var ErrNoFilesProcessed = errors.New("no files processed")

// App owns the pipeline stages for one run.
type App struct {
	cfg      Config
	stop     stopwords.Set
	stemmer  *normalize.Stemmer
	renderer *cloud.Renderer
}

// New validates cfg and prepares the pipeline stages. Callers must Close the
// returned App.
func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	a := &App{
		cfg:  cfg,
		stop: stopwords.New(cfg.ExtraStopwords...),
	}
	if cfg.Stem {
		st, err := normalize.NewStemmer()
		if err != nil {
			return nil, fmt.Errorf("init stemmer: %w", err)
		}
		a.stemmer = st
	}
	renderer, err := cloud.New(cfg.FontFile)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init renderer: %w", err)
	}
	a.renderer = renderer
	return a, nil
}

// Close releases resources held by the pipeline stages. Safe to call more
// than once.
func (a *App) Close() {
	if a.stemmer != nil {
		a.stemmer.Close()
		a.stemmer = nil
	}
	if a.renderer != nil {
		if err := a.renderer.Close(); err != nil {
			log.Warn().Err(err).Msg("release renderer")
		}
		a.renderer = nil
	}
}

// Run processes every supported file in the input directory in name order,
// then writes the corpus-wide outputs. Per-file failures are logged and the
// file is skipped; ErrNoFilesProcessed is returned when nothing succeeded.
func (a *App) Run(ctx context.Context) error {
	entries, err := os.ReadDir(a.cfg.InputDir)
	if err != nil {
		return fmt.Errorf("read input directory: %w", err)
	}
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	overall := count.Counts{}
	processed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !extract.Supported(filepath.Ext(name)) {
			log.Warn().Str("file", name).Msg("unsupported format; skipping file")
			continue
		}
		counts, err := a.processFile(filepath.Join(a.cfg.InputDir, name))
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("processing failed; skipping file")
			continue
		}
		overall.Merge(counts)
		processed++
		log.Info().Str("file", name).Int("terms", len(counts)).Msg("processed file")
	}

	if processed == 0 {
		return ErrNoFilesProcessed
	}

	if err := a.writeCSV(filepath.Join(a.cfg.OutputDir, overallCSVName), overall); err != nil {
		return fmt.Errorf("overall report: %w", err)
	}
	a.render(filepath.Join(a.cfg.OutputDir, overallCloudName), overall)
	log.Info().Int("files", processed).Int("terms", len(overall)).Str("out", a.cfg.OutputDir).Msg("run complete")
	return nil
}

// processFile runs one document through the pipeline, writes its artifacts,
// and returns its term counts for the corpus-wide merge.
func (a *App) processFile(path string) (count.Counts, error) {
	text, err := extract.Text(path)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if a.cfg.StripRefs {
		text = normalize.StripReferences(text)
	}

	tokens := normalize.Tokenize(normalize.Normalize(text))
	tokens = normalize.Filter(tokens, a.stop, a.cfg.MinTokenLen)
	if a.stemmer != nil {
		tokens = a.stemmer.StemAll(tokens)
	}
	counts := count.Count(tokens, count.Options{Bigrams: a.cfg.Bigrams})

	base := outputBase(path)
	if err := a.writeCSV(csvPath(a.cfg.OutputDir, base), counts); err != nil {
		return nil, err
	}
	a.render(cloudPath(a.cfg.OutputDir, base), counts)
	return counts, nil
}

// writeCSV writes the ranked top terms; on failure any partial file is
// removed so a failed document leaves no artifacts behind.
func (a *App) writeCSV(path string, counts count.Counts) error {
	if err := report.WriteCSV(path, counts.Top(a.cfg.TopN)); err != nil {
		os.Remove(path)
		return fmt.Errorf("write report: %w", err)
	}
	log.Debug().Str("out", filepath.Base(path)).Msg("wrote report")
	return nil
}

// render draws the word cloud. Failures are warnings, never fatal to the
// document: the CSV is the primary artifact.
func (a *App) render(path string, counts count.Counts) {
	err := a.renderer.RenderFile(path, counts.Top(a.cfg.TopN))
	switch {
	case errors.Is(err, cloud.ErrEmptyCounts):
		log.Warn().Str("image", filepath.Base(path)).Msg("no terms to draw; skipping image")
	case err != nil:
		log.Warn().Err(err).Str("image", filepath.Base(path)).Msg("render failed; skipping image")
	default:
		log.Debug().Str("image", filepath.Base(path)).Msg("wrote word cloud")
	}
}

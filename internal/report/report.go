// Package report writes ranked term frequencies as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sblando/words-cloud/internal/count"
)

// WriteCSV writes entries to path with a term,count header row. An empty
// entry slice still produces a header-only file so consumers can rely on the
// schema. Callers pass entries already ranked by count.Top, which fixes the
// row order.
func WriteCSV(path string, entries []count.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"term", "count"}); err != nil {
		f.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		if err := w.Write([]string{e.Term, strconv.Itoa(e.Count)}); err != nil {
			f.Close()
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	return nil
}

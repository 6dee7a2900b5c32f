// Command mkcorpus writes a small demo corpus covering every format the
// extractor understands, so the tool can be exercised end-to-end without
// hunting for documents.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sblando/words-cloud/internal/samples"
)

const sampleTXT = `The Naïve Café Guide

Coffee culture keeps growing, and café menus keep changing. Visit
https://example.com/coffee or write to hello@example.com for the full
menu. In 2024 the café served 12000 espressos.

Espresso, cappuccino, and filter coffee remain the classics.
`

const sampleMD = `# Field Notes

Observations from the coffee survey. Espresso consumption dominates,
filter coffee follows, and cappuccino rounds out the top three.

* espresso
* filter coffee
* cappuccino
`

const sampleHTML = `<!doctype html>
<html>
  <head><title>Survey</title></head>
  <body>
    <nav>home | about</nav>
    <main>
      <h1>Coffee Survey Results</h1>
      <p>Espresso leads the survey. Cappuccino and filter coffee follow.</p>
    </main>
    <footer>generated page footer</footer>
  </body>
</html>
`

func main() {
	dir := flag.String("dir", "corpus", "Directory to create the demo corpus in")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "mkcorpus:", err)
		os.Exit(1)
	}

	writes := []struct {
		name string
		fn   func(path string) error
	}{
		{"sample.txt", func(p string) error { return os.WriteFile(p, []byte(sampleTXT), 0o644) }},
		{"notes.md", func(p string) error { return os.WriteFile(p, []byte(sampleMD), 0o644) }},
		{"survey.html", func(p string) error { return os.WriteFile(p, []byte(sampleHTML), 0o644) }},
		{"paper.pdf", func(p string) error {
			return samples.WritePDF(p, []string{
				"Coffee Consumption Patterns",
				"Espresso remains the most ordered drink across all venues.",
				"Filter coffee and cappuccino alternate in second place.",
			})
		}},
		{"memo.docx", func(p string) error {
			return samples.WriteDOCX(p, []string{
				"Quarterly coffee memo",
				"Espresso orders grew again; cappuccino held steady.",
				"Filter coffee stays popular with the morning crowd.",
			})
		}},
	}

	for _, w := range writes {
		path := filepath.Join(*dir, w.name)
		if err := w.fn(path); err != nil {
			fmt.Fprintln(os.Stderr, "mkcorpus:", err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
	}
}

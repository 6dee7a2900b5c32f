package app

import (
	"path/filepath"
	"strings"
)

// Corpus-wide artifacts keep fixed names next to the per-document ones.
const (
	overallCSVName   = "overall_top_terms.csv"
	overallCloudName = "overall_wordcloud.png"
)

// outputBase returns the input filename without its extension, used to name
// the per-document artifacts. Two inputs that differ only in extension share
// a base and the later one wins, matching the per-stem naming of the outputs.
func outputBase(inputPath string) string {
	name := filepath.Base(inputPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func csvPath(outputDir, base string) string {
	return filepath.Join(outputDir, base+"_top_terms.csv")
}

func cloudPath(outputDir, base string) string {
	return filepath.Join(outputDir, base+"_wordcloud.png")
}

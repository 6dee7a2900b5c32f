// Package stopwords provides the built-in English stopword list and set
// construction with user-supplied additions.
package stopwords

import "strings"

// english is a compact stopword list tuned for scholarly text. It is the
// baseline every run starts from; extra words are merged in via New.
var english = []string{
	"the", "and", "of", "to", "in", "a", "for", "is", "on", "that", "with", "as", "by", "it", "from", "an",
	"be", "or", "are", "at", "this", "we", "you", "your", "our", "their", "they", "these", "those",
	"was", "were", "has", "have", "had", "can", "could", "may", "might", "will", "would", "shall", "should",
	"however", "therefore", "thus", "hence", "into", "within", "between", "across", "via", "both",
	"more", "most", "less", "least", "over", "under", "each", "such", "many", "much", "also", "often",
	"using", "used", "use", "based", "new", "one", "two", "three", "et", "al",
}

// Set is a stopword lookup set. It is built once per run and treated as
// read-only afterwards.
type Set map[string]struct{}

// New returns the built-in English set merged with any extra words. Extras
// are trimmed and lowercased so they match normalized tokens; empties are
// ignored.
func New(extra ...string) Set {
	s := make(Set, len(english)+len(extra))
	for _, w := range english {
		s[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Package count tallies term frequencies per document and ranks them
// deterministically.
package count

import "sort"

// Counts maps a term (unigram or space-joined bigram) to its occurrence
// count within one document, or across the corpus after merging.
type Counts map[string]int

// Options configures counting.
type Options struct {
	// Bigrams additionally counts adjacent token pairs, space-joined, as
	// terms of their own, merged into the same mapping.
	Bigrams bool
}

// Count tallies tokens into a fresh Counts. Bigram adjacency is over the
// given (already filtered) sequence. Empty tokens are never counted.
func Count(tokens []string, opts Options) Counts {
	c := make(Counts, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		c[tok]++
		if opts.Bigrams && i+1 < len(tokens) && tokens[i+1] != "" {
			c[tok+" "+tokens[i+1]]++
		}
	}
	return c
}

// Merge adds every count from other into c.
func (c Counts) Merge(other Counts) {
	for term, n := range other {
		c[term] += n
	}
}

// Entry is one ranked term.
type Entry struct {
	Term  string
	Count int
}

// Top returns up to n entries ordered by count descending, ties broken by
// term ascending so output is deterministic across runs. n <= 0 returns all
// entries.
func (c Counts) Top(n int) []Entry {
	entries := make([]Entry, 0, len(c))
	for term, cnt := range c {
		entries = append(entries, Entry{Term: term, Count: cnt})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Term < entries[j].Term
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

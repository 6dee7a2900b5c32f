package normalize

import "github.com/tebeka/snowball"

// Stemmer reduces English tokens to their Snowball stems. It wraps a native
// stemmer instance, so Close must be called when the run is done.
type Stemmer struct {
	s *snowball.Stemmer
}

// NewStemmer creates an English Snowball stemmer.
func NewStemmer() (*Stemmer, error) {
	s, err := snowball.New("english")
	if err != nil {
		return nil, err
	}
	return &Stemmer{s: s}, nil
}

// Stem returns the stem of a single token.
func (st *Stemmer) Stem(token string) string {
	return st.s.Stem(token)
}

// StemAll stems every token, preserving order.
func (st *Stemmer) StemAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = st.s.Stem(tok)
	}
	return out
}

// Close releases the underlying stemmer.
func (st *Stemmer) Close() {
	st.s.Close()
}

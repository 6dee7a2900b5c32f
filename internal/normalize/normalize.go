// Package normalize turns raw extracted document text into clean lowercase
// tokens ready for frequency counting. All functions are deterministic and
// side-effect free.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sblando/words-cloud/internal/stopwords"
)

var (
	urlRe   = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)
	digitRe = regexp.MustCompile(`\d+`)

	// A references/bibliography heading alone on a line, optional trailing
	// colon, case-insensitive.
	refHeadingRe = regexp.MustCompile(`(?i)\n\s*(references|bibliography|works\s+cited)\s*:?\s*\n`)
)

// Normalize prepares raw text for bag-of-words counting: NFKC normalization
// and lowercasing, removal of URLs, emails and digit runs, folding of
// diacritics to ASCII, stripping of punctuation and symbols, and whitespace
// collapsing. Normalizing already-normalized text yields the same result.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := norm.NFKC.String(text)
	t = strings.ToLower(t)
	t = urlRe.ReplaceAllString(t, " ")
	t = emailRe.ReplaceAllString(t, " ")
	t = digitRe.ReplaceAllString(t, " ")
	t = foldAccents(t)
	t = stripSymbols(t)
	return strings.Join(strings.Fields(t), " ")
}

// Tokenize splits normalized text on whitespace. It assumes Normalize ran
// beforehand if cleanup is needed.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Filter drops tokens shorter than minLen runes and tokens present in stop.
// minLen <= 0 disables the length cutoff.
func Filter(tokens []string, stop stopwords.Set, minLen int) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if minLen > 0 && utf8.RuneCountInString(tok) < minLen {
			continue
		}
		if stop.Contains(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// StripReferences truncates text at the first references/bibliography/works
// cited heading found alone on a line. Windows newlines are tolerated. Text
// without such a heading is returned unchanged.
func StripReferences(text string) string {
	if text == "" {
		return text
	}
	t := strings.ReplaceAll(text, "\r\n", "\n")
	if loc := refHeadingRe.FindStringIndex(t); loc != nil {
		return t[:loc[0]]
	}
	return t
}

// foldAccents decomposes characters and drops combining marks, so that for
// example "naïve" becomes "naive" and "München" becomes "Munchen".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// stripSymbols keeps letters, digits and underscores; every other rune
// becomes a space for Fields to collapse later.
func stripSymbols(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return ' '
	}, s)
}

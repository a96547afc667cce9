// Package textcase converts free-form titles into the identifier styles used
// throughout generated projects: slug, PascalCase, snake_case, and camelCase.
// All four conversions share one word splitter so they agree on boundaries.
package textcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify converts the input to a lowercase hyphen-separated slug: words are
// joined by single hyphens with no leading or trailing hyphen. It is
// idempotent: Slugify(Slugify(x)) == Slugify(x). Empty or symbol-only input
// yields "".
func Slugify(s string) string {
	var slugged []string
	for _, w := range splitWords(s) {
		if sw := slugWord(w); sw != "" {
			slugged = append(slugged, sw)
		}
	}
	return strings.Join(slugged, "-")
}

// asciiFold strips combining marks after NFD decomposition, so "Café"
// folds to "Cafe". Letters with no ASCII decomposition are dropped later.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugWord lowercases a word and reduces it to [a-z0-9], folding accented
// letters to their ASCII base and dropping anything without one.
func slugWord(w string) string {
	folded, _, err := transform.String(asciiFold, w)
	if err != nil {
		folded = w
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Pascal converts the input to PascalCase: each word capitalized, no
// separators. Acronym runs like "HTTP" become distinct words ("Http").
func Pascal(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// Snake converts the input to snake_case.
func Snake(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// Camel converts the input to camelCase: like Pascal but with the first
// word lowercased.
func Camel(s string) string {
	words := splitWords(s)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
		} else {
			b.WriteString(capitalize(w))
		}
	}
	return b.String()
}

// splitWords breaks the input into words. Non-alphanumeric runes separate
// words; within an alphanumeric run, a lower-to-upper transition starts a
// new word, and the last capital of an acronym run starts a new word when
// followed by a lowercase letter ("myHTTPServer" → "my", "HTTP", "Server").
func splitWords(s string) []string {
	var words []string
	var cur []rune
	runes := []rune(s)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
				// camelCase boundary.
				flush()
			case unicode.IsUpper(r) && unicode.IsUpper(prev) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// End of an acronym run: "HTTPServer" splits before "Server".
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

package keywords

import (
	"regexp"
	"strings"
)

// tokenPattern matches tokens that start with a letter, are at least three
// characters long, and may contain letters, digits, and the symbols +.#-
// that appear in technology names (c++, node.js, c#).
var tokenPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.#-]{2,}`)

// Tokenize turns raw text into lowercase tokens with stopwords removed.
// It never fails; empty or symbol-only input yields an empty slice.
func Tokenize(text string, lexicon *Lexicon) []string {
	matches := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, match := range matches {
		token := strings.ToLower(match)
		if lexicon.IsStopword(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

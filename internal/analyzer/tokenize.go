package analyzer

import (
	"regexp"
	"strings"
)

// Word runs are ASCII letters plus apostrophe, or extended Latin letters so
// that diacritics in Indonesian and other non-English input survive.
var wordPattern = regexp.MustCompile(`[a-zA-Z']+|[\x{00C0}-\x{024F}\x{1E00}-\x{1EFF}]+`)

// Tokenize lower-cases text and extracts word tokens in order. Digits,
// punctuation and emoji never produce tokens.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

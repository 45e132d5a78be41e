package keywords

import (
	"strings"
	"unicode"
)

const minTokenLength = 3

// Extract normalizes free text into candidate keywords: lower-cased,
// punctuation replaced by spaces (so word boundaries survive), split on
// whitespace, short tokens and stop-words dropped, deduplicated preserving
// first-occurrence order. It is pure and total; empty or punctuation-only
// input yields an empty slice.
func Extract(text string) []string {
	normalized := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.Is(unicode.Cyrillic, r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	var tokens []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(normalized) {
		if len([]rune(token)) < minTokenLength {
			continue
		}
		if stopWords[token] {
			continue
		}
		if seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}

// ToSet builds a membership set over extracted tokens.
func ToSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		set[token] = true
	}
	return set
}

// Overlap counts how many input tokens appear in the candidate set.
func Overlap(tokens []string, candidate map[string]bool) int {
	count := 0
	for _, token := range tokens {
		if candidate[token] {
			count++
		}
	}
	return count
}

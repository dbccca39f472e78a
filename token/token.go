// Package token implements the lexical layer (§4.1): a total, idempotent
// tokenizer that never fails.
package token

import (
	"strings"
	"unicode"

	"github.com/c360studio/tagteam/lexicon"
)

// Token is one lexical token with its character offsets in the source
// text (end is exclusive).
type Token struct {
	Text  string
	Start int
	End   int
}

// wordChar matches the tokenizer's word-character class: [A-Za-z0-9_-].
func wordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

// Tokenize splits text into an ordered token stream. It is total: every
// input, including the empty string, produces a (possibly empty) slice
// without error.
func Tokenize(text string) []Token {
	runes := []rune(text)
	var tokens []Token
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '\'' && isClitic(runes, i):
			end := cliticEnd(runes, i)
			tokens = append(tokens, newToken(runes, i, end))
			i = end
		case isNegClitic(runes, i):
			tokens = append(tokens, newToken(runes, i, i+3))
			i += 3
		case wordChar(r):
			start := i
			for i < len(runes) && wordChar(runes[i]) && !(i > start && isNegClitic(runes, i)) {
				i++
			}
			tokens = append(tokens, newToken(runes, start, i))
		default:
			// Single-character punctuation token.
			tokens = append(tokens, newToken(runes, i, i+1))
			i++
		}
	}
	return tokens
}

func newToken(runes []rune, start, end int) Token {
	return Token{Text: string(runes[start:end]), Start: start, End: end}
}

// isClitic reports whether the apostrophe at position i begins a
// recognised contraction clitic (§4.1).
func isClitic(runes []rune, i int) bool {
	return cliticEnd(runes, i) > i+1
}

// isNegClitic reports whether the "n't" clitic begins at position i.
func isNegClitic(runes []rune, i int) bool {
	return i+2 < len(runes) && (runes[i] == 'n' || runes[i] == 'N') && runes[i+1] == '\'' && (runes[i+2] == 't' || runes[i+2] == 'T')
}

func cliticEnd(runes []rune, i int) int {
	rest := string(runes[i:])
	lower := strings.ToLower(rest)
	for clitic := range lexicon.Clitics {
		if strings.HasPrefix(lower, clitic) {
			return i + len([]rune(clitic))
		}
	}
	return i + 1
}

// SentenceSplit splits text into sentences on ".", "!", "?" followed by
// whitespace or end of text. It does not attempt abbreviation
// disambiguation (§4.1).
func SentenceSplit(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '.' || r == '!' || r == '?' {
			atEnd := i == len(runes)-1
			followedBySpace := i+1 < len(runes) && unicode.IsSpace(runes[i+1])
			if atEnd || followedBySpace {
				sentences = append(sentences, strings.TrimSpace(string(runes[start:i+1])))
				start = i + 1
			}
		}
	}
	if start < len(runes) {
		if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
			sentences = append(sentences, rest)
		}
	}
	return sentences
}

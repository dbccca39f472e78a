// Package pos implements the English part-of-speech tagger (§4.2): a
// fixed lexicon plus heuristics, followed by a single-pass override
// correction.
package pos

import (
	"strings"
	"unicode"

	"github.com/c360studio/tagteam/lexicon"
	"github.com/c360studio/tagteam/token"
)

// Tagged is one (word, tag) pair carrying its source span.
type Tagged struct {
	Word  string
	Tag   string
	Start int
	End   int
}

// Tag tags a token stream. It never fails: every token receives a tag,
// falling back to heuristics and finally "NN" for unrecognised words.
func Tag(tokens []token.Token) []Tagged {
	tagged := make([]Tagged, len(tokens))
	words := make([]string, len(tokens))
	tags := make([]string, len(tokens))

	for i, tk := range tokens {
		words[i] = tk.Text
		tags[i] = tagOne(tk.Text, i, tokens)
	}

	tags = lexicon.ApplyOverrides(words, tags)

	for i, tk := range tokens {
		tagged[i] = Tagged{Word: tk.Text, Tag: tags[i], Start: tk.Start, End: tk.End}
	}
	return tagged
}

// tagOne assigns a default/heuristic tag to a single word, given its
// position in the stream for capitalisation-sensitive heuristics.
func tagOne(word string, idx int, tokens []token.Token) string {
	if lexicon.Clitics[strings.ToLower(word)] {
		return cliticTag(word)
	}
	if isPunctuation(word) {
		return punctuationTag(word)
	}
	if tag, ok := lexicon.LookupDefault(word); ok {
		return tag
	}
	if pron, ok := lexicon.IsPronoun(word); ok {
		return pronounTag(pron.Type)
	}
	return heuristicTag(word, idx, tokens)
}

func cliticTag(word string) string {
	switch strings.ToLower(word) {
	case "'s":
		return "POS"
	case "n't":
		return "RB"
	case "'ll", "'d":
		return "MD"
	case "'re", "'m":
		return "VBP"
	case "'ve":
		return "VBP"
	default:
		return "POS"
	}
}

func pronounTag(t lexicon.PronounType) string {
	switch t {
	case lexicon.PronounGendered, lexicon.PronounFirstSecond, lexicon.PronounPlural, lexicon.PronounNeuter:
		return "PRP"
	case lexicon.PronounDemonstrative:
		return "DT"
	default:
		return "PRP"
	}
}

func isPunctuation(word string) bool {
	if len(word) != 1 {
		return false
	}
	r := rune(word[0])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func punctuationTag(word string) string {
	switch word {
	case ",":
		return ","
	case ".", "!", "?":
		return "."
	default:
		return "SYM"
	}
}

// heuristicTag applies suffix- and shape-based default tagging for words
// absent from the fixed lexicon.
func heuristicTag(word string, idx int, tokens []token.Token) string {
	lw := strings.ToLower(word)

	switch {
	case strings.HasSuffix(lw, "ing") && len(lw) > 4:
		return "VBG"
	case strings.HasSuffix(lw, "ed") && len(lw) > 3:
		return "VBD"
	case strings.HasSuffix(lw, "ly") && len(lw) > 3:
		return "RB"
	case strings.HasSuffix(lw, "ies") && len(lw) > 4:
		return "NNS"
	case strings.HasSuffix(lw, "s") && !strings.HasSuffix(lw, "ss") && len(lw) > 2 && !isCapitalized(word):
		return "NNS"
	}

	if isCapitalized(word) && idx > 0 {
		return "NNP"
	}
	if isCapitalized(word) && idx == 0 {
		// Sentence-initial capitalisation is not a reliable proper-noun
		// signal; fall through to NN unless it is plural-shaped.
		if strings.HasSuffix(lw, "s") && !strings.HasSuffix(lw, "ss") {
			return "NNS"
		}
		return "NN"
	}

	return "NN"
}

func isCapitalized(word string) bool {
	if word == "" {
		return false
	}
	r := rune(word[0])
	return unicode.IsUpper(r)
}

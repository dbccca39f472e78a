// Package chunk implements the noun-phrase chunking layer (§4.3): simple,
// possessive, and PP-modified NP templates matched over tag sequences in
// left-to-right order of specificity.
package chunk

import (
	"strings"

	"github.com/c360studio/tagteam/pos"
)

// Kind enumerates the three NP templates §4.3 matches.
type Kind string

const (
	Simple     Kind = "simple"
	Possessive Kind = "possessive"
	PPModified Kind = "pp_modified"
)

// Chunk is a matched noun phrase with its head noun and, for the
// possessive and PP-modified templates, its substructure.
type Chunk struct {
	Kind  Kind
	Start int // char offset of the full phrase
	End   int
	Text  string

	Tokens []pos.Tagged // the full phrase's tokens
	Head   pos.Tagged   // the rightmost noun of the relevant sub-span (§4.3)

	// Possessive substructure.
	Possessor []pos.Tagged // the possessor part, tagged as possessor by ExtractComponents
	Possessed []pos.Tagged // the possessed part; Head is its rightmost noun

	// PP-modified substructure.
	HeadNP      []pos.Tagged // the leading simple NP
	PPObject    []pos.Tagged // the object of the preposition
	Preposition string
}

func isDT(tag string) bool  { return tag == "DT" }
func isJJ(tag string) bool  { return tag == "JJ" }
func isNN(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	default:
		return false
	}
}
func isPOS(tag string) bool      { return tag == "POS" }
func isINorTO(tag string) bool   { return tag == "IN" || tag == "TO" }

// Chunk scans a tagged token stream and returns the matched chunks in
// left-to-right order, trying possessive, then PP-modified, then simple
// at each position.
func Chunk(tagged []pos.Tagged) []Chunk {
	var chunks []Chunk
	i := 0
	for i < len(tagged) {
		if c, next, ok := matchPossessive(tagged, i); ok {
			chunks = append(chunks, c)
			i = next
			continue
		}
		if c, next, ok := matchPPModified(tagged, i); ok {
			chunks = append(chunks, c)
			i = next
			continue
		}
		if c, next, ok := matchSimple(tagged, i); ok {
			chunks = append(chunks, c)
			i = next
			continue
		}
		i++
	}
	return chunks
}

// matchSimple matches DT? JJ* NN+ starting at i; returns the matched
// span, the index just past it, and whether anything matched.
func matchSimple(tagged []pos.Tagged, i int) (Chunk, int, bool) {
	start := i
	j := i
	if j < len(tagged) && isDT(tagged[j].Tag) {
		j++
	}
	for j < len(tagged) && isJJ(tagged[j].Tag) {
		j++
	}
	nnStart := j
	for j < len(tagged) && isNN(tagged[j].Tag) {
		j++
	}
	if j == nnStart {
		return Chunk{}, i, false
	}
	span := tagged[start:j]
	return Chunk{
		Kind:   Simple,
		Start:  span[0].Start,
		End:    span[len(span)-1].End,
		Text:   phraseText(span),
		Tokens: span,
		Head:   span[len(span)-1], // rightmost noun (§4.3)
	}, j, true
}

// matchPossessive matches DT? JJ* NN+ POS NN+ starting at i.
func matchPossessive(tagged []pos.Tagged, i int) (Chunk, int, bool) {
	possessor, afterPossessor, ok := matchSimple(tagged, i)
	if !ok {
		return Chunk{}, i, false
	}
	j := afterPossessor
	if j >= len(tagged) || !isPOS(tagged[j].Tag) {
		return Chunk{}, i, false
	}
	j++
	possessedStart := j
	for j < len(tagged) && isNN(tagged[j].Tag) {
		j++
	}
	if j == possessedStart {
		return Chunk{}, i, false
	}
	possessed := tagged[possessedStart:j]
	full := tagged[i:j]
	return Chunk{
		Kind:      Possessive,
		Start:     full[0].Start,
		End:       full[len(full)-1].End,
		Text:      phraseText(full),
		Tokens:    full,
		Head:      possessed[len(possessed)-1], // rightmost noun of the possessed part (§4.3)
		Possessor: possessor.Tokens,
		Possessed: possessed,
	}, j, true
}

// matchPPModified matches <simple NP> IN|TO <simple NP> starting at i.
func matchPPModified(tagged []pos.Tagged, i int) (Chunk, int, bool) {
	headNP, afterHead, ok := matchSimple(tagged, i)
	if !ok {
		return Chunk{}, i, false
	}
	j := afterHead
	if j >= len(tagged) || !isINorTO(tagged[j].Tag) {
		return Chunk{}, i, false
	}
	prep := tagged[j]
	j++
	ppObject, afterObject, ok := matchSimple(tagged, j)
	if !ok {
		return Chunk{}, i, false
	}
	full := tagged[i:afterObject]
	return Chunk{
		Kind:        PPModified,
		Start:       full[0].Start,
		End:         full[len(full)-1].End,
		Text:        phraseText(full),
		Tokens:      full,
		Head:        headNP.Head, // rightmost noun of the leading NP (§4.3)
		HeadNP:      headNP.Tokens,
		PPObject:    ppObject.Tokens,
		Preposition: strings.ToLower(prep.Word),
	}, afterObject, true
}

// phraseText reconstructs surface text from a token span, attaching
// clitics without a leading space (§4.3).
func phraseText(span []pos.Tagged) string {
	var b strings.Builder
	for idx, tk := range span {
		if idx > 0 && !isClitic(tk.Word) {
			b.WriteByte(' ')
		}
		b.WriteString(tk.Word)
	}
	return b.String()
}

func isClitic(word string) bool {
	switch strings.ToLower(word) {
	case "'s", "n't", "'ll", "'re", "'ve", "'d", "'m":
		return true
	default:
		return false
	}
}

// Component is one piece of extractComponents' output (§4.3):
// the possessor (tagged "possessor"), the PP object (tagged "pp-object"
// with its preposition), or the full phrase.
type Component struct {
	Role        string // "possessor" | "pp-object" | "head" | "phrase"
	Tokens      []pos.Tagged
	Preposition string // set only when Role == "pp-object"
}

// ExtractComponents returns, for a possessive chunk: the possessor
// component and the full phrase; for a PP-modified chunk: the head NP,
// the PP object, and the full phrase; for a simple chunk: just the
// phrase (§4.3).
func ExtractComponents(c Chunk) []Component {
	switch c.Kind {
	case Possessive:
		return []Component{
			{Role: "possessor", Tokens: c.Possessor},
			{Role: "phrase", Tokens: c.Tokens},
		}
	case PPModified:
		return []Component{
			{Role: "head", Tokens: c.HeadNP},
			{Role: "pp-object", Tokens: c.PPObject, Preposition: c.Preposition},
			{Role: "phrase", Tokens: c.Tokens},
		}
	default:
		return []Component{
			{Role: "phrase", Tokens: c.Tokens},
		}
	}
}

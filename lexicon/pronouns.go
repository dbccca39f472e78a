package lexicon

import "strings"

// PronounType enumerates the pronoun classes the typing cascade's
// pronoun-presupposition step distinguishes (§4.6 step 1).
type PronounType string

const (
	PronounGendered    PronounType = "gendered"
	PronounFirstSecond PronounType = "first_second_person"
	PronounNeuter      PronounType = "third_neuter"
	PronounPlural      PronounType = "third_plural"
	PronounDemonstrative PronounType = "demonstrative"
)

// PronounPresupposition maps a lower-cased pronoun to its type and the
// ontological type it presupposes.
type PronounPresupposition struct {
	Type         PronounType
	PresupposedType string // compact IRI
}

// Pronouns is the explicit per-pronoun presupposition table (§4.6 step 1).
var Pronouns = map[string]PronounPresupposition{
	"i":    {PronounFirstSecond, "cco:Person"},
	"me":   {PronounFirstSecond, "cco:Person"},
	"my":   {PronounFirstSecond, "cco:Person"},
	"you":  {PronounFirstSecond, "cco:Person"},
	"your": {PronounFirstSecond, "cco:Person"},
	"we":   {PronounFirstSecond, "bfo:BFO_0000027"},
	"us":   {PronounFirstSecond, "bfo:BFO_0000027"},
	"our":  {PronounFirstSecond, "bfo:BFO_0000027"},

	"he":  {PronounGendered, "cco:Person"},
	"him": {PronounGendered, "cco:Person"},
	"his": {PronounGendered, "cco:Person"},
	"she": {PronounGendered, "cco:Person"},
	"her": {PronounGendered, "cco:Person"},

	"it":  {PronounNeuter, "bfo:BFO_0000004"},
	"its": {PronounNeuter, "bfo:BFO_0000004"},

	"they":  {PronounPlural, "bfo:BFO_0000027"},
	"them":  {PronounPlural, "bfo:BFO_0000027"},
	"their": {PronounPlural, "bfo:BFO_0000027"},

	"this":  {PronounDemonstrative, "bfo:BFO_0000001"},
	"that":  {PronounDemonstrative, "bfo:BFO_0000001"},
	"these": {PronounDemonstrative, "bfo:BFO_0000001"},
	"those": {PronounDemonstrative, "bfo:BFO_0000001"},
}

// IsPronoun reports whether word (any case) is in the pronoun table.
func IsPronoun(word string) (PronounPresupposition, bool) {
	p, ok := Pronouns[strings.ToLower(word)]
	return p, ok
}

package lexicon

// LocativePrepositions is the closed set of case prepositions that mark a
// copular predicate's object as a location (§4.5 pattern 1).
var LocativePrepositions = map[string]bool{
	"in": true, "at": true, "on": true, "near": true, "by": true,
	"under": true, "above": true, "behind": true,
}

// RelationInference maps a (predicate head + preposition) phrase to the
// inferred structural-assertion relation IRI (§4.5 pattern 1).
var RelationInference = map[string]string{
	"component of":  "cco:has_part",
	"member of":      "cco:member_of",
	"type of":        "rdfs:subClassOf",
	"kind of":        "rdfs:subClassOf",
	"part of":        "bfo:part_of",
	"example of":     "rdf:type",
	"instance of":    "rdf:type",
	"located in":     "bfo:located_in",
	"based in":       "bfo:located_in",
	"responsible for": "cco:has_function",
}

// VerbDerivedLocativeLemmas are passive-voice verb lemmas that, with an
// `in`/`at` obl case, yield a locative structural assertion instead of an
// Act (§4.5 pattern 4).
var VerbDerivedLocativeLemmas = map[string]bool{
	"locate": true, "base": true,
}

// NegationWords are the closed set of advmod negation triggers (§4.5).
var NegationWords = map[string]bool{
	"not": true, "n't": true, "never": true, "no": true,
}

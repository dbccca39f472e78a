package lexicon

import "strings"

// POSTags is a fixed English lexicon mapping lower-cased surface words to
// a default Penn-Treebank-style tag. POSTagger (§4.2) falls back to
// heuristics for words absent from this table.
var POSTags = map[string]string{
	// Determiners.
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT",
	"these": "DT", "those": "DT", "my": "PRP$", "your": "PRP$", "his": "PRP$",
	"her": "PRP$", "its": "PRP$", "our": "PRP$", "their": "PRP$",
	"all": "DT", "every": "DT", "each": "DT", "no": "DT",
	"some": "DT", "several": "DT", "few": "DT", "many": "DT",

	// Coordinating conjunctions.
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC",

	// Prepositions / subordinators (also IN per the override table).
	"for": "IN", "with": "IN", "on": "IN", "in": "IN", "at": "IN", "from": "IN",
	"to": "TO", "into": "IN", "onto": "IN", "by": "IN", "of": "IN", "near": "IN",
	"under": "IN", "above": "IN", "behind": "IN", "if": "IN", "because": "IN",
	"although": "IN", "while": "IN", "since": "IN", "before": "IN", "after": "IN",

	// Pronouns.
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "her_obj": "PRP",
	"us": "PRP", "them": "PRP", "who": "WP", "whom": "WP", "whose": "WP$",
	"which": "WDT", "what": "WP",

	// Auxiliaries / copula.
	"is": "VBZ", "are": "VBP", "was": "VBD", "were": "VBD", "be": "VB",
	"been": "VBN", "being": "VBG", "am": "VBP",
	"have": "VBP", "has": "VBZ", "had": "VBD",
	"do": "VBP", "does": "VBZ", "did": "VBD",

	// Modals.
	"must": "MD", "should": "MD", "shall": "MD", "will": "MD", "would": "MD",
	"can": "MD", "could": "MD", "may": "MD", "might": "MD", "need": "MD",

	// Negation.
	"not": "RB", "never": "RB", "no_adv": "RB",

	// Existential.
	"there": "EX",

	// Common adjectives.
	"possible": "JJ", "likely": "JJ", "probable": "JJ", "suspected": "JJ",
	"potential": "JJ", "presumed": "JJ", "apparent": "JJ", "alleged": "JJ",
	"uncertain": "JJ", "questionable": "JJ", "last": "JJ", "critically": "RB",
	"ill": "JJ", "scarce": "JJ", "limited": "JJ", "rare": "JJ",

	// Common nouns relevant to examples/tests.
	"doctor": "NN", "patient": "NN", "patients": "NNS", "ventilator": "NN",
	"nurse": "NN", "hospital": "NN", "condition": "NN", "diabetes": "NN",
	"dog": "NN", "dogs": "NNS", "fur": "NN", "blood": "NN", "sugar": "NN",
	"level": "NN", "levels": "NNS", "resources": "NNS", "resource": "NN",
	"component": "NN", "member": "NN", "part": "NN", "type": "NN",
	"example": "NN", "instance": "NN",
}

// Clitics are tokens that attach to a preceding word without a
// leading space (§4.1, §4.3).
var Clitics = map[string]bool{
	"'s": true, "n't": true, "'ll": true, "'re": true,
	"'ve": true, "'d": true, "'m": true,
}

// LookupDefault returns the default tag for a lower-cased word and
// whether it was found.
func LookupDefault(word string) (string, bool) {
	tag, ok := POSTags[strings.ToLower(word)]
	return tag, ok
}

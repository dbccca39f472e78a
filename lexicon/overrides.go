package lexicon

import "strings"

// PostDeterminerNouns lists words that are systematically mistagged as
// something other than NN when they follow a determiner; the §4.2
// override table corrects them to NN in a single pass.
var PostDeterminerNouns = map[string]bool{
	"alert": true, "access": true, "change": true,
}

// AlwaysIN is the closed set of words that always tag as IN regardless of
// context (§4.2).
var AlwaysIN = map[string]bool{
	"for": true, "with": true, "on": true, "in": true, "at": true,
	"from": true, "to": true, "into": true, "onto": true, "by": true, "of": true,
}

// AlwaysDT is the closed set of words that always tag as DT (§4.2).
var AlwaysDT = map[string]bool{
	"the": true, "a": true, "an": true,
}

// AlwaysCC is the closed set of words that always tag as CC (§4.2).
var AlwaysCC = map[string]bool{
	"and": true, "or": true,
}

// ApplyOverrides runs the single-pass lexical-override correction over an
// already-tagged stream, per §4.2. The post-determiner rule reads the
// previous token's already-corrected tag; the first token has none.
func ApplyOverrides(words, tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	for i, w := range words {
		lw := strings.ToLower(w)
		switch {
		case AlwaysDT[lw]:
			out[i] = "DT"
		case AlwaysCC[lw]:
			out[i] = "CC"
		case AlwaysIN[lw]:
			out[i] = "IN"
		case PostDeterminerNouns[lw] && i > 0 && out[i-1] == "DT":
			out[i] = "NN"
		}
	}
	return out
}

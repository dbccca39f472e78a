package ambiguity

import (
	"strings"

	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/lexicon"
)

// Plausibilities computes the §4.11 plausibility assignment: the default
// reading receives base (the ambiguity's confidence, 0.7 if unset), and
// the remaining readings equally share (1 - base). Deontic/epistemic
// intensifier words found in span then nudge readings whose name matches
// their force by +0.15, with the result clamped to [0.05, 0.95].
func Plausibilities(amb Ambiguity) map[string]float64 {
	base := amb.Confidence
	if base <= 0 {
		base = 0.7
	}
	out := make(map[string]float64, len(amb.Readings))
	nonDefault := 0
	for _, r := range amb.Readings {
		if !r.IsDefault {
			nonDefault++
		}
	}
	share := 0.0
	if nonDefault > 0 {
		share = (1 - base) / float64(nonDefault)
	}
	for _, r := range amb.Readings {
		if r.IsDefault {
			out[r.Name] = base
		} else {
			out[r.Name] = share
		}
	}

	lower := strings.ToLower(amb.Span)
	hasDeontic, hasEpistemic := false, false
	for w := range lexicon.DeonticIntensifiers {
		if strings.Contains(lower, w) {
			hasDeontic = true
			break
		}
	}
	for w := range lexicon.EpistemicIntensifiers {
		if strings.Contains(lower, w) {
			hasEpistemic = true
			break
		}
	}
	for name, p := range out {
		switch {
		case hasDeontic && (name == "obligation" || name == "permission" || name == "permission_denied"):
			p += 0.15
		case hasEpistemic && (name == "inference" || name == "possibility" || name == "possibility_denied"):
			p += 0.15
		}
		out[name] = clamp(p)
	}
	return out
}

func clamp(p float64) float64 {
	if p < 0.05 {
		return 0.05
	}
	if p > 0.95 {
		return 0.95
	}
	return p
}

// BuildAlternatives materializes one AlternativeNode per non-default
// reading of amb, cloning original and applying each reading's type and
// property overrides plus its computed plausibility (§4.11).
func BuildAlternatives(original graph.Node, amb Ambiguity) []*graph.AlternativeNode {
	plausibilities := Plausibilities(amb)
	var out []*graph.AlternativeNode
	n := 0
	for _, r := range amb.Readings {
		if r.IsDefault {
			continue
		}
		n++
		alt := graph.NewAlternativeNode(original, n, r.Types, r.Overrides)
		alt.SourceAmbiguity = string(amb.Class)
		alt.Plausibility = plausibilities[r.Name]
		if amb.Class == ClassMetonymy && r.Name == "metonymic_institution" {
			ref := graph.RefTo(original.NodeID())
			alt.MetonymicSource = &ref
		}
		out = append(out, alt)
	}
	return out
}

// DefaultPlausibility returns the plausibility the original (default
// reading) node should carry, for callers that record it on the source
// node rather than leaving it implicit.
func DefaultPlausibility(amb Ambiguity) float64 {
	return Plausibilities(amb)[defaultReadingName(amb)]
}

func defaultReadingName(amb Ambiguity) string {
	for _, r := range amb.Readings {
		if r.IsDefault {
			return r.Name
		}
	}
	return ""
}

// Package marker implements the CertaintyAnalyzer (§4.9) and
// GenericityDetector (§4.10): lexicon-based scoring over a claim's
// surface text and rule-based classification of subject-position
// entities.
package marker

import (
	"regexp"
	"strings"

	"github.com/c360studio/tagteam/lexicon"
)

// HedgeMatch, BoosterMatch, and EvidentialMatch record one detected
// marker: its surface word, character position, and subtype (§4.9).
type HedgeMatch struct {
	Word     string
	Position int
	Subtype  lexicon.HedgeSubtype
}

type BoosterMatch struct {
	Word     string
	Position int
	Subtype  string
}

type EvidentialMatch struct {
	Word       string
	Position   int
	SourceType lexicon.EvidentialSourceType
}

// DominantType enumerates the §4.9 dominant-type ranking.
type DominantType string

const (
	DominantEvidential DominantType = "evidential"
	DominantHedged     DominantType = "hedged"
	DominantBoosted    DominantType = "boosted"
	DominantMixed      DominantType = "mixed"
	DominantNeutral    DominantType = "neutral"
)

// Certainty is the result of analysing one claim's text (§4.9).
type Certainty struct {
	Score       float64
	Dominant    DominantType
	Hedges      []HedgeMatch
	Boosters    []BoosterMatch
	Evidentials []EvidentialMatch
	IsHedged    bool
	IsReported  bool
}

var wordPattern = regexp.MustCompile(`[A-Za-z']+`)

// AnalyzeCertainty scans text for case-insensitive whole-word hedge,
// booster, and evidential matches and computes the §4.9 certainty score.
func AnalyzeCertainty(text string) Certainty {
	var c Certainty
	score := 0.5

	for _, loc := range wordPattern.FindAllStringIndex(text, -1) {
		word := strings.ToLower(text[loc[0]:loc[1]])
		if h, ok := lexicon.Hedges[word]; ok {
			c.Hedges = append(c.Hedges, HedgeMatch{Word: word, Position: loc[0], Subtype: h.Subtype})
			score += 0.3 * (h.Strength - score)
		}
		if b, ok := lexicon.Boosters[word]; ok {
			c.Boosters = append(c.Boosters, BoosterMatch{Word: word, Position: loc[0], Subtype: b.Subtype})
			score += 0.3 * (b.Strength - score)
		}
		if e, ok := lexicon.Evidentials[word]; ok {
			c.Evidentials = append(c.Evidentials, EvidentialMatch{Word: word, Position: loc[0], SourceType: e.SourceType})
		}
	}
	// "sources say" / "officials say" are multi-word evidentials; scan the
	// lower-cased text directly since the whole-word scan above only
	// matches single tokens.
	lower := strings.ToLower(text)
	for phrase, e := range lexicon.Evidentials {
		if !strings.Contains(phrase, " ") {
			continue
		}
		if idx := strings.Index(lower, phrase); idx >= 0 {
			c.Evidentials = append(c.Evidentials, EvidentialMatch{Word: phrase, Position: idx, SourceType: e.SourceType})
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	c.Score = score
	c.IsHedged = len(c.Hedges) > 0
	c.IsReported = len(c.Evidentials) > 0
	c.Dominant = dominantType(c)
	return c
}

func dominantType(c Certainty) DominantType {
	switch {
	case len(c.Evidentials) > 0:
		return DominantEvidential
	case len(c.Hedges) > 0 && len(c.Boosters) > 0:
		return DominantMixed
	case len(c.Hedges) > 0:
		return DominantHedged
	case len(c.Boosters) > 0:
		return DominantBoosted
	default:
		return DominantNeutral
	}
}

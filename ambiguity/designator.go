package ambiguity

import (
	"strings"

	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/lexicon"
	"github.com/c360studio/tagteam/pos"
)

// DetectComplexDesignators greedily scans a tagged sentence for
// multi-word proper-name spans (§4.12): consecutive NNP tokens, a
// single KnownAcronyms token, a TitlePrefixes token followed by NNP
// tokens (denoting a Person), or an NNP run followed by an
// OrganizationSuffixes token (denoting an Organization).
func DetectComplexDesignators(tagged []pos.Tagged) []*graph.ComplexDesignator {
	var out []*graph.ComplexDesignator
	i := 0
	for i < len(tagged) {
		start := i
		isTitle := lexicon.TitlePrefixes[strings.ToLower(strings.TrimSuffix(tagged[i].Word, "."))]
		isAcronym := lexicon.KnownAcronyms[tagged[i].Word]

		if !isTitle && !isAcronym && tagged[i].Tag != "NNP" {
			i++
			continue
		}

		j := i
		if isTitle {
			j++
		}
		for j < len(tagged) {
			if tagged[j].Tag == "NNP" || lexicon.KnownAcronyms[tagged[j].Word] {
				j++
				continue
			}
			if strings.ToLower(tagged[j].Word) == "of" && j+1 < len(tagged) && tagged[j+1].Tag == "NNP" {
				j++
				continue
			}
			break
		}
		suffix := false
		if j < len(tagged) && lexicon.OrganizationSuffixes[strings.ToLower(tagged[j].Word)] {
			j++
			suffix = true
		}

		span := tagged[start:j]
		if len(span) < 2 && !isAcronym {
			i++
			continue
		}

		components := make([]string, 0, len(span))
		for _, t := range span {
			components = append(components, t.Word)
		}
		fullName := strings.Join(components, " ")
		denotedType := "cco:Organization"
		if isTitle {
			denotedType = "cco:Person"
		} else if isAcronym && !suffix && len(span) == 1 {
			denotedType = "cco:Organization"
		}

		hash := graph.ContentHash(10, fullName)
		id := graph.InstanceID("ComplexDesignator", cleanFullName(fullName), hash)
		d := graph.NewComplexDesignator(id, fullName, components, span[0].Start, span[len(span)-1].End)
		d.DenotedType = denotedType
		out = append(out, d)

		i = j
	}
	return out
}

func cleanFullName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/entity"
	"github.com/c360studio/tagteam/graph"
)

func TestDiscourseReferentDefinitenessAndStatus(t *testing.T) {
	text := "The doctor allocated the ventilator"
	tagged := tag(t, text)
	ex := entity.New(nil)
	cands := ex.Extract(tagged, nil)

	referents := entity.ToDiscourseReferents(cands, tagged, text, func(string) bool { return true })
	require.NotEmpty(t, referents)

	var doctor *graph.DiscourseReferent
	for _, r := range referents {
		if r.Label == "The doctor" {
			doctor = r
		}
	}
	require.NotNil(t, doctor)
	require.Equal(t, graph.Definite, doctor.Definiteness)
	require.Equal(t, graph.Introduced, doctor.ReferentialStat)
}

func TestDiscourseReferentScarcityMarker(t *testing.T) {
	text := "The last ventilator was allocated"
	tagged := tag(t, text)
	ex := entity.New(nil)
	cands := ex.Extract(tagged, nil)
	referents := entity.ToDiscourseReferents(cands, tagged, text, func(string) bool { return false })

	var vent *graph.DiscourseReferent
	for _, r := range referents {
		if r.ScarcityMarker == "last" {
			vent = r
		}
	}
	require.NotNil(t, vent)
}

func TestDiscourseReferentHypotheticalFromLeadingAdjective(t *testing.T) {
	text := "The possible diagnosis worried the nurse"
	tagged := tag(t, text)
	ex := entity.New(nil)
	cands := ex.Extract(tagged, nil)
	referents := entity.ToDiscourseReferents(cands, tagged, text, func(string) bool { return false })

	var diag *graph.DiscourseReferent
	for _, r := range referents {
		if r.Label == "The possible diagnosis" {
			diag = r
		}
	}
	require.NotNil(t, diag)
	require.Equal(t, graph.Hypothetical, diag.ReferentialStat)
}

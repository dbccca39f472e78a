package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/entity"
	"github.com/c360studio/tagteam/pos"
	"github.com/c360studio/tagteam/token"
	"github.com/c360studio/tagteam/vocabulary/bfo"
	"github.com/c360studio/tagteam/vocabulary/cco"
)

func tag(t *testing.T, text string) []pos.Tagged {
	t.Helper()
	return pos.Tag(token.Tokenize(text))
}

func findCandidate(cands []entity.Candidate, text string) (entity.Candidate, bool) {
	for _, c := range cands {
		if c.Text == text {
			return c, true
		}
	}
	return entity.Candidate{}, false
}

func TestDirectEntityMapping(t *testing.T) {
	ex := entity.New(nil)
	cands := ex.Extract(tag(t, "the doctor allocated the ventilator"), nil)
	doctor, ok := findCandidate(cands, "the doctor")
	require.True(t, ok)
	require.Equal(t, cco.Person, doctor.DenotedType)

	vent, ok := findCandidate(cands, "the ventilator")
	require.True(t, ok)
	require.Equal(t, cco.Artifact, vent.DenotedType)
}

func TestResultNounUnambiguous(t *testing.T) {
	ex := entity.New(nil)
	cands := ex.Extract(tag(t, "the patient received medication"), nil)
	med, ok := findCandidate(cands, "medication")
	require.True(t, ok)
	require.Equal(t, cco.Artifact, med.DenotedType)
}

func TestCoordinationSplit(t *testing.T) {
	ex := entity.New(nil)
	cands := ex.Extract(tag(t, "the doctor and the nurse arrived"), nil)
	_, foundDoctor := findCandidate(cands, "the doctor")
	_, foundNurse := findCandidate(cands, "the nurse")
	require.True(t, foundDoctor)
	require.True(t, foundNurse)
}

func TestPPObjectComponentOfDHS(t *testing.T) {
	ex := entity.New(nil)
	cands := ex.Extract(tag(t, "a component of DHS"), nil)
	obj, ok := findCandidate(cands, "DHS")
	require.True(t, ok)
	require.True(t, obj.IsPPObject)
	require.Equal(t, "of", obj.Preposition)
}

func TestDefaultMaterialEntity(t *testing.T) {
	ex := entity.New(nil)
	cands := ex.Extract(tag(t, "the widget moved"), nil)
	w, ok := findCandidate(cands, "the widget")
	require.True(t, ok)
	require.Equal(t, bfo.MaterialEntity, w.DenotedType)
}

func TestProperNameUpgradesExistingChunk(t *testing.T) {
	ex := entity.New(nil)
	names := []entity.ProperName{{Text: "Northwind", Start: 0, End: 9, Category: "organization"}}
	cands := ex.Extract(tag(t, "Northwind shipped the device"), names)
	org, ok := findCandidate(cands, "Northwind")
	require.True(t, ok)
	require.Equal(t, cco.Organization, org.DenotedType)
}

func TestVerbContextRefinementCognitive(t *testing.T) {
	ex := entity.New(nil)
	cands := ex.Extract(tag(t, "the team assessed the report"), nil)
	report, ok := findCandidate(cands, "the report")
	require.True(t, ok)
	require.Equal(t, cco.InformationContentEntity, report.DenotedType)
	require.Equal(t, "assess", report.TypeRefinedBy)
}

func TestTitleFragmentSuppressed(t *testing.T) {
	ex := entity.New(nil)
	names := []entity.ProperName{{Text: "Dr.", Start: 0, End: 3, Category: "person"}, {Text: "Dr. Smith", Start: 0, End: 9, Category: "person"}}
	cands := ex.Extract(tag(t, "Dr. Smith arrived"), names)
	_, fragmentFound := findCandidate(cands, "Dr.")
	require.False(t, fragmentFound)
}

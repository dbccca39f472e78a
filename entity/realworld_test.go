package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/entity"
	"github.com/c360studio/tagteam/graph"
)

func fixedNow() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

func TestBuildPersonEntity(t *testing.T) {
	f := entity.NewRealWorldEntityFactory("doc:1", fixedNow)
	d := graph.NewDiscourseReferent("inst:DiscourseReferent_doctor_x", "the doctor", nil)
	d.DenotedType = "cco:Person"

	e := f.Build(d)
	require.Contains(t, e.Types, "cco:Person")
	require.Contains(t, e.Types, "owl:NamedIndividual")
	require.Equal(t, "doctor", e.Label)
}

func TestBuildDeduplicatesWithinDocumentScope(t *testing.T) {
	f := entity.NewRealWorldEntityFactory("doc:1", fixedNow)
	d1 := graph.NewDiscourseReferent("id1", "the doctor", nil)
	d1.DenotedType = "cco:Person"
	d2 := graph.NewDiscourseReferent("id2", "the doctor", nil)
	d2.DenotedType = "cco:Person"

	e1 := f.Build(d1)
	e2 := f.Build(d2)
	require.Equal(t, e1.ID, e2.ID)
	require.Same(t, e1, e2)
}

func TestBuildGenericClassNomination(t *testing.T) {
	f := entity.NewRealWorldEntityFactory("", fixedNow)
	d := graph.NewDiscourseReferent("id1", "Dogs", nil)
	d.DenotedType = "bfo:BFO_0000040"
	d.GenericityCategory = graph.GEN
	d.GenericityBasis = "bare_plural"

	e := f.Build(d)
	require.Contains(t, e.Types, "owl:Class")
	require.Equal(t, "unresolved", e.ClassNominationStatus)
	require.Equal(t, "Dog", e.NominatedClassLabel)
	require.True(t, e.RequiresOntologyResolution)
}

func TestBuildStripsLeadingDeterminerAndModalAdjective(t *testing.T) {
	f := entity.NewRealWorldEntityFactory("", fixedNow)
	d := graph.NewDiscourseReferent("id1", "the possible diabetes", nil)
	d.DenotedType = "bfo:BFO_0000016"

	e := f.Build(d)
	require.Equal(t, "diabetes", e.Label)
}

func TestLinkReferentsToTier2AttachesIsAbout(t *testing.T) {
	f := entity.NewRealWorldEntityFactory("", fixedNow)
	d := graph.NewDiscourseReferent("id1", "the doctor", nil)
	d.DenotedType = "cco:Person"
	e := f.Build(d)

	entity.LinkReferentsToTier2([]*graph.DiscourseReferent{d}, map[string]*graph.RealWorldEntity{d.ID: e})
	require.NotNil(t, d.IsAbout)
	require.Equal(t, e.ID, d.IsAbout.ID)
}

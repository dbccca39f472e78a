package marker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/marker"
)

func TestProperNounIsInstance(t *testing.T) {
	c := marker.ClassifyGenericity(marker.SubjectContext{IsProperNoun: true})
	require.Equal(t, graph.INST, c.Category)
}

func TestDefiniteDeterminerIsInstance(t *testing.T) {
	c := marker.ClassifyGenericity(marker.SubjectContext{Determiner: "the", PredicateLemma: "allocate"})
	require.Equal(t, graph.INST, c.Category)
}

func TestUniversalQuantifierIsUniv(t *testing.T) {
	c := marker.ClassifyGenericity(marker.SubjectContext{Determiner: "every"})
	require.Equal(t, graph.UNIV, c.Category)
}

func TestBarePluralIsGeneric(t *testing.T) {
	c := marker.ClassifyGenericity(marker.SubjectContext{IsPlural: true})
	require.Equal(t, graph.GEN, c.Category)
}

func TestInstitutionalTheException(t *testing.T) {
	c := marker.ClassifyGenericity(marker.SubjectContext{
		Determiner: "the", IsBareSingular: true, PredicateLemma: "have", Tense: "present",
	})
	require.Equal(t, graph.AMB, c.Category)
	require.NotNil(t, c.Alternative)
	require.Equal(t, graph.GEN, c.Alternative.Category)
}

func TestBareSingularIsAmbiguous(t *testing.T) {
	c := marker.ClassifyGenericity(marker.SubjectContext{IsBareSingular: true, PredicateLemma: "move"})
	require.Equal(t, graph.AMB, c.Category)
}

package act_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/act"
	"github.com/c360studio/tagteam/deptree"
	"github.com/c360studio/tagteam/graph"
)

// entityMap resolves a fixed set of token ids to entity node ids, as the
// pipeline's entity extractor output would.
func resolver(m map[int]string) act.Resolver {
	return func(id int) (string, bool) {
		v, ok := m[id]
		return v, ok
	}
}

func TestRegularActHasAgentAndAffects(t *testing.T) {
	// "The agency allocated the ventilator"
	tokens := []string{"The", "agency", "allocated", "the", "ventilator"}
	tags := []string{"DT", "NN", "VBD", "DT", "NN"}
	arcs := []deptree.Arc{
		{Dependent: 3, Head: 0, Label: "root"},
		{Dependent: 2, Head: 3, Label: "nsubj"},
		{Dependent: 1, Head: 2, Label: "det"},
		{Dependent: 5, Head: 3, Label: "obj"},
		{Dependent: 4, Head: 5, Label: "det"},
	}
	tree := deptree.New(tokens, tags, arcs)
	ex := act.New(tree, resolver(map[int]string{2: "inst:Organization_agency_aaaaaaaa", 5: "inst:Artifact_ventilator_bbbbbbbb"}))

	nodes := ex.Extract()
	require.Len(t, nodes, 1)
	a, ok := nodes[0].(*graph.Act)
	require.True(t, ok)
	require.Equal(t, graph.PatternRegular, a.Pattern)
	require.False(t, a.IsPassive)
	require.False(t, a.IsNegated)
	require.NotNil(t, a.HasAgent)
	require.Equal(t, "inst:Organization_agency_aaaaaaaa", a.HasAgent.ID)
	require.NotNil(t, a.Affects)
	require.Equal(t, "inst:Artifact_ventilator_bbbbbbbb", a.Affects.ID)
}

func TestPassiveDetection(t *testing.T) {
	// "The ventilator was allocated" — nsubj:pass + aux:pass
	tokens := []string{"The", "ventilator", "was", "allocated"}
	tags := []string{"DT", "NN", "VBD", "VBN"}
	arcs := []deptree.Arc{
		{Dependent: 4, Head: 0, Label: "root"},
		{Dependent: 2, Head: 4, Label: "nsubj:pass"},
		{Dependent: 1, Head: 2, Label: "det"},
		{Dependent: 3, Head: 4, Label: "aux:pass"},
	}
	tree := deptree.New(tokens, tags, arcs)
	ex := act.New(tree, resolver(map[int]string{2: "inst:Artifact_ventilator_cccccccc"}))

	nodes := ex.Extract()
	require.Len(t, nodes, 1)
	a := nodes[0].(*graph.Act)
	require.True(t, a.IsPassive)
	require.NotNil(t, a.Affects)
	require.Equal(t, "inst:Artifact_ventilator_cccccccc", a.Affects.ID)
}

func TestNegationDetection(t *testing.T) {
	// "The agency did not allocate the ventilator"
	tokens := []string{"The", "agency", "did", "not", "allocate", "the", "ventilator"}
	tags := []string{"DT", "NN", "VBD", "RB", "VB", "DT", "NN"}
	arcs := []deptree.Arc{
		{Dependent: 5, Head: 0, Label: "root"},
		{Dependent: 2, Head: 5, Label: "nsubj"},
		{Dependent: 1, Head: 2, Label: "det"},
		{Dependent: 3, Head: 5, Label: "aux"},
		{Dependent: 4, Head: 5, Label: "advmod"},
		{Dependent: 7, Head: 5, Label: "obj"},
		{Dependent: 6, Head: 7, Label: "det"},
	}
	tree := deptree.New(tokens, tags, arcs)
	ex := act.New(tree, resolver(nil))

	nodes := ex.Extract()
	require.Len(t, nodes, 1)
	a := nodes[0].(*graph.Act)
	require.True(t, a.IsNegated)
}

func TestCopularLocative(t *testing.T) {
	// "The ventilator is in the ward"
	tokens := []string{"The", "ventilator", "is", "in", "the", "ward"}
	tags := []string{"DT", "NN", "VBZ", "IN", "DT", "NN"}
	arcs := []deptree.Arc{
		{Dependent: 6, Head: 0, Label: "root"},
		{Dependent: 2, Head: 6, Label: "nsubj"},
		{Dependent: 1, Head: 2, Label: "det"},
		{Dependent: 3, Head: 6, Label: "cop"},
		{Dependent: 4, Head: 6, Label: "case"},
		{Dependent: 5, Head: 6, Label: "det"},
	}
	tree := deptree.New(tokens, tags, arcs)
	ex := act.New(tree, resolver(map[int]string{2: "inst:Artifact_ventilator_dddddddd", 6: "inst:MaterialEntity_ward_eeeeeeee"}))

	nodes := ex.Extract()
	require.Len(t, nodes, 1)
	sa := nodes[0].(*graph.StructuralAssertion)
	require.Equal(t, "locative", sa.Pattern)
	require.Equal(t, "bfo:located_in", sa.Relation)
	require.Equal(t, "inst:Artifact_ventilator_dddddddd", sa.Subject.ID)
}

func TestExistentialPattern(t *testing.T) {
	// "There is a shortage"
	tokens := []string{"There", "is", "a", "shortage"}
	tags := []string{"EX", "VBZ", "DT", "NN"}
	arcs := []deptree.Arc{
		{Dependent: 2, Head: 0, Label: "root"},
		{Dependent: 1, Head: 2, Label: "expl"},
		{Dependent: 4, Head: 2, Label: "nsubj"},
		{Dependent: 3, Head: 4, Label: "det"},
	}
	tree := deptree.New(tokens, tags, arcs)
	ex := act.New(tree, resolver(map[int]string{4: "inst:Quality_shortage_ffffffff"}))

	nodes := ex.Extract()
	require.Len(t, nodes, 1)
	sa := nodes[0].(*graph.StructuralAssertion)
	require.Equal(t, "existential", sa.Pattern)
}

func TestPossessiveEmitsAssertionAndAct(t *testing.T) {
	// "The hospital has a ventilator"
	tokens := []string{"The", "hospital", "has", "a", "ventilator"}
	tags := []string{"DT", "NN", "VBZ", "DT", "NN"}
	arcs := []deptree.Arc{
		{Dependent: 3, Head: 0, Label: "root"},
		{Dependent: 2, Head: 3, Label: "nsubj"},
		{Dependent: 1, Head: 2, Label: "det"},
		{Dependent: 5, Head: 3, Label: "obj"},
		{Dependent: 4, Head: 5, Label: "det"},
	}
	tree := deptree.New(tokens, tags, arcs)
	ex := act.New(tree, resolver(nil))

	nodes := ex.Extract()
	require.Len(t, nodes, 2)
	sa, ok := nodes[0].(*graph.StructuralAssertion)
	require.True(t, ok)
	require.Equal(t, "possessive", sa.Pattern)
	_, ok = nodes[1].(*graph.Act)
	require.True(t, ok)
}

func TestEmbeddedClauseProducesFurtherAct(t *testing.T) {
	// "The agency allocated the ventilator because the ward needed it" —
	// advcl child of the root should produce a second Act.
	tokens := []string{"The", "agency", "allocated", "the", "ventilator", "because", "the", "ward", "needed", "it"}
	tags := []string{"DT", "NN", "VBD", "DT", "NN", "IN", "DT", "NN", "VBD", "PRP"}
	arcs := []deptree.Arc{
		{Dependent: 3, Head: 0, Label: "root"},
		{Dependent: 2, Head: 3, Label: "nsubj"},
		{Dependent: 1, Head: 2, Label: "det"},
		{Dependent: 5, Head: 3, Label: "obj"},
		{Dependent: 4, Head: 5, Label: "det"},
		{Dependent: 9, Head: 3, Label: "advcl"},
		{Dependent: 6, Head: 9, Label: "mark"},
		{Dependent: 8, Head: 9, Label: "nsubj"},
		{Dependent: 7, Head: 8, Label: "det"},
		{Dependent: 10, Head: 9, Label: "obj"},
	}
	tree := deptree.New(tokens, tags, arcs)
	ex := act.New(tree, resolver(nil))

	nodes := ex.Extract()
	require.Len(t, nodes, 2)
	_, ok := nodes[0].(*graph.Act)
	require.True(t, ok)
	_, ok = nodes[1].(*graph.Act)
	require.True(t, ok)
}

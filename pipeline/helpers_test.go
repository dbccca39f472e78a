package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/errs"
	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/pos"
)

func TestValidateInputRejectsEmptyText(t *testing.T) {
	err := validateInput("   ", Parse{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestValidateInputRejectsTagCountMismatch(t *testing.T) {
	err := validateInput("hello world", Parse{Tokens: []string{"hello", "world"}, Tags: []string{"NN"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTagCountMismatch)
}

func TestValidateInputRejectsArcOutOfRange(t *testing.T) {
	parse := Parse{
		Tokens: []string{"hello", "world"},
		Tags:   []string{"NN", "NN"},
		Arcs:   []Arc{{Dependent: 3, Head: 0, Label: "root"}},
	}
	err := validateInput("hello world", parse)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrArcOutOfRange)
}

func TestValidateInputRejectsMissingRoot(t *testing.T) {
	parse := Parse{
		Tokens: []string{"hello", "world"},
		Tags:   []string{"NN", "NN"},
		Arcs:   []Arc{{Dependent: 2, Head: 1, Label: "dep"}},
	}
	err := validateInput("hello world", parse)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNoRoot)
}

func TestValidateInputAcceptsWellFormedParse(t *testing.T) {
	parse := Parse{
		Tokens: []string{"hello", "world"},
		Tags:   []string{"NN", "NN"},
		Arcs:   []Arc{{Dependent: 1, Head: 0, Label: "root"}, {Dependent: 2, Head: 1, Label: "dep"}},
	}
	assert.NoError(t, validateInput("hello world", parse))
}

func TestValidateInputAcceptsEmptyParseForNonEmptyText(t *testing.T) {
	assert.NoError(t, validateInput("hello", Parse{}))
}

func TestTokenOffsetMapsOneIndexedIDToSpan(t *testing.T) {
	tagged := []pos.Tagged{
		{Word: "The", Tag: "DT", Start: 0, End: 3},
		{Word: "dog", Tag: "NN", Start: 4, End: 7},
	}
	start, end, ok := tokenOffset(2, tagged)
	require.True(t, ok)
	assert.Equal(t, 4, start)
	assert.Equal(t, 7, end)
}

func TestTokenOffsetRejectsOutOfRangeID(t *testing.T) {
	tagged := []pos.Tagged{{Word: "dog", Tag: "NN", Start: 0, End: 3}}
	_, _, ok := tokenOffset(0, tagged)
	assert.False(t, ok)
	_, _, ok = tokenOffset(2, tagged)
	assert.False(t, ok)
}

func TestCoveringReferentPicksTightestSpan(t *testing.T) {
	outer := &graph.DiscourseReferent{ID: "outer", Start: 0, End: 20}
	inner := &graph.DiscourseReferent{ID: "inner", Start: 4, End: 7}
	refs := []*graph.DiscourseReferent{outer, inner}

	got := coveringReferent(refs, 4, 7)
	require.NotNil(t, got)
	assert.Equal(t, "inner", got.ID)
}

func TestCoveringReferentReturnsNilWhenNoneCovers(t *testing.T) {
	ref := &graph.DiscourseReferent{ID: "only", Start: 10, End: 14}
	got := coveringReferent([]*graph.DiscourseReferent{ref}, 0, 3)
	assert.Nil(t, got)
}

func TestIsPluralLabelHeuristic(t *testing.T) {
	assert.True(t, isPluralLabel("the patients"))
	assert.False(t, isPluralLabel("the glass"))
	assert.False(t, isPluralLabel(""))
}

func TestIsUpperFirst(t *testing.T) {
	assert.True(t, isUpperFirst("Maria"))
	assert.False(t, isUpperFirst("maria"))
}

func TestTenseOf(t *testing.T) {
	assert.Equal(t, "past", tenseOf("VBD"))
	assert.Equal(t, "present", tenseOf("VBZ"))
	assert.Equal(t, "present", tenseOf("VB"))
}

func TestSyntheticModalWord(t *testing.T) {
	word, ok := syntheticModalWord(graph.ModalityObligation)
	require.True(t, ok)
	assert.Equal(t, "should", word)

	word, ok = syntheticModalWord(graph.ModalityPossibility)
	require.True(t, ok)
	assert.Equal(t, "might", word)

	_, ok = syntheticModalWord(graph.ModalityHabitual)
	assert.False(t, ok)

	_, ok = syntheticModalWord("")
	assert.False(t, ok)
}

func TestHasType(t *testing.T) {
	n := &graph.RealWorldEntity{ID: "inst:1", Types: []string{"cco:Person", "owl:NamedIndividual"}}
	assert.True(t, hasType(n, "cco:Person"))
	assert.False(t, hasType(n, "cco:Organization"))
}

func TestIsPluralPerson(t *testing.T) {
	two := 2
	one := 1
	plural := &graph.DiscourseReferent{Quantity: &two}
	singular := &graph.DiscourseReferent{Quantity: &one}
	none := &graph.DiscourseReferent{}

	person := &graph.RealWorldEntity{Types: []string{"cco:Person"}}
	artifact := &graph.RealWorldEntity{Types: []string{"cco:Artifact"}}

	assert.True(t, isPluralPerson(person, plural))
	assert.False(t, isPluralPerson(person, singular))
	assert.False(t, isPluralPerson(person, none))
	assert.False(t, isPluralPerson(artifact, plural))
}

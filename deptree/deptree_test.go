package deptree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/deptree"
)

func sample() *deptree.Tree {
	tokens := []string{"The", "agency", "allocated", "the", "ventilator"}
	tags := []string{"DT", "NN", "VBD", "DT", "NN"}
	arcs := []deptree.Arc{
		{Dependent: 3, Head: 0, Label: "root"},
		{Dependent: 1, Head: 2, Label: "det"},
		{Dependent: 2, Head: 3, Label: "nsubj"},
		{Dependent: 4, Head: 5, Label: "det"},
		{Dependent: 5, Head: 3, Label: "obj"},
	}
	return deptree.New(tokens, tags, arcs)
}

func TestRoots(t *testing.T) {
	tr := sample()
	require.Equal(t, []int{3}, tr.Roots())
}

func TestChildren(t *testing.T) {
	tr := sample()
	children := tr.Children(3)
	require.Len(t, children, 2)
	require.Equal(t, 2, children[0].Dependent)
	require.Equal(t, 5, children[1].Dependent)
}

func TestChildWithLabel(t *testing.T) {
	tr := sample()
	arc, ok := tr.ChildWithLabel(3, "nsubj")
	require.True(t, ok)
	require.Equal(t, 2, arc.Dependent)

	_, ok = tr.ChildWithLabel(3, "iobj")
	require.False(t, ok)
}

func TestSubtreeAndText(t *testing.T) {
	tr := sample()
	require.Equal(t, []int{1, 2}, tr.Subtree(2))
	require.Equal(t, "The agency", tr.SubtreeText(2))
	require.Equal(t, []int{1, 2, 3, 4, 5}, tr.Subtree(3))
}

func TestWordAndTagOutOfRange(t *testing.T) {
	tr := sample()
	require.Equal(t, "", tr.Word(0))
	require.Equal(t, "", tr.Word(99))
	require.Equal(t, "", tr.Tag(99))
	require.Equal(t, "agency", tr.Word(2))
	require.Equal(t, "NN", tr.Tag(2))
}

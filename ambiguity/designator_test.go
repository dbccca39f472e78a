package ambiguity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/ambiguity"
	"github.com/c360studio/tagteam/pos"
)

func tagged(words []string, tags []string) []pos.Tagged {
	out := make([]pos.Tagged, len(words))
	pos_ := 0
	for i, w := range words {
		out[i] = pos.Tagged{Word: w, Tag: tags[i], Start: pos_, End: pos_ + len(w)}
		pos_ += len(w) + 1
	}
	return out
}

func TestComplexDesignatorMultiWordProperName(t *testing.T) {
	ts := tagged(
		[]string{"the", "Department", "of", "Homeland", "Security", "responded"},
		[]string{"DT", "NNP", "IN", "NNP", "NNP", "VBD"},
	)
	ds := ambiguity.DetectComplexDesignators(ts)
	require.Len(t, ds, 1)
	require.Equal(t, "Department", ds[0].NameComponents[0])
}

func TestComplexDesignatorKnownAcronym(t *testing.T) {
	ts := tagged([]string{"DHS", "allocated", "the", "ventilator"}, []string{"NNP", "VBD", "DT", "NN"})
	ds := ambiguity.DetectComplexDesignators(ts)
	require.Len(t, ds, 1)
	require.Equal(t, "DHS", ds[0].FullName)
	require.Equal(t, "cco:Organization", ds[0].DenotedType)
}

func TestComplexDesignatorTitlePrefixDenotesPerson(t *testing.T) {
	ts := tagged([]string{"Dr.", "Smith", "arrived"}, []string{"NNP", "NNP", "VBD"})
	ds := ambiguity.DetectComplexDesignators(ts)
	require.Len(t, ds, 1)
	require.Equal(t, "cco:Person", ds[0].DenotedType)
	require.Equal(t, "Dr. Smith", ds[0].FullName)
}

func TestComplexDesignatorOrganizationSuffix(t *testing.T) {
	ts := tagged([]string{"Acme", "Corp", "shipped", "supplies"}, []string{"NNP", "NNP", "VBD", "NNS"})
	ds := ambiguity.DetectComplexDesignators(ts)
	require.Len(t, ds, 1)
	require.Equal(t, "Acme Corp", ds[0].FullName)
	require.Equal(t, "cco:Organization", ds[0].DenotedType)
}

func TestComplexDesignatorSingleNNPNotFlagged(t *testing.T) {
	ts := tagged([]string{"Smith", "arrived"}, []string{"NNP", "VBD"})
	ds := ambiguity.DetectComplexDesignators(ts)
	require.Len(t, ds, 0)
}

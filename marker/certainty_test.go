package marker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/marker"
)

func TestNeutralClaimHasBaselineScore(t *testing.T) {
	c := marker.AnalyzeCertainty("The doctor allocated the ventilator")
	require.Equal(t, 0.5, c.Score)
	require.Equal(t, marker.DominantNeutral, c.Dominant)
	require.False(t, c.IsHedged)
	require.False(t, c.IsReported)
}

func TestHedgeLowersScore(t *testing.T) {
	c := marker.AnalyzeCertainty("The patient might have diabetes")
	require.True(t, c.IsHedged)
	require.Less(t, c.Score, 0.5)
	require.Equal(t, marker.DominantHedged, c.Dominant)
}

func TestBoosterRaisesScore(t *testing.T) {
	c := marker.AnalyzeCertainty("The doctor definitely allocated the ventilator")
	require.NotEmpty(t, c.Boosters)
	require.Greater(t, c.Score, 0.5)
	require.Equal(t, marker.DominantBoosted, c.Dominant)
}

func TestEvidentialDominatesMixed(t *testing.T) {
	c := marker.AnalyzeCertainty("Reportedly the agency definitely allocated the ventilator")
	require.True(t, c.IsReported)
	require.Equal(t, marker.DominantEvidential, c.Dominant)
}

func TestMultiWordEvidential(t *testing.T) {
	c := marker.AnalyzeCertainty("Officials say the shipment arrived")
	require.True(t, c.IsReported)
}

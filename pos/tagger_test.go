package pos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/pos"
	"github.com/c360studio/tagteam/token"
)

func tagWords(t *testing.T, text string) map[string]string {
	t.Helper()
	tagged := pos.Tag(token.Tokenize(text))
	out := make(map[string]string, len(tagged))
	for _, tk := range tagged {
		out[tk.Word] = tk.Tag
	}
	return out
}

func TestOverrideAlwaysIN(t *testing.T) {
	tags := tagWords(t, "The doctor relies on for the resource")
	require.Equal(t, "IN", tags["for"])
	require.Equal(t, "IN", tags["on"])
}

func TestOverridePostDeterminerNoun(t *testing.T) {
	tagged := pos.Tag(token.Tokenize("the alert was raised"))
	require.Equal(t, "DT", tagged[0].Tag)
	require.Equal(t, "NN", tagged[1].Tag)
}

func TestPronounTagging(t *testing.T) {
	tags := tagWords(t, "She allocated it")
	require.Equal(t, "PRP", tags["She"])
	require.Equal(t, "PRP", tags["it"])
}

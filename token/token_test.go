package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/token"
)

func TestTokenizeSplitsClitics(t *testing.T) {
	toks := token.Tokenize("doesn't")
	var words []string
	for _, tk := range toks {
		words = append(words, tk.Text)
	}
	require.Equal(t, []string{"does", "n't"}, words)
}

func TestTokenizeIsTotalOnEmptyInput(t *testing.T) {
	require.Empty(t, token.Tokenize(""))
}

func TestTokenizeOffsetsRoundTrip(t *testing.T) {
	text := "The doctor runs."
	toks := token.Tokenize(text)
	for _, tk := range toks {
		require.Equal(t, tk.Text, text[tk.Start:tk.End])
	}
}

func TestSentenceSplit(t *testing.T) {
	sentences := token.SentenceSplit("The doctor must allocate the ventilator. It arrived today!")
	require.Len(t, sentences, 2)
	require.Equal(t, "The doctor must allocate the ventilator.", sentences[0])
	require.Equal(t, "It arrived today!", sentences[1])
}

package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/chunk"
	"github.com/c360studio/tagteam/pos"
	"github.com/c360studio/tagteam/token"
)

func tag(t *testing.T, text string) []pos.Tagged {
	t.Helper()
	return pos.Tag(token.Tokenize(text))
}

func TestSimpleChunk(t *testing.T) {
	chunks := chunk.Chunk(tag(t, "the last ventilator"))
	require.Len(t, chunks, 1)
	require.Equal(t, chunk.Simple, chunks[0].Kind)
	require.Equal(t, "ventilator", chunks[0].Head.Word)
}

func TestPossessiveChunkHeadIsPossessed(t *testing.T) {
	chunks := chunk.Chunk(tag(t, "the doctor 's ventilator"))
	require.NotEmpty(t, chunks)
	var found bool
	for _, c := range chunks {
		if c.Kind == chunk.Possessive {
			found = true
			require.Equal(t, "ventilator", c.Head.Word)
			comps := chunk.ExtractComponents(c)
			require.Equal(t, "possessor", comps[0].Role)
		}
	}
	require.True(t, found)
}

func TestPPModifiedChunk(t *testing.T) {
	chunks := chunk.Chunk(tag(t, "a component of DHS"))
	require.NotEmpty(t, chunks)
	found := false
	for _, c := range chunks {
		if c.Kind == chunk.PPModified {
			found = true
			require.Equal(t, "of", c.Preposition)
		}
	}
	require.True(t, found)
}

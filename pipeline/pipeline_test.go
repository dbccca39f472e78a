package pipeline_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/errs"
	"github.com/c360studio/tagteam/pipeline"
)

func TestBuildRejectsEmptyInput(t *testing.T) {
	res, err := pipeline.Build("   ", pipeline.Parse{}, pipeline.DefaultConfig())
	require.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestBuildRejectsTagCountMismatch(t *testing.T) {
	parse := pipeline.Parse{
		Tokens: []string{"Doctors", "treat", "patients", "."},
		Tags:   []string{"NNS", "VBP", "NNS"},
	}
	res, err := pipeline.Build("Doctors treat patients.", parse, pipeline.DefaultConfig())
	require.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTagCountMismatch)
}

func TestBuildRejectsArcOutOfRange(t *testing.T) {
	parse := pipeline.Parse{
		Tokens: []string{"Doctors", "treat", "patients", "."},
		Tags:   []string{"NNS", "VBP", "NNS", "."},
		Arcs: []pipeline.Arc{
			{Dependent: 9, Head: 0, Label: "root"},
		},
	}
	res, err := pipeline.Build("Doctors treat patients.", parse, pipeline.DefaultConfig())
	require.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrArcOutOfRange)
}

func TestBuildRejectsMissingRoot(t *testing.T) {
	parse := pipeline.Parse{
		Tokens: []string{"Doctors", "treat", "patients", "."},
		Tags:   []string{"NNS", "VBP", "NNS", "."},
		Arcs: []pipeline.Arc{
			{Dependent: 1, Head: 2, Label: "nsubj"},
			{Dependent: 3, Head: 2, Label: "obj"},
			{Dependent: 4, Head: 2, Label: "punct"},
		},
	}
	res, err := pipeline.Build("Doctors treat patients.", parse, pipeline.DefaultConfig())
	require.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNoRoot)
}

// wellFormedParse is a syntactically valid dependency parse of "Doctors
// treat patients." (root = treat), built by hand the way an external
// parser would return it: 1-indexed ids, head 0 marking the root.
func wellFormedParse() pipeline.Parse {
	return pipeline.Parse{
		Tokens: []string{"Doctors", "treat", "patients", "."},
		Tags:   []string{"NNS", "VBP", "NNS", "."},
		Arcs: []pipeline.Arc{
			{Dependent: 2, Head: 0, Label: "root"},
			{Dependent: 1, Head: 2, Label: "nsubj"},
			{Dependent: 3, Head: 2, Label: "obj"},
			{Dependent: 4, Head: 2, Label: "punct"},
		},
	}
}

func TestBuildSucceedsOnWellFormedInput(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.DocumentIRI = "doc:test-1"

	res, err := pipeline.Build("Doctors treat patients.", wellFormedParse(), cfg)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotNil(t, res.Document)
	assert.NotEmpty(t, res.SessionID)
	assert.False(t, res.GeneratedAt.IsZero())
}

func TestBuildOmitsMetadataWhenNotRequested(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.DocumentIRI = "doc:test-2"
	cfg.IncludeMetadata = false

	res, err := pipeline.Build("Doctors treat patients.", wellFormedParse(), cfg)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Empty(t, res.SessionID)
	assert.True(t, res.GeneratedAt.IsZero())
}

func TestBuildUsesSuppliedSessionID(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.DocumentIRI = "doc:test-3"
	cfg.SessionID = "session-fixed"

	res, err := pipeline.Build("Doctors treat patients.", wellFormedParse(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "session-fixed", res.SessionID)
}

func TestBuildAndSerializeProducesValidJSON(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.DocumentIRI = "doc:test-4"

	res, err := pipeline.Build("Doctors treat patients.", wellFormedParse(), cfg)
	require.NoError(t, err)

	data, err := pipeline.Serialize(res, cfg)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestBuildStrictModeReturnsNoGraphOnViolation(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.DocumentIRI = "doc:test-5"
	cfg.Strict = true
	// An arc whose head token id is itself within range but dangling from
	// any real clause structure is still a *well-formed* parse by §7's
	// input contract; strictness is about the validator's findings on the
	// resulting graph, not the input shape, so this only exercises the
	// success path unless the graph a real document builds happens to
	// violate a pattern. Skip asserting on violations here since that
	// depends on extraction output this test does not control; just
	// confirm strict mode does not error out on a clean build.
	res, err := pipeline.Build("Doctors treat patients.", wellFormedParse(), cfg)
	if err != nil {
		var strictErr *pipeline.StrictValidationError
		require.True(t, errors.As(err, &strictErr))
		assert.Nil(t, res)
		return
	}
	require.NoError(t, err)
	require.NotNil(t, res)
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	assert.True(t, cfg.CreateTier2)
	assert.Equal(t, "_alt", cfg.IRISuffix)
	assert.True(t, cfg.PreserveOriginalLinks)
	assert.True(t, cfg.IncludeMetadata)
	assert.InDelta(t, 0.7, cfg.DefaultPlausibility, 0.0001)
	assert.True(t, cfg.Compact)
	assert.False(t, cfg.Pretty)
	assert.False(t, cfg.Strict)
}

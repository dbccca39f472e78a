package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsEmpty(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.ProcessRootWords)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidateRejectsNonCompactIRI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProcessRootWords["stent"] = "not-an-iri"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stent")
}

func TestConfigValidateRejectsEmptyIRI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProcessRootWords["stent"] = ""
	require.Error(t, cfg.Validate())
}

func TestConfigValidateAcceptsCompactIRI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProcessRootWords["stent"] = "cco:Artifact"
	assert.NoError(t, cfg.Validate())
}

func TestHasCompactIRIShape(t *testing.T) {
	assert.True(t, hasCompactIRIShape("cco:Artifact"))
	assert.False(t, hasCompactIRIShape("Artifact"))
	assert.False(t, hasCompactIRIShape(":Artifact"))
	assert.False(t, hasCompactIRIShape("cco:"))
	assert.False(t, hasCompactIRIShape(""))
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "domain.yaml")

	content := `
processRootWords:
  stent: "cco:Artifact"
  prescription: "tagteam:DirectiveContent"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "cco:Artifact", cfg.ProcessRootWords["stent"])
	assert.Equal(t, "tagteam:DirectiveContent", cfg.ProcessRootWords["prescription"])
}

func TestLoadFromFileRejectsMalformedIRI(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "domain.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("processRootWords:\n  stent: bad\n"), 0644))

	_, err := LoadFromFile(configPath)
	require.Error(t, err)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfigMergeOverlaysOtherWinning(t *testing.T) {
	base := DefaultConfig()
	base.ProcessRootWords["stent"] = "cco:Artifact"

	override := DefaultConfig()
	override.ProcessRootWords["stent"] = "tagteam:Device"
	override.ProcessRootWords["incision"] = "cco:Act"

	base.Merge(override)

	assert.Equal(t, "tagteam:Device", base.ProcessRootWords["stent"])
	assert.Equal(t, "cco:Act", base.ProcessRootWords["incision"])
}

func TestConfigMergeNilIsNoOp(t *testing.T) {
	base := DefaultConfig()
	base.ProcessRootWords["stent"] = "cco:Artifact"
	base.Merge(nil)
	assert.Equal(t, "cco:Artifact", base.ProcessRootWords["stent"])
}

func TestProcessRootWordSatisfiesDomainConfigLoader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProcessRootWords["stent"] = "cco:Artifact"

	iri, ok := cfg.ProcessRootWord("stent")
	assert.True(t, ok)
	assert.Equal(t, "cco:Artifact", iri)

	_, ok = cfg.ProcessRootWord("unknown")
	assert.False(t, ok)
}

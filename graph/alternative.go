package graph

import (
	"strconv"

	"github.com/c360studio/tagteam/vocabulary/tagteam"
)

// AlternativeNode is a deep-cloned, reading-specific variant of an
// existing node, produced by AlternativeGraphBuilder (§3, §4.11). Rather
// than re-deriving the original's concrete Go type, it carries a snapshot
// of the original's properties (BaseProperties) plus the overrides the
// chosen reading applies; Properties() merges the two, overrides winning.
type AlternativeNode struct {
	ID    string
	Types []string // the caller's reading-specific types, or a copy of the original's types when none are given, plus AlternativeNode
	Label string

	AlternativeFor  Ref
	SourceAmbiguity string
	Plausibility    float64
	MetonymicSource *Ref

	BaseProperties map[string]any
	Overrides      map[string]any
}

func (a *AlternativeNode) NodeID() string      { return a.ID }
func (a *AlternativeNode) NodeTypes() []string { return a.Types }
func (a *AlternativeNode) NodeLabel() string    { return a.Label }

func (a *AlternativeNode) Properties() map[string]any {
	merged := make(map[string]any, len(a.BaseProperties)+len(a.Overrides)+4)
	for k, v := range a.BaseProperties {
		merged[k] = v
	}
	for k, v := range a.Overrides {
		merged[k] = v
	}
	merged["alternativeFor"] = a.AlternativeFor
	if a.SourceAmbiguity != "" {
		merged["sourceAmbiguity"] = a.SourceAmbiguity
	}
	merged["plausibility"] = a.Plausibility
	if a.MetonymicSource != nil {
		merged["metonymicSource"] = *a.MetonymicSource
	}
	return merged
}

// NewAlternativeNode clones original into variant n, suffixing its id
// with "_alt<n>" and adding tagteam:AlternativeNode to its types. The
// caller supplies the reading-specific type list (e.g. re-typed
// Organization for a metonymic bridge) and overrides; a nil type list
// keeps the original's types.
func NewAlternativeNode(original Node, n int, types []string, overrides map[string]any) *AlternativeNode {
	id := altID(original.NodeID(), n)
	if types == nil {
		types = original.NodeTypes()
	}
	allTypes := append(append([]string{}, types...), tagteam.AlternativeNode)
	base := make(map[string]any, len(original.Properties()))
	for k, v := range original.Properties() {
		base[k] = v
	}
	return &AlternativeNode{
		ID:             id,
		Types:          allTypes,
		Label:          original.NodeLabel(),
		AlternativeFor: RefTo(original.NodeID()),
		BaseProperties: base,
		Overrides:      overrides,
	}
}

func altID(originalID string, n int) string {
	return originalID + "_alt" + strconv.Itoa(n)
}

package graph

import "github.com/c360studio/tagteam/vocabulary/cco"

// IBE is an InformationBearingEntity: carries the literal source text for
// one or more ICEs (§3, invariant I9 — the "information staircase").
type IBE struct {
	ID    string
	Types []string
	Label string

	HasTextValue string
	Start, End   int // span the text value was extracted from

	// Concretizes lists every ICE this IBE bears text for; the same IBE
	// may concretize multiple ICEs (§3).
	Concretizes []Ref
}

func (b *IBE) NodeID() string      { return b.ID }
func (b *IBE) NodeTypes() []string { return b.Types }
func (b *IBE) NodeLabel() string    { return b.Label }

func (b *IBE) Properties() map[string]any {
	p := map[string]any{
		"has_text_value": b.HasTextValue,
		"start":          b.Start,
		"end":            b.End,
	}
	if len(b.Concretizes) > 0 {
		p["concretizes"] = b.Concretizes
	}
	return p
}

// NewIBE constructs an IBE with cco:InformationBearingEntity.
func NewIBE(id, text string, start, end int) *IBE {
	return &IBE{ID: id, Label: text, Types: []string{cco.InformationBearingEntity}, HasTextValue: text, Start: start, End: end}
}

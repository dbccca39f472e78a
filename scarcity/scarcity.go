// Package scarcity implements ScarcityAssertionFactory (§4.13): it reads
// Tier 1 referents marked scarce and promotes them to ScarcityAssertion
// ICE nodes, keeping scarcity evidence off Tier 2 entities per invariant
// I6/property P5.
package scarcity

import (
	"time"

	"github.com/c360studio/tagteam/graph"
)

// Factory builds ScarcityAssertion nodes from scarce Tier 1 referents.
type Factory struct {
	now func() time.Time
}

// New constructs a Factory. now defaults to time.Now if nil.
func New(now func() time.Time) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{now: now}
}

// Build emits one ScarcityAssertion per referent carrying a scarcity
// marker, linked is_about the referent's Tier 2 entity and
// extracted_from the Tier 1 referent itself. Referents with no Tier 2
// link (createTier2=false) or no scarcity marker are skipped.
func (f *Factory) Build(referents []*graph.DiscourseReferent) []*graph.ICE {
	var out []*graph.ICE
	for _, r := range referents {
		if r.ScarcityMarker == "" || r.IsAbout == nil {
			continue
		}
		id := graph.InstanceID("ScarcityAssertion",
			graph.ContentHash(8, "scarcity", r.Label),
			graph.ContentHash(8, r.IsAbout.ID, r.ScarcityMarker))

		sa := graph.NewScarcityAssertion(id, r.Label)
		sa.EvidenceText = r.Label
		sa.ScarcityMarker = r.ScarcityMarker
		about := *r.IsAbout
		sa.IsAbout = &about
		extracted := graph.RefTo(r.ID)
		sa.ExtractedFrom = &extracted
		sa.DetectedAt = f.now()
		if r.Quantity != nil {
			count := *r.Quantity
			sa.SupplyCount = &count
		}
		out = append(out, sa)
	}
	return out
}

// Tier 2 entities never carry is_scarce/scarcity_marker/quantity:
// graph.RealWorldEntity has no such fields (invariant I6, property P5),
// so scarcity evidence can only ever reach the graph through the
// ScarcityAssertion nodes Build returns.

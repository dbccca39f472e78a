package graph

import "github.com/c360studio/tagteam/vocabulary/bfo"

// AggregateMember is one member of an ObjectAggregate, carrying its index
// and the aggregate's total membership count (§3).
type AggregateMember struct {
	Member Ref
	Index  int
	Count  int
}

// ObjectAggregate is produced for plural participants referring to
// persons: a bfo:BFO_0000027 entity with ordered has_member_part links
// (§3, §4.8).
type ObjectAggregate struct {
	ID    string
	Types []string
	Label string

	Members []AggregateMember
}

func (o *ObjectAggregate) NodeID() string      { return o.ID }
func (o *ObjectAggregate) NodeTypes() []string { return o.Types }
func (o *ObjectAggregate) NodeLabel() string    { return o.Label }

func (o *ObjectAggregate) Properties() map[string]any {
	refs := make([]Ref, len(o.Members))
	for i, m := range o.Members {
		refs[i] = m.Member
	}
	return map[string]any{
		"has_member_part": refs,
	}
}

// MemberIDs returns the ids of every member in index order.
func (o *ObjectAggregate) MemberIDs() []string {
	ids := make([]string, len(o.Members))
	for i, m := range o.Members {
		ids[i] = m.Member.ID
	}
	return ids
}

// NewObjectAggregate constructs an ObjectAggregate with bfo:BFO_0000027.
func NewObjectAggregate(id, label string, memberIDs []string) *ObjectAggregate {
	members := make([]AggregateMember, len(memberIDs))
	for i, mid := range memberIDs {
		members[i] = AggregateMember{Member: RefTo(mid), Index: i, Count: len(memberIDs)}
	}
	return &ObjectAggregate{ID: id, Label: label, Types: []string{bfo.ObjectAggregate}, Members: members}
}

// Package role implements the RoleDetector (§4.8): derives agent,
// patient, recipient, beneficiary, instrument, and participant roles from
// each Act's participant references, consolidating to exactly one Role
// per (roleType, bearer) pair across the whole document.
package role

import (
	"github.com/c360studio/tagteam/graph"
)

// BearerLookup supplies the participant facts RoleDetector needs that are
// not present on the Act itself (§4.8): whether a bearer can hold
// AgentRole, whether it is a person, whether it is an ObjectAggregate (and
// if so its ordered member ids), and the introducing preposition recorded
// on its Tier 1 referent, if any.
type BearerLookup struct {
	CanBearAgent         func(id string) bool
	IsPerson             func(id string) bool
	AggregateMembers     func(id string) ([]string, bool)
	IntroducingPreposition func(id string) (string, bool)
}

type roleKey struct {
	roleType graph.RoleType
	bearer   string
}

type accumulated struct {
	roleType graph.RoleType
	bearer   string
	acts     []actRealization
}

type actRealization struct {
	actID       string
	canRealize  bool
}

// Detector accumulates roles across every Act passed to Add, in
// insertion order, then synthesises one Role node per key via Build.
type Detector struct {
	lookup BearerLookup
	order  []roleKey
	byKey  map[roleKey]*accumulated
}

// New builds a Detector using lookup to resolve bearer facts.
func New(lookup BearerLookup) *Detector {
	return &Detector{lookup: lookup, byKey: map[roleKey]*accumulated{}}
}

// AddActs processes every act's has_agent/affects/has_participant
// references (§4.8) and accumulates role entries.
func (d *Detector) AddActs(acts []*graph.Act) {
	for _, a := range acts {
		d.addAct(a)
	}
}

func (d *Detector) addAct(a *graph.Act) {
	canRealize := a.ActualityStatus == graph.Actual
	covered := map[string]bool{}

	if a.HasAgent != nil && d.lookup.CanBearAgent != nil && d.lookup.CanBearAgent(a.HasAgent.ID) {
		d.accumulate(graph.RoleAgent, a.HasAgent.ID, a.ID, canRealize)
		covered[a.HasAgent.ID] = true
	}

	if a.Affects != nil {
		roleType := d.affectedRoleType(a.Affects.ID)
		d.accumulate(roleType, a.Affects.ID, a.ID, canRealize)
		covered[a.Affects.ID] = true
	}

	for _, p := range a.HasParticipant {
		if covered[p.ID] {
			continue
		}
		if members, ok := d.aggregateMembers(p.ID); ok {
			for _, m := range members {
				if d.isPerson(m) {
					d.accumulate(graph.RolePatient, m, a.ID, canRealize)
				}
			}
			continue
		}
		roleType := d.participantRoleType(p.ID)
		d.accumulate(roleType, p.ID, a.ID, canRealize)
	}
}

// affectedRoleType implements the §4.8 "Affected" preposition mapping.
func (d *Detector) affectedRoleType(id string) graph.RoleType {
	prep, ok := d.introducingPreposition(id)
	if !ok {
		return graph.RolePatient
	}
	switch prep {
	case "for":
		return graph.RoleBeneficiary
	case "with":
		if d.isPerson(id) {
			return graph.RoleParticipant
		}
		return graph.RoleInstrument
	case "to":
		return graph.RoleRecipient
	case "from":
		return graph.RoleParticipant
	default:
		return graph.RolePatient
	}
}

// participantRoleType implements the §4.8 "Participants" fallback
// mapping: prefer the preposition mapping; failing that, patient if
// person else participant.
func (d *Detector) participantRoleType(id string) graph.RoleType {
	prep, ok := d.introducingPreposition(id)
	if ok {
		switch prep {
		case "for":
			return graph.RoleBeneficiary
		case "with":
			if d.isPerson(id) {
				return graph.RoleParticipant
			}
			return graph.RoleInstrument
		case "to":
			return graph.RoleRecipient
		case "from":
			return graph.RoleParticipant
		}
	}
	if d.isPerson(id) {
		return graph.RolePatient
	}
	return graph.RoleParticipant
}

func (d *Detector) aggregateMembers(id string) ([]string, bool) {
	if d.lookup.AggregateMembers == nil {
		return nil, false
	}
	return d.lookup.AggregateMembers(id)
}

func (d *Detector) introducingPreposition(id string) (string, bool) {
	if d.lookup.IntroducingPreposition == nil {
		return "", false
	}
	return d.lookup.IntroducingPreposition(id)
}

func (d *Detector) isPerson(id string) bool {
	if d.lookup.IsPerson == nil {
		return false
	}
	return d.lookup.IsPerson(id)
}

func (d *Detector) accumulate(roleType graph.RoleType, bearer, actID string, canRealize bool) {
	key := roleKey{roleType: roleType, bearer: bearer}
	acc, ok := d.byKey[key]
	if !ok {
		acc = &accumulated{roleType: roleType, bearer: bearer}
		d.byKey[key] = acc
		d.order = append(d.order, key)
	}
	acc.acts = append(acc.acts, actRealization{actID: actID, canRealize: canRealize})
}

// Build synthesises one Role node per accumulated key, in the order keys
// were first seen, and returns the is_bearer_of additions each bearer
// should receive (bearer id -> deduplicated role ids, in role order).
func (d *Detector) Build(specificTypeFor func(roleType graph.RoleType) string) ([]*graph.Role, map[string][]string) {
	roles := make([]*graph.Role, 0, len(d.order))
	bearerOf := map[string][]string{}
	seenBearerRole := map[string]map[string]bool{}

	for _, key := range d.order {
		acc := d.byKey[key]
		hash := graph.ContentHash(8, string(key.roleType), key.bearer)
		id := graph.InstanceID(string(key.roleType), "Role", hash)

		specific := roleTypeString(key.roleType)
		if specificTypeFor != nil {
			if t := specificTypeFor(key.roleType); t != "" {
				specific = t
			}
		}

		r := graph.NewRole(id, string(key.roleType), key.roleType, specific)
		r.InheresIn = graph.RefTo(key.bearer)

		seen := map[string]bool{}
		for _, real := range acc.acts {
			if seen[real.actID] {
				continue
			}
			seen[real.actID] = true
			if real.canRealize {
				r.RealizedIn = append(r.RealizedIn, graph.RefTo(real.actID))
			} else {
				r.WouldBeRealizedIn = append(r.WouldBeRealizedIn, graph.RefTo(real.actID))
			}
		}

		roles = append(roles, r)

		if seenBearerRole[key.bearer] == nil {
			seenBearerRole[key.bearer] = map[string]bool{}
		}
		if !seenBearerRole[key.bearer][id] {
			seenBearerRole[key.bearer][id] = true
			bearerOf[key.bearer] = append(bearerOf[key.bearer], id)
		}
	}
	return roles, bearerOf
}

// roleTypeString renders a RoleType as its tagteam-namespaced compact IRI,
// used as the fallback specific type when the caller does not register a
// more specific ontology subclass.
func roleTypeString(t graph.RoleType) string { return "tagteam:" + string(t) }

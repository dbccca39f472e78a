package graph

import "github.com/c360studio/tagteam/vocabulary/bfo"

// RoleType enumerates the role subclasses a bearer can hold (§3, §4.8).
type RoleType string

const (
	RoleAgent       RoleType = "AgentRole"
	RolePatient     RoleType = "PatientRole"
	RoleRecipient   RoleType = "RecipientRole"
	RoleBeneficiary RoleType = "BeneficiaryRole"
	RoleInstrument  RoleType = "InstrumentRole"
	RoleParticipant RoleType = "ParticipantRole"
	RoleBare        RoleType = "Role"
)

// Role is exactly one node per (roleType, bearer) pair across all acts
// the bearer participates in (§3, §4.8, invariant I8).
type Role struct {
	ID    string
	Types []string
	Label string

	RoleType RoleType
	InheresIn Ref

	RealizedIn        []Ref
	WouldBeRealizedIn []Ref
}

func (r *Role) NodeID() string      { return r.ID }
func (r *Role) NodeTypes() []string { return r.Types }
func (r *Role) NodeLabel() string    { return r.Label }

func (r *Role) Properties() map[string]any {
	p := map[string]any{
		"inheres_in": r.InheresIn,
	}
	if len(r.RealizedIn) == 1 {
		p["realized_in"] = r.RealizedIn[0]
	} else if len(r.RealizedIn) > 1 {
		p["realized_in"] = r.RealizedIn
	}
	if len(r.WouldBeRealizedIn) == 1 {
		p["would_be_realized_in"] = r.WouldBeRealizedIn[0]
	} else if len(r.WouldBeRealizedIn) > 1 {
		p["would_be_realized_in"] = r.WouldBeRealizedIn
	}
	return p
}

// NewRole constructs a Role with the role-specific type plus bfo:Role
// (unless the specific type already is bfo:Role, per §4.8).
func NewRole(id, label string, roleType RoleType, specificType string) *Role {
	types := []string{specificType}
	if specificType != bfo.Role {
		types = append(types, bfo.Role)
	}
	return &Role{ID: id, Label: label, Types: types, RoleType: roleType}
}

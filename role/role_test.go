package role_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/role"
)

func lookup(persons, agents map[string]bool, prepositions map[string]string, aggregates map[string][]string) role.BearerLookup {
	return role.BearerLookup{
		CanBearAgent: func(id string) bool { return agents[id] },
		IsPerson:     func(id string) bool { return persons[id] },
		AggregateMembers: func(id string) ([]string, bool) {
			m, ok := aggregates[id]
			return m, ok
		},
		IntroducingPreposition: func(id string) (string, bool) {
			p, ok := prepositions[id]
			return p, ok
		},
	}
}

func TestAgentAndPatientRoleFromSingleAct(t *testing.T) {
	a := graph.NewAct("inst:Act_allocate_1", "allocated")
	a.HasAgent = ref("inst:Person_doctor_1")
	a.Affects = ref("inst:Artifact_ventilator_1")
	a.ActualityStatus = graph.Actual

	d := role.New(lookup(
		map[string]bool{"inst:Person_doctor_1": true},
		map[string]bool{"inst:Person_doctor_1": true},
		nil, nil,
	))
	d.AddActs([]*graph.Act{a})
	roles, bearerOf := d.Build(nil)

	require.Len(t, roles, 2)
	require.Equal(t, graph.RoleAgent, roles[0].RoleType)
	require.Equal(t, graph.RolePatient, roles[1].RoleType)
	require.Len(t, roles[0].RealizedIn, 1)
	require.Contains(t, bearerOf["inst:Person_doctor_1"], roles[0].ID)
}

func TestWouldBeRealizedForPrescribedAct(t *testing.T) {
	a := graph.NewAct("inst:Act_allocate_1", "allocate")
	a.HasAgent = ref("inst:Person_doctor_1")
	a.ActualityStatus = graph.Prescribed

	d := role.New(lookup(nil, map[string]bool{"inst:Person_doctor_1": true}, nil, nil))
	d.AddActs([]*graph.Act{a})
	roles, _ := d.Build(nil)

	require.Len(t, roles, 1)
	require.Empty(t, roles[0].RealizedIn)
	require.Len(t, roles[0].WouldBeRealizedIn, 1)
}

func TestConsolidatesAcrossMultipleActs(t *testing.T) {
	a1 := graph.NewAct("inst:Act_1", "allocated")
	a1.HasAgent = ref("inst:Person_doctor_1")
	a1.ActualityStatus = graph.Actual
	a2 := graph.NewAct("inst:Act_2", "reviewed")
	a2.HasAgent = ref("inst:Person_doctor_1")
	a2.ActualityStatus = graph.Actual

	d := role.New(lookup(nil, map[string]bool{"inst:Person_doctor_1": true}, nil, nil))
	d.AddActs([]*graph.Act{a1, a2})
	roles, _ := d.Build(nil)

	require.Len(t, roles, 1)
	require.Len(t, roles[0].RealizedIn, 2)
}

func TestAggregateMembersBecomePatients(t *testing.T) {
	a := graph.NewAct("inst:Act_1", "treated")
	a.HasParticipant = []graph.Ref{*ref("inst:ObjectAggregate_patients_1")}
	a.ActualityStatus = graph.Actual

	d := role.New(lookup(
		map[string]bool{"inst:Person_p1": true, "inst:Person_p2": true},
		nil, nil,
		map[string][]string{"inst:ObjectAggregate_patients_1": {"inst:Person_p1", "inst:Person_p2"}},
	))
	d.AddActs([]*graph.Act{a})
	roles, _ := d.Build(nil)

	require.Len(t, roles, 2)
	require.Equal(t, graph.RolePatient, roles[0].RoleType)
	require.Equal(t, graph.RolePatient, roles[1].RoleType)
}

func TestPrepositionMapsToBeneficiary(t *testing.T) {
	a := graph.NewAct("inst:Act_1", "bought")
	a.Affects = ref("inst:Person_patient_1")
	a.ActualityStatus = graph.Actual

	d := role.New(lookup(nil, nil, map[string]string{"inst:Person_patient_1": "for"}, nil))
	d.AddActs([]*graph.Act{a})
	roles, _ := d.Build(nil)

	require.Len(t, roles, 1)
	require.Equal(t, graph.RoleBeneficiary, roles[0].RoleType)
}

func ref(id string) *graph.Ref {
	r := graph.RefTo(id)
	return &r
}

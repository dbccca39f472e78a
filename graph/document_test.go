package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/graph"
)

func TestDocumentCheckReferencesDetectsDangling(t *testing.T) {
	doc := &graph.Document{}
	entity := &graph.RealWorldEntity{ID: "inst:Person_doctor_abc123", Types: []string{"cco:Person"}, Label: "doctor"}
	doc.Add(entity)

	role := graph.NewRole("inst:AgentRole_Role_deadbeef", "agent role", graph.RoleAgent, "tagteam:AgentRole")
	role.InheresIn = graph.RefTo("inst:Person_doctor_abc123")
	doc.Add(role)

	require.NoError(t, doc.CheckReferences())

	dangling := graph.NewRole("inst:PatientRole_Role_feedface", "patient role", graph.RolePatient, "tagteam:PatientRole")
	dangling.InheresIn = graph.RefTo("inst:DoesNotExist")
	doc.Add(dangling)

	err := doc.CheckReferences()
	require.Error(t, err)
	require.Contains(t, err.Error(), "DoesNotExist")
}

func TestContentHashIsDeterministic(t *testing.T) {
	h1 := graph.ContentHash(12, "doctor", "cco:Person", "doc-1")
	h2 := graph.ContentHash(12, "doctor", "cco:Person", "doc-1")
	require.Equal(t, h1, h2)
	require.Len(t, h1, 12)

	h3 := graph.ContentHash(12, "nurse", "cco:Person", "doc-1")
	require.NotEqual(t, h1, h3)
}

func TestAlternativeNodeMergesOverrides(t *testing.T) {
	act := graph.NewAct("inst:Act_allocate_1", "allocate")
	act.Modality = graph.ModalityObligation
	act.ActualityStatus = graph.Prescribed

	alt := graph.NewAlternativeNode(act, 1, append(act.Types), map[string]any{
		"modality":        string(graph.ModalityExpectation),
		"actualityStatus": string(graph.HypotheticalStatus),
	})

	require.Equal(t, "inst:Act_allocate_1_alt1", alt.NodeID())
	props := alt.Properties()
	require.Equal(t, string(graph.ModalityExpectation), props["modality"])
	require.Equal(t, string(graph.HypotheticalStatus), props["actualityStatus"])
	require.Equal(t, graph.RefTo("inst:Act_allocate_1"), props["alternativeFor"])
}

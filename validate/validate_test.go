package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/validate"
	"github.com/c360studio/tagteam/vocabulary/bfo"
)

func TestRolePatternViolationForUnresolvedBearer(t *testing.T) {
	doc := &graph.Document{}
	role := graph.NewRole("inst:Role_1", "agent", "AgentRole", bfo.Role)
	role.InheresIn = graph.RefTo("inst:missing")
	doc.Add(role)

	res := validate.Validate(doc, validate.Options{})
	found := false
	for _, f := range res.Violations() {
		if f.Pattern == validate.PatternRole && f.NodeID == role.ID {
			found = true
		}
	}
	require.True(t, found, "expected a ROLEPATTERN violation for an unresolved bearer")
}

func TestDomainRangeViolationForPartOfTargetingProcess(t *testing.T) {
	doc := &graph.Document{}
	proc := graph.NewAct("inst:Act_1", "allocate")
	doc.Add(proc)

	doc.Add(&fakeNode{
		id:    "inst:Fake_1",
		types: []string{"cco:Artifact"},
		props: map[string]any{"is_part_of": graph.RefTo(proc.ID)},
	})

	res := validate.Validate(doc, validate.Options{})
	found := false
	for _, f := range res.Violations() {
		if f.Pattern == validate.PatternDomainRange && f.NodeID == "inst:Fake_1" {
			found = true
		}
	}
	require.True(t, found, "expected a DOMAINRANGE violation: is_part_of must never target a process")
}

func TestDomainRangeViolationForHasAgentOnNonProcess(t *testing.T) {
	doc := &graph.Document{}
	person := &graph.RealWorldEntity{ID: "inst:Person_1", Types: []string{"cco:Person", "owl:NamedIndividual"}, Label: "doctor"}
	doc.Add(person)

	// An Act typed only cco:Act, without bfo:Process, violates has_agent's
	// domain requirement even though it is the node that declares has_agent.
	act := &graph.Act{ID: "inst:Act_2", Label: "allocate", Types: []string{"cco:Act"}}
	hasAgent := graph.RefTo(person.ID)
	act.HasAgent = &hasAgent
	doc.Add(act)

	res := validate.Validate(doc, validate.Options{})
	found := false
	for _, f := range res.Violations() {
		if f.Pattern == validate.PatternDomainRange && f.NodeID == act.ID {
			found = true
		}
	}
	require.True(t, found, "expected a DOMAINRANGE violation: has_agent domain must be bfo:Process")
}

func TestStrictModePromotesWarningsToViolations(t *testing.T) {
	doc := &graph.Document{}
	ice := graph.NewGenericICE("inst:ICE_1", "claim")
	doc.Add(ice)

	lenient := validate.Validate(doc, validate.Options{Strict: false})
	strict := validate.Validate(doc, validate.Options{Strict: true})

	require.NotEmpty(t, lenient.Warnings())
	require.Empty(t, strict.Warnings())
	require.GreaterOrEqual(t, len(strict.Violations()), len(lenient.Warnings()))
}

func TestVocabularyPatternFlagsUnknownPredicate(t *testing.T) {
	doc := &graph.Document{}
	doc.Add(&fakeNode{id: "inst:Fake_1", types: []string{"cco:Person"}, props: map[string]any{"has_agnet": "typo"}})

	res := validate.Validate(doc, validate.Options{})
	found := false
	for _, f := range res.Warnings() {
		if f.Pattern == validate.PatternVocabulary {
			found = true
		}
	}
	require.True(t, found)
}

type fakeNode struct {
	id    string
	types []string
	props map[string]any
}

func (f *fakeNode) NodeID() string            { return f.id }
func (f *fakeNode) NodeTypes() []string       { return f.types }
func (f *fakeNode) NodeLabel() string         { return "" }
func (f *fakeNode) Properties() map[string]any { return f.props }

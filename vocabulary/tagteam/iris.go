// Package tagteam provides the project-local vocabulary namespace: role
// subclasses, the alternative-node marker, and the document-scoped
// instance namespace used for content-addressed ids.
package tagteam

// Namespace is the compact-IRI prefix for project-local terms.
const Namespace = "tagteam:"

// InstanceNamespace prefixes every node id emitted by the pipeline.
const InstanceNamespace = "inst:"

// Role subclasses (§3 Role).
const (
	AgentRole       = Namespace + "AgentRole"
	PatientRole     = Namespace + "PatientRole"
	RecipientRole   = Namespace + "RecipientRole"
	BeneficiaryRole = Namespace + "BeneficiaryRole"
	InstrumentRole  = Namespace + "InstrumentRole"
	ParticipantRole = Namespace + "ParticipantRole"
)

// AlternativeNode marks a cloned, reading-specific variant of a node
// (§3 Alternative reading, §4.11 AlternativeGraphBuilder).
const AlternativeNode = Namespace + "AlternativeNode"

// DiscourseReferent marks a Tier 1 node (§3).
const DiscourseReferent = Namespace + "DiscourseReferent"

// ComplexDesignator marks a multi-word proper-name span (§4.12).
const ComplexDesignator = Namespace + "ComplexDesignator"

// StructuralAssertion marks the sibling variant of Act that carries
// copular/possessive/existential/verb-derived relations (§3, §4.5).
const StructuralAssertion = Namespace + "StructuralAssertion"

// ObjectAggregate is the tagteam-local marker added alongside
// bfo:BFO_0000027 so validators and serializers can recognise aggregates
// without re-deriving BFO membership.
const ObjectAggregate = Namespace + "ObjectAggregate"

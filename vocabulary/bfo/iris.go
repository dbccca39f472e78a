// Package bfo provides compact-IRI constants for the Basic Formal Ontology
// classes and relations this pipeline types nodes and edges against.
//
// Only the fragment of BFO the pipeline actually emits is modelled here;
// it is not a full BFO binding.
package bfo

// Namespace is the compact-IRI prefix for BFO terms.
const Namespace = "bfo:"

// Class IRIs, compact-form "bfo:BFO_NNNNNNN" per the BFO 2020 numbering.
const (
	// IndependentContinuant is the top class for entities with independent
	// existence (persons, organizations, artifacts, material entities).
	IndependentContinuant = Namespace + "BFO_0000004"

	// Process is the top class for occurrents: acts, events, activities.
	Process = Namespace + "BFO_0000015"

	// Disposition is a realizable entity borne by an independent continuant
	// that is realized in some process type when triggering conditions hold
	// (diseases, capacities, abilities).
	Disposition = Namespace + "BFO_0000016"

	// Quality is a specifically dependent continuant that characterizes its
	// bearer at every time it exists (symptoms, evaluative qualities).
	Quality = Namespace + "BFO_0000019"

	// Role is a realizable entity that exists because its bearer is in
	// some special circumstance, not in virtue of its bearer's physical
	// makeup (agent, patient, recipient, beneficiary, instrument roles).
	Role = Namespace + "BFO_0000023"

	// ObjectAggregate is a material entity that is a mereological sum of
	// separate objects (a group of persons referred to collectively).
	ObjectAggregate = Namespace + "BFO_0000027"

	// GenericallyDependentContinuant is the top class for information
	// content (text, claims, designators) that can migrate between bearers.
	GenericallyDependentContinuant = Namespace + "BFO_0000031"

	// MaterialEntity is the default continuant type when no more specific
	// typing rule fires.
	MaterialEntity = Namespace + "BFO_0000040"

	// Entity is the BFO root; used for demonstrative pronouns and as the
	// ultimate default for RealWorldEntityFactory.
	Entity = Namespace + "BFO_0000001"

	// TemporalRegion1D is a one-dimensional temporal region (a duration or
	// point in time), used for quantity+unit and relative temporal NPs.
	TemporalRegion1D = Namespace + "BFO_0000038"

	// SpatiotemporalRegion is used for location-denoting continuants that
	// do not warrant a more specific class.
	SpatiotemporalRegion = Namespace + "BFO_0000011"
)

// Property IRIs used by structural assertions and role/bearer linkage.
const (
	// PartOf relates a continuant to a whole it is part of. Per §4.14
	// pattern 7, its range must never be bfo:Process.
	PartOf = Namespace + "part_of"

	// LocatedIn relates a continuant or process to its location.
	LocatedIn = Namespace + "located_in"

	// HasParticipant relates a process to any continuant involved in it,
	// independent of role.
	HasParticipant = Namespace + "has_participant"

	// OccursDuring relates a process to the temporal region it occupies.
	OccursDuring = Namespace + "occurs_during"

	// InheresIn relates a specifically/generically dependent continuant
	// (a Role or Quality) to its independent-continuant bearer.
	InheresIn = Namespace + "inheres_in"
)

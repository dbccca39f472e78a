// Package cco provides compact-IRI constants for the Common Core Ontology
// classes and relations this pipeline uses to refine BFO typing for
// persons, organizations, artifacts, and information content entities.
package cco

// Namespace is the compact-IRI prefix for CCO terms.
const Namespace = "cco:"

// Class IRIs.
const (
	Person                    = Namespace + "Person"
	Organization              = Namespace + "Organization"
	GroupOfPersons            = Namespace + "GroupOfPersons"
	Artifact                  = Namespace + "Artifact"
	Facility                  = Namespace + "Facility"
	GeopoliticalEntity        = Namespace + "GeopoliticalEntity"
	InformationContentEntity  = Namespace + "InformationContentEntity"
	InformationBearingEntity  = Namespace + "InformationBearingEntity"
	GenericInformationContent = Namespace + "GenericInformationContentEntity" // GDC shorthand per §4.6 step 3
	DesignativeICE            = Namespace + "DesignativeInformationContentEntity"
	DirectiveContent          = Namespace + "DirectiveInformationContentEntity"
	ScarcityAssertion         = Namespace + "ScarcityAssertion"
	ValueAssertionEvent       = Namespace + "ValueAssertionEvent"
	ContextAssessmentEvent    = Namespace + "ContextAssessmentEvent"
	Act                       = Namespace + "Act"
	QualityMeasurement        = Namespace + "QualityMeasurement"
)

// Property IRIs.
const (
	HasAgent            = Namespace + "has_agent"
	Affects             = Namespace + "affects"
	HasMemberPart       = Namespace + "has_member_part"
	HasPart             = Namespace + "has_part"
	MemberOf            = Namespace + "member_of"
	HasFunction         = Namespace + "has_function"
	IsConcretizedBy     = Namespace + "is_concretized_by"
	Concretizes         = Namespace + "concretizes"
	HasTextValue        = Namespace + "has_text_value"
	IsAbout             = Namespace + "is_about"
	IsBearerOf          = Namespace + "is_bearer_of"
	RealizedIn          = Namespace + "realized_in"
	WouldBeRealizedIn   = Namespace + "would_be_realized_in"
	Designates          = Namespace + "designates"
	IsDesignatedBy      = Namespace + "is_designated_by"
	Prescribes          = Namespace + "prescribes"
	Asserts             = Namespace + "asserts"
	HasStartTime        = Namespace + "has_start_time"
	HasEndTime          = Namespace + "has_end_time"
	Measures            = Namespace + "measures"
	IsMeasuredBy        = Namespace + "is_measured_by"
	HasMeasurementValue = Namespace + "has_measurement_value"
	UsesMeasurementUnit = Namespace + "uses_measurement_unit"
	ExtractedFrom       = Namespace + "extracted_from"
)

// Package context holds the fixed JSON-LD @context JSONLDSerializer
// emits and parses against (§4.15).
package context

// namespaces maps each compact-IRI prefix this pipeline emits to its
// expansion IRI.
var namespaces = map[string]string{
	"bfo":     "http://purl.obolibrary.org/obo/bfo#",
	"cco":     "https://www.commoncoreontologies.org/",
	"tagteam": "https://tagteam.c360studio.dev/ns#",
	"inst":    "https://tagteam.c360studio.dev/inst#",
	"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
	"owl":     "http://www.w3.org/2002/07/owl#",
	"xsd":     "http://www.w3.org/2001/XMLSchema#",
}

// classAliases gives short, document-local names for the node kinds this
// pipeline's @graph contains, each mapped to its owl:Class.
var classAliases = map[string]string{
	"DiscourseReferent":      "tagteam:DiscourseReferent",
	"RealWorldEntity":        "bfo:BFO_0000001",
	"Act":                    "bfo:BFO_0000015",
	"StructuralAssertion":    "tagteam:StructuralAssertion",
	"Role":                   "bfo:BFO_0000023",
	"ObjectAggregate":        "bfo:BFO_0000027",
	"ScarcityAssertion":      "cco:ScarcityAssertion",
	"DirectiveContent":       "cco:DirectiveInformationContentEntity",
	"ValueAssertionEvent":    "cco:ValueAssertionEvent",
	"ContextAssessmentEvent": "cco:ContextAssessmentEvent",
	"ComplexDesignator":      "tagteam:ComplexDesignator",
	"AlternativeNode":        "tagteam:AlternativeNode",
}

// idValuedPredicates are the predicates the context coerces to
// "@type": "@id" so the serializer emits bare id strings for references
// rather than nested literal objects (§4.15).
var idValuedPredicates = []string{
	"inheres_in", "is_bearer_of", "realized_in", "would_be_realized_in",
	"has_participant", "has_agent", "affects", "is_concretized_by",
	"concretizes", "is_about", "asserts", "based_on", "detected_by",
	"validInContext", "assertionType", "validatedBy", "supersedes",
	"has_part", "is_part_of", "member_of", "designates", "is_designated_by",
	"prescribes", "extracted_from", "has_member_part", "alternativeFor",
	"metonymicSource", "occurs_during", "subject", "object",
}

// literalTypedPredicates are the predicates the context type-coerces to
// fixed XSD literal types (§4.15).
var literalTypedPredicates = map[string]string{
	"extractionConfidence":     "xsd:double",
	"classificationConfidence": "xsd:double",
	"relevanceConfidence":      "xsd:double",
	"aggregateConfidence":      "xsd:double",
	"validationTimestamp":      "xsd:dateTime",
	"temporal_extent":          "xsd:duration",
	"score":                    "xsd:double",
	"polarity":                 "xsd:double",
	"salience":                 "xsd:double",
}

// Build returns the fixed @context object: namespace prefixes, class
// aliases, and the @id/literal predicate type coercions.
func Build() map[string]any {
	ctx := make(map[string]any, len(namespaces)+len(classAliases)+len(idValuedPredicates)+len(literalTypedPredicates))
	for prefix, iri := range namespaces {
		ctx[prefix] = iri
	}
	for alias, class := range classAliases {
		ctx[alias] = map[string]any{"@id": class}
	}
	for _, pred := range idValuedPredicates {
		ctx[pred] = map[string]any{"@type": "@id"}
	}
	for pred, xsdType := range literalTypedPredicates {
		ctx[pred] = map[string]any{"@type": xsdType}
	}
	return ctx
}

// IsIDValued reports whether pred is coerced to an @id reference.
func IsIDValued(pred string) bool {
	for _, p := range idValuedPredicates {
		if p == pred {
			return true
		}
	}
	return false
}

// LiteralType returns the fixed XSD type for pred, if any.
func LiteralType(pred string) (string, bool) {
	t, ok := literalTypedPredicates[pred]
	return t, ok
}

package lexicon

// ResultNouns are head nouns whose surface reads unambiguously as a
// result rather than the process that produced it (§4.6 step 3 and step
// 5 "exceptions" — the same table serves both, per spec: step 3 fires
// with no context needed, step 5 re-checks the same table as a fallback
// for nominalizations that reached that far without a context match).
var ResultNouns = map[string]string{
	"medication":    "cco:Artifact",
	"documentation": "cco:GenericInformationContentEntity",
	"location":      "bfo:BFO_0000040",
	"publication":   "cco:InformationBearingEntity",
	"prescription":  "cco:DirectiveInformationContentEntity",
	"specification": "cco:DirectiveInformationContentEntity",
	"translation":   "cco:GenericInformationContentEntity",
}

// AmbiguousNominalizations are head nouns that read as either a Process
// or an Artifact/GDC depending on context (§4.6 step 4): "of Y" ->
// Process; definite determiner -> the entity default; bare/indefinite ->
// the entity default (chosen as the safer fallback over Process).
var AmbiguousNominalizations = map[string]string{
	"organization": "cco:Organization",
	"construction": "cco:Artifact",
	"development":  "cco:Organization",
	"production":   "cco:Organization",
	"treatment":    "cco:Artifact",
	"assessment":   "cco:GenericInformationContentEntity",
	"management":   "cco:Organization",
}

// EntityArtifactKeywords are modifier nouns that, placed directly before
// an AmbiguousCompoundHeads head, resolve the compound noun to a Process
// reading (§4.6 step 2).
var EntityArtifactKeywords = map[string]bool{
	"system": true, "device": true, "machine": true, "equipment": true,
	"tool": true, "unit": true, "server": true, "database": true,
}

// AmbiguousCompoundHeads are head nouns of compound NPs that are
// ambiguously nominal/process (§4.6 step 2).
var AmbiguousCompoundHeads = map[string]bool{
	"processing": true, "testing": true, "monitoring": true, "handling": true,
	"management": true, "maintenance": true,
}

// ProcessSuffixes trigger bfo:Process typing when none of the earlier,
// more specific cascade steps matched (§4.6 step 8).
var ProcessSuffixes = []string{"-tion", "-ment", "-ing", "-sis", "-ance", "-ence", "-ure", "-ery"}

// AmbiguousObjectNouns are nouns whose type depends on the nearest
// governing verb (§4.6 verb-context refinement).
var AmbiguousObjectNouns = map[string]bool{
	"design": true, "report": true, "document": true, "plan": true,
	"data": true, "specification": true, "proposal": true, "draft": true,
}

// PersonNouns map directly to cco:Person (§4.6 step 10).
var PersonNouns = map[string]bool{
	"doctor": true, "nurse": true, "patient": true, "patients": true,
	"physician": true, "surgeon": true, "clinician": true, "engineer": true,
	"manager": true, "director": true, "employee": true, "student": true,
	"teacher": true, "professor": true, "officer": true, "president": true,
	"ceo": true, "developer": true, "scientist": true, "researcher": true,
	"lawyer": true, "customer": true, "client": true, "user": true,
}

// OrganizationNouns map directly to cco:Organization (§4.6 step 10).
var OrganizationNouns = map[string]bool{
	"company": true, "corporation": true, "organization": true,
	"hospital": true, "university": true, "agency": true, "firm": true,
	"department": true, "ministry": true, "committee": true, "board": true,
	"team": true, "group": true, "institute": true, "foundation": true,
}

// ArtifactNouns map directly to cco:Artifact (§4.6 step 10).
var ArtifactNouns = map[string]bool{
	"ventilator": true, "computer": true, "phone": true, "vehicle": true,
	"building": true, "bridge": true, "machine": true, "device": true,
	"tool": true, "vaccine": true, "medicine": true, "book": true,
	"document": true, "contract": true, "report": true, "car": true,
}

// FacilityNouns map directly to cco:Facility (§4.6 step 10).
var FacilityNouns = map[string]bool{
	"clinic": true, "ward": true, "warehouse": true, "factory": true,
	"airport": true, "station": true, "plant": true, "office": true,
}

// QualityNouns map directly to bfo:BFO_0000019 (Quality) (§4.6 step 10,
// step 12 evaluative qualities).
var QualityNouns = map[string]bool{
	"success": true, "failure": true, "demand": true, "quality": true,
	"color": true, "colour": true, "weight": true, "height": true,
	"temperature": true, "pressure": true, "speed": true,
}

// SymptomPhrases are multi-word symptom expressions recognised as a
// whole (§4.6 step 12).
var SymptomPhrases = map[string]bool{
	"shortness of breath": true, "chest pain": true, "high fever": true,
	"loss of appetite": true,
}

// SymptomHeads are single-word symptom head nouns (§4.6 step 12).
var SymptomHeads = map[string]bool{
	"fever": true, "cough": true, "pain": true, "nausea": true,
	"fatigue": true, "rash": true, "headache": true, "dizziness": true,
}

// DiseaseTerms map to bfo:BFO_0000016 (Disposition), per OGMS treatment of
// diseases as dispositions realized in a course (§4.6 step 12, §8 S6).
var DiseaseTerms = map[string]bool{
	"diabetes": true, "cancer": true, "hypertension": true, "asthma": true,
	"influenza": true, "pneumonia": true, "arthritis": true, "anemia": true,
	"tuberculosis": true,
}

// DispositionTerms are non-disease capacity/ability terms that also map
// to bfo:BFO_0000016 (§4.6 step 12).
var DispositionTerms = map[string]bool{
	"capacity": true, "ability": true, "tendency": true, "capability": true,
	"aptitude": true, "susceptibility": true, "immunity": true,
}

// ProductNames map to cco:Artifact under the proper-name heuristics
// (§4.6 step 14).
var ProductNames = map[string]bool{
	"ventilator": true, "pacemaker": true, "defibrillator": true,
}

// OrganizationSuffixes are surface tokens that, trailing a capitalised
// span, mark it as an Organization (§4.6 step 14, §4.12).
var OrganizationSuffixes = map[string]bool{
	"inc": true, "inc.": true, "corp": true, "corp.": true, "llc": true,
	"ltd": true, "ltd.": true, "company": true, "corporation": true,
	"foundation": true,
}

// TitlePrefixes mark the following proper name as a Person (§4.6 step
// 14).
var TitlePrefixes = map[string]bool{
	"dr": true, "dr.": true, "mr": true, "mr.": true, "mrs": true, "mrs.": true,
	"ms": true, "ms.": true, "prof": true, "prof.": true,
}

// MetonymyLocationNouns are place/institution-denoting nouns that, when
// found in agent position, suggest a metonymic bridge to Organization
// (§4.11).
var MetonymyLocationNouns = map[string]bool{
	"house": true, "city": true, "country": true, "building": true,
	"capital": true, "headquarters": true, "nation": true, "office": true,
}

// RelativeTemporalTerms stand alone as temporal regions (§4.6 step 11).
var RelativeTemporalTerms = map[string]bool{
	"today": true, "yesterday": true, "tomorrow": true, "now": true,
	"recently": true, "soon": true,
}

// RelativeTemporalPrefixes combine with a unit ("next week", "last
// month") to denote a relative temporal region (§4.6 step 11).
var RelativeTemporalPrefixes = map[string]bool{
	"next": true, "last": true, "this": true, "past": true, "coming": true,
}

// KnownAcronyms form single-token capitalised spans for
// ComplexDesignatorDetector (§4.12).
var KnownAcronyms = map[string]bool{
	"NATO": true, "WHO": true, "OECD": true, "UNICEF": true, "NASA": true,
	"FBI": true, "CIA": true, "CBP": true, "DHS": true, "EU": true, "UN": true,
	"WTO": true, "IMF": true,
}

// ScarcityMarkers flag a DiscourseReferent as scarce (§4.13).
var ScarcityMarkers = map[string]bool{
	"last": true, "only": true, "scarce": true, "limited": true, "rare": true,
	"remaining": true, "final": true, "sole": true,
}

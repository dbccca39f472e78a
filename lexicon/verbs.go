package lexicon

// StativeVerbs boosts GEN genericity readings when the head verb of a
// subject's predicate is stative (§4.10).
var StativeVerbs = map[string]bool{
	"be": true, "have": true, "contain": true, "include": true, "know": true,
	"belong": true, "consist": true, "comprise": true, "own": true,
	"possess": true, "represent": true, "involve": true, "concern": true,
	"require": true, "need": true,
}

// IntentionalVerbs trigger selectional-violation ambiguity when their
// subject is inanimate (§4.11).
var IntentionalVerbs = map[string]bool{
	"hire": true, "fire": true, "decide": true, "promise": true,
	"intend": true, "want": true, "believe": true, "plan": true,
	"choose": true, "agree": true, "refuse": true,
}

// PhysicalVerbs trigger selectional-violation ambiguity when their
// subject is abstract (§4.11).
var PhysicalVerbs = map[string]bool{
	"lift": true, "carry": true, "move": true, "push": true, "pull": true,
	"throw": true, "catch": true, "hold": true, "drop": true, "kick": true,
}

// CognitiveVerbs refine an ambiguous object noun (design, report, ...) to
// cco:InformationContentEntity when they govern it (§4.6 verb-context
// refinement).
var CognitiveVerbs = map[string]bool{
	"review": true, "analyze": true, "analyse": true, "read": true,
	"explain": true, "summarize": true, "summarise": true, "discuss": true,
	"interpret": true, "evaluate": true, "assess": true, "consider": true,
	"understand": true, "approve": true, "reject": true, "revise": true,
}

// PhysicalActionVerbs refine an ambiguous object noun to cco:Artifact when
// they govern it (§4.6 verb-context refinement).
var PhysicalActionVerbs = map[string]bool{
	"build": true, "carry": true, "print": true, "store": true, "ship": true,
	"deliver": true, "assemble": true, "install": true, "mount": true,
	"transport": true, "load": true, "unload": true,
}

// DeonticModals express obligation/permission (§4.10, §4.11).
var DeonticModals = map[string]bool{
	"shall": true, "must": true, "should": true,
}

// EpistemicModals express inference/possibility (§4.10, §4.11).
var EpistemicModals = map[string]bool{
	"might": true, "may": true, "could": true,
}

// AmbiguousModals trigger modal-force ambiguity detection regardless of
// deontic/epistemic split (§4.11).
var AmbiguousModals = map[string]bool{
	"should": true, "must": true, "may": true, "could": true, "might": true,
}

// ActionNominalizations are head nouns that denote an act rather than a
// process or artifact (§4.6 step 7).
var ActionNominalizations = map[string]bool{
	"deployment": true, "installation": true, "execution": true,
	"allocation": true, "submission": true, "distribution": true,
	"administration": true, "preparation": true,
}

// NominationContinuantBlocklist lists -ing/-ment/... head nouns that read
// as continuants (usually artifacts) rather than processes even though
// their suffix matches the nominalization pattern (§4.11 noun-category
// ambiguity exclusions).
var NominationContinuantBlocklist = map[string]bool{
	"building": true, "painting": true, "meeting": true, "drawing": true,
	"offering": true, "setting": true, "ceiling": true, "opening": true,
}

package lexicon

// HedgeSubtype enumerates the hedge categories used by CertaintyAnalyzer
// (§4.9).
type HedgeSubtype string

const (
	HedgeModal        HedgeSubtype = "modal"
	HedgeAdverb       HedgeSubtype = "adverb"
	HedgeVerb         HedgeSubtype = "verb"
	HedgeApproximator HedgeSubtype = "approximator"
)

// Hedge describes one hedging marker with its strength in (0,1).
type Hedge struct {
	Strength float64
	Subtype  HedgeSubtype
}

// Hedges is the closed hedge lexicon (§4.9).
var Hedges = map[string]Hedge{
	"might":      {Strength: 0.3, Subtype: HedgeModal},
	"may":        {Strength: 0.35, Subtype: HedgeModal},
	"could":      {Strength: 0.35, Subtype: HedgeModal},
	"possibly":   {Strength: 0.3, Subtype: HedgeAdverb},
	"perhaps":    {Strength: 0.3, Subtype: HedgeAdverb},
	"probably":   {Strength: 0.45, Subtype: HedgeAdverb},
	"maybe":      {Strength: 0.3, Subtype: HedgeAdverb},
	"somewhat":   {Strength: 0.4, Subtype: HedgeAdverb},
	"suggest":    {Strength: 0.4, Subtype: HedgeVerb},
	"suggests":   {Strength: 0.4, Subtype: HedgeVerb},
	"seem":       {Strength: 0.4, Subtype: HedgeVerb},
	"seems":      {Strength: 0.4, Subtype: HedgeVerb},
	"appear":     {Strength: 0.4, Subtype: HedgeVerb},
	"appears":    {Strength: 0.4, Subtype: HedgeVerb},
	"about":      {Strength: 0.45, Subtype: HedgeApproximator},
	"around":     {Strength: 0.45, Subtype: HedgeApproximator},
	"approximately": {Strength: 0.45, Subtype: HedgeApproximator},
	"roughly":    {Strength: 0.45, Subtype: HedgeApproximator},
	"possible":   {Strength: 0.3, Subtype: HedgeAdverb},
	"likely":     {Strength: 0.55, Subtype: HedgeAdverb},
	"probable":   {Strength: 0.5, Subtype: HedgeAdverb},
	"suspected":  {Strength: 0.35, Subtype: HedgeAdverb},
	"potential":  {Strength: 0.3, Subtype: HedgeAdverb},
	"presumed":   {Strength: 0.4, Subtype: HedgeAdverb},
	"apparent":   {Strength: 0.4, Subtype: HedgeAdverb},
	"alleged":    {Strength: 0.3, Subtype: HedgeAdverb},
	"uncertain":  {Strength: 0.2, Subtype: HedgeAdverb},
	"questionable": {Strength: 0.2, Subtype: HedgeAdverb},
}

// Booster describes one certainty-boosting marker with its strength.
type Booster struct {
	Strength float64
	Subtype  string // "modal" | "adverb" | "verb"
}

// Boosters is the closed booster lexicon (§4.9).
var Boosters = map[string]Booster{
	"definitely": {Strength: 0.95, Subtype: "adverb"},
	"certainly":  {Strength: 0.95, Subtype: "adverb"},
	"clearly":    {Strength: 0.9, Subtype: "adverb"},
	"obviously":  {Strength: 0.9, Subtype: "adverb"},
	"undoubtedly": {Strength: 0.95, Subtype: "adverb"},
	"surely":     {Strength: 0.85, Subtype: "adverb"},
	"must":       {Strength: 0.85, Subtype: "modal"},
	"will":       {Strength: 0.85, Subtype: "modal"},
	"confirm":    {Strength: 0.9, Subtype: "verb"},
	"confirms":   {Strength: 0.9, Subtype: "verb"},
	"confirmed":  {Strength: 0.9, Subtype: "verb"},
	"prove":      {Strength: 0.9, Subtype: "verb"},
	"proves":     {Strength: 0.9, Subtype: "verb"},
	"strongly":   {Strength: 0.85, Subtype: "adverb"},
	"always":     {Strength: 0.85, Subtype: "adverb"},
}

// EvidentialSourceType enumerates the evidential subtypes (§4.9).
type EvidentialSourceType string

const (
	SourceReported   EvidentialSourceType = "reported"
	SourceAttributed EvidentialSourceType = "attributed"
	SourceHearsay    EvidentialSourceType = "hearsay"
)

// Evidential describes a reported-speech/hearsay marker.
type Evidential struct {
	SourceType  EvidentialSourceType
	Reliability float64
}

// Evidentials is the closed evidential lexicon (§4.9).
var Evidentials = map[string]Evidential{
	"reportedly":  {SourceType: SourceReported, Reliability: 0.5},
	"according":   {SourceType: SourceAttributed, Reliability: 0.6},
	"allegedly":   {SourceType: SourceHearsay, Reliability: 0.3},
	"supposedly":  {SourceType: SourceHearsay, Reliability: 0.3},
	"rumored":     {SourceType: SourceHearsay, Reliability: 0.2},
	"rumoured":    {SourceType: SourceHearsay, Reliability: 0.2},
	"sources say": {SourceType: SourceReported, Reliability: 0.5},
	"officials say": {SourceType: SourceAttributed, Reliability: 0.65},
}

// DeonticIntensifiers boost the obligation/permission reading's
// plausibility in AlternativeGraphBuilder's scope/modal handling (§4.11).
var DeonticIntensifiers = map[string]bool{
	"strongly": true, "definitely": true, "absolutely": true, "certainly": true,
}

// EpistemicIntensifiers boost the epistemic reading's plausibility.
var EpistemicIntensifiers = map[string]bool{
	"possibly": true, "probably": true, "likely": true, "perhaps": true,
}

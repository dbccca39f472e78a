// Package lexicon holds the immutable, process-wide keyword, suffix, and
// lemma tables every other package in this module consults. Per §5 and §9
// these are process-wide configuration, never mutated after init; nothing
// here is per-document state.
package lexicon

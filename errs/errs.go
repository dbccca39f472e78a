// Package errs holds the sentinel errors and wrapping helpers the
// pipeline's stages use to distinguish input errors (the caller's fault,
// fail fast) from malformed-intermediate errors (an internal bug
// indicator, logged and skipped, never a panic) per §7.
package errs

import "errors"

// Input errors: the caller supplied something the pipeline cannot
// process at all. These fail the whole Build call immediately.
var (
	// ErrEmptyInput is returned when Build is called with no text.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrTagCountMismatch is returned when the tokens and tags slices
	// supplied with a dependency parse differ in length.
	ErrTagCountMismatch = errors.New("token and tag counts differ")

	// ErrArcOutOfRange is returned when an arc references a token id
	// outside [1, len(tokens)].
	ErrArcOutOfRange = errors.New("arc references a token id out of range")

	// ErrNoRoot is returned when an arc list has no token with head == 0.
	ErrNoRoot = errors.New("arc list has no root")
)

// Malformed-intermediate errors: an internal bug indicator found partway
// through a stage. The stage logs these and omits the affected item from
// its output; it never returns these as the input error above would.
var (
	// ErrUnresolvedBearer is logged when a Role's inheres_in target does
	// not resolve to any node in the document.
	ErrUnresolvedBearer = errors.New("role bearer does not resolve to a node")

	// ErrUnresolvedAlternativeSource is logged when AlternativeGraphBuilder
	// cannot find the original node an alternative reading clones from.
	ErrUnresolvedAlternativeSource = errors.New("alternative source node not found")
)

// InputError wraps one of the sentinel input errors with the detail that
// made it fire, so the top-level orchestrator can report one descriptive
// message per §7.
type InputError struct {
	Err    error
	Detail string
}

func (e *InputError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *InputError) Unwrap() error { return e.Err }

// NewInputError builds an InputError, e.g.
// errs.NewInputError(errs.ErrArcOutOfRange, "arc head 7 but only 5 tokens").
func NewInputError(sentinel error, detail string) *InputError {
	return &InputError{Err: sentinel, Detail: detail}
}

// MalformedIntermediateError wraps one of the sentinel malformed-
// intermediate errors with the id of the node it was found on, for
// logging at the point of detection (§7: "logged, produces no output for
// that item, never panics").
type MalformedIntermediateError struct {
	Err    error
	NodeID string
}

func (e *MalformedIntermediateError) Error() string {
	return e.Err.Error() + " (node " + e.NodeID + ")"
}

func (e *MalformedIntermediateError) Unwrap() error { return e.Err }

// NewMalformedIntermediateError builds a MalformedIntermediateError.
func NewMalformedIntermediateError(sentinel error, nodeID string) *MalformedIntermediateError {
	return &MalformedIntermediateError{Err: sentinel, NodeID: nodeID}
}

package tree

import "github.com/pkg/errors"

// ErrInvalidGesture indicates a gesture of an unrecognized kind reached
// SelectionState.Next, or a DEFAULT gesture survived normalization — an
// internal-invariant violation per spec.md §7. It should never occur
// through the public API, since SelectionService.AddSelection only
// accepts the defined kinds.
var ErrInvalidGesture = errors.New("tree: invalid gesture")

// ErrMalformedAnchor indicates a RANGE gesture was found whose preceding
// stack element is not a TOGGLE — spec.md §9's "Open question: anchor
// identity after range split". The source this spec was distilled from
// implicitly assumes the anchor is always a TOGGLE; this rewrite asserts
// it and rejects malformed stacks instead of silently coping.
var ErrMalformedAnchor = errors.New("tree: range gesture anchor is not a toggle")

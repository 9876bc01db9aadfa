package dcf

import "errors"

// Sentinel errors for precondition violations: all of them are caller
// bugs, not runtime conditions, and are rejected before any input is
// touched.
var (
	// ErrAlphaLength is returned by Gen when alpha is not exactly N bytes.
	ErrAlphaLength = errors.New("dcf: alpha has the wrong length for this domain")
	// ErrPointLength is returned by Eval/EvalBatch when a domain point is
	// not exactly N bytes.
	ErrPointLength = errors.New("dcf: input point has the wrong length for this domain")
	// ErrCwCount is returned when a Share's Cws length does not equal
	// 8*N, i.e. the share was not produced for this DCF's domain.
	ErrCwCount = errors.New("dcf: share's correction-word count does not match the domain")
	// ErrShareNotNarrowed is returned by Eval/EvalBatch when the given
	// Share still carries both parties' initial seeds instead of having
	// been Narrow'd to one.
	ErrShareNotNarrowed = errors.New("dcf: share must be narrowed to a single party's seed before eval")
	// ErrBadBound is returned by Gen for a Bound value other than
	// BoundLT/BoundGT.
	ErrBadBound = errors.New("dcf: unknown bound selector")
	// ErrBadParty is returned by Eval/EvalBatch for a Party value other
	// than Party0/Party1.
	ErrBadParty = errors.New("dcf: party must be 0 or 1")
)

// Package dcf implements the two-party distributed comparison function
// primitive: a dealer (Gen) splits a point-threshold comparison function
// into two key shares, and an evaluator (Eval/EvalBatch) turns a share and
// a batch of domain points into the caller's share of the function's
// output. See the DCF type for the entry point.
package dcf

// SeedLen is lambda, the byte width of seeds, correction words, and the
// range of f. Fixed by the AES-256 MMO PRG this package is built around.
const SeedLen = 16

// Bound selects which side of alpha carries beta.
type Bound uint8

const (
	// BoundLT is f(x) = beta iff x < alpha. This is the paper's default.
	BoundLT Bound = iota
	// BoundGT is f(x) = beta iff x > alpha, the mirror image of BoundLT:
	// only the side of the CW step that receives the beta-XOR changes.
	BoundGT
)

func (b Bound) String() string {
	switch b {
	case BoundLT:
		return "lt"
	case BoundGT:
		return "gt"
	default:
		return "invalid"
	}
}

// Party identifies which of the two evaluators a Share belongs to.
type Party uint8

const (
	Party0 Party = 0
	Party1 Party = 1
)

// CmpFn is the pair (alpha, beta) that Gen splits into key shares. alpha is
// the comparison threshold, read MSB-first, byte 0 first; beta is the
// lambda-byte value the bound side of f evaluates to.
type CmpFn struct {
	Alpha []byte            // N bytes
	Beta  [SeedLen]byte
}

// CorrectionWord is one level's share of the tree both parties apply
// identically while walking from the root to a leaf.
type CorrectionWord struct {
	S      [SeedLen]byte // seed correction
	V      [SeedLen]byte // value correction
	Tl, Tr bool          // control-bit corrections, left/right
}

// Share is the key Gen outputs. At Gen's return S0s has both seeds;
// before handing a Share to a party it must be narrowed to that party's
// single seed with Narrow.
type Share struct {
	S0s   [][SeedLen]byte  // length 2 from Gen, length 1 once narrowed
	Cws   []CorrectionWord // exactly 8*N entries, indexed by tree level
	CwNp1 [SeedLen]byte
}

// Narrow returns the per-party view of a dealer's Share: Cws and CwNp1 are
// shared verbatim, S0s is cut down to the single seed party owns. The
// dealer's two-seed Share and a party's narrowed Share are structurally
// the same type; Narrow is the projection that makes one into the other.
func (s Share) Narrow(party Party) Share {
	return Share{
		S0s:   [][SeedLen]byte{s.S0s[party]},
		Cws:   s.Cws,
		CwNp1: s.CwNp1,
	}
}

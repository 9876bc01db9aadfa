package dcf

import (
	"fmt"

	"dcf/prg"
)

// DCF is a distributed comparison function instance bound to a domain
// size (N bytes, so n = 8*N tree levels) and a PRG. Construct one with
// NewDCF and reuse it across many Gen/Eval calls; it holds no per-call
// state.
type DCF struct {
	n   int // domain size in bytes
	prg prg.PRG
}

// NewDCF builds a DCF bound to a domain of n bytes (so alpha and every
// evaluation point are n-byte strings) and the PRG g.
func NewDCF(domainBytes int, g prg.PRG) (*DCF, error) {
	if domainBytes <= 0 {
		return nil, fmt.Errorf("dcf: domain size must be positive, got %d", domainBytes)
	}
	return &DCF{n: domainBytes, prg: g}, nil
}

// DomainBytes returns N, the byte width of alpha and of every evaluation
// point this instance accepts.
func (d *DCF) DomainBytes() int { return d.n }

// treeDepth is n = 8*N, the number of tree levels Gen/Eval walk.
func (d *DCF) treeDepth() int { return 8 * d.n }

// Gen splits f into a two-party Share. s0 are the two parties' initial
// seeds, drawn independently and uniformly at random by the caller; Gen
// never samples randomness itself.
func (d *DCF) Gen(f CmpFn, s0 [2][SeedLen]byte, bound Bound) (Share, error) {
	if len(f.Alpha) != d.n {
		return Share{}, ErrAlphaLength
	}
	if bound != BoundLT && bound != BoundGT {
		return Share{}, ErrBadBound
	}

	n := d.treeDepth()

	s := [2][SeedLen]byte{s0[0], s0[1]}
	t := [2]bool{false, true}
	var vAlpha [SeedLen]byte

	cws := make([]CorrectionWord, n)

	for i := 1; i <= n; i++ {
		out0 := d.prg.Expand(s[0])
		out1 := d.prg.Expand(s[1])

		s0L, s0R := out0.SeedL, out0.SeedR
		v0L, v0R := out0.ValL, out0.ValR
		t0L, t0R := out0.BitL != 0, out0.BitR != 0

		s1L, s1R := out1.SeedL, out1.SeedR
		v1L, v1R := out1.ValL, out1.ValR
		t1L, t1R := out1.BitL != 0, out1.BitR != 0

		alphaI := bitAt(f.Alpha, i) != 0

		var sKeep0, sLose0, sKeep1, sLose1 [SeedLen]byte
		var vKeep0, vLose0, vKeep1, vLose1 [SeedLen]byte
		if alphaI {
			sKeep0, sLose0 = s0R, s0L
			sKeep1, sLose1 = s1R, s1L
			vKeep0, vLose0 = v0R, v0L
			vKeep1, vLose1 = v1R, v1L
		} else {
			sKeep0, sLose0 = s0L, s0R
			sKeep1, sLose1 = s1L, s1R
			vKeep0, vLose0 = v0L, v0R
			vKeep1, vLose1 = v1L, v1R
		}
		lose := IdxR
		if alphaI {
			lose = IdxL
		}

		sCw := xorSeeds(sLose0, sLose1)

		vCw := xorSeeds(vLose0, vLose1)
		xorInto(&vCw, vAlpha)
		if bound == BoundLT && lose == IdxL {
			xorInto(&vCw, f.Beta)
		}
		if bound == BoundGT && lose == IdxR {
			xorInto(&vCw, f.Beta)
		}

		xorInto(&vAlpha, vKeep0, vKeep1, vCw)

		tlCw := t0L != t1L
		tlCw = tlCw != alphaI
		tlCw = !tlCw
		trCw := (t0R != t1R) != alphaI

		cws[i-1] = CorrectionWord{S: sCw, V: vCw, Tl: tlCw, Tr: trCw}

		tCwKeep := cws[i-1].Tl
		if alphaI {
			tCwKeep = cws[i-1].Tr
		}

		newS0 := sKeep0
		xorInto(&newS0, maybeXor(t[0], sCw))
		newS1 := sKeep1
		xorInto(&newS1, maybeXor(t[1], sCw))

		newT0 := t0L
		newT1 := t1L
		if alphaI {
			newT0 = t0R
			newT1 = t1R
		}
		newT0 = newT0 != (t[0] && tCwKeep)
		newT1 = newT1 != (t[1] && tCwKeep)

		s[0], s[1] = newS0, newS1
		t[0], t[1] = newT0, newT1
	}

	cwNp1 := xorSeeds(s[0], s[1])
	xorInto(&cwNp1, vAlpha)

	return Share{
		S0s:   [][SeedLen]byte{s0[0], s0[1]},
		Cws:   cws,
		CwNp1: cwNp1,
	}, nil
}

// Eval computes party's additive (XOR) share of f(x), where x is the
// evaluation point. share must already be Narrow'd to party's single
// seed.
func (d *DCF) Eval(party Party, share Share, x []byte) ([SeedLen]byte, error) {
	if party != Party0 && party != Party1 {
		return [SeedLen]byte{}, ErrBadParty
	}
	if len(share.S0s) != 1 {
		return [SeedLen]byte{}, ErrShareNotNarrowed
	}
	if len(x) != d.n {
		return [SeedLen]byte{}, ErrPointLength
	}
	n := d.treeDepth()
	if len(share.Cws) != n {
		return [SeedLen]byte{}, ErrCwCount
	}

	s := share.S0s[0]
	t := party == Party1
	var v [SeedLen]byte

	for i := 1; i <= n; i++ {
		cw := share.Cws[i-1]
		out := d.prg.Expand(s)

		sL, sR := out.SeedL, out.SeedR
		xorInto(&sL, maybeXor(t, cw.S))
		xorInto(&sR, maybeXor(t, cw.S))
		tL := out.BitL != 0 != (t && cw.Tl)
		tR := out.BitR != 0 != (t && cw.Tr)

		if bitAt(x, i) != 0 {
			xorInto(&v, out.ValR, maybeXor(t, cw.V))
			s, t = sR, tR
		} else {
			xorInto(&v, out.ValL, maybeXor(t, cw.V))
			s, t = sL, tL
		}
	}

	xorInto(&v, s, maybeXor(t, share.CwNp1))
	return v, nil
}

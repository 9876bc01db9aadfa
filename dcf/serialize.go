package dcf

import "github.com/fxamacker/cbor/v2"

// wireShare mirrors Share field-for-field in a fixed order (s0s, cws,
// cw_np1). Every lambda-byte field stays a Go array so cbor encodes it
// as a byte string of its exact width, rather than the variable-length
// framing a gob encoding would give it.
type wireShare struct {
	S0s   [][SeedLen]byte `cbor:"0,keyasint"`
	Cws   []wireCw        `cbor:"1,keyasint"`
	CwNp1 [SeedLen]byte   `cbor:"2,keyasint"`
}

type wireCw struct {
	S  [SeedLen]byte `cbor:"0,keyasint"`
	V  [SeedLen]byte `cbor:"1,keyasint"`
	Tl bool          `cbor:"2,keyasint"`
	Tr bool          `cbor:"3,keyasint"`
}

// MarshalShare serializes a Share (dealer output or a party's narrowed
// view) into its canonical wire form.
func MarshalShare(s Share) ([]byte, error) {
	w := wireShare{
		S0s:   s.S0s,
		Cws:   make([]wireCw, len(s.Cws)),
		CwNp1: s.CwNp1,
	}
	for i, cw := range s.Cws {
		w.Cws[i] = wireCw{S: cw.S, V: cw.V, Tl: cw.Tl, Tr: cw.Tr}
	}
	return cbor.Marshal(w)
}

// UnmarshalShare is the inverse of MarshalShare.
func UnmarshalShare(data []byte) (Share, error) {
	var w wireShare
	if err := cbor.Unmarshal(data, &w); err != nil {
		return Share{}, err
	}
	s := Share{
		S0s:   w.S0s,
		Cws:   make([]CorrectionWord, len(w.Cws)),
		CwNp1: w.CwNp1,
	}
	for i, cw := range w.Cws {
		s.Cws[i] = CorrectionWord{S: cw.S, V: cw.V, Tl: cw.Tl, Tr: cw.Tr}
	}
	return s, nil
}

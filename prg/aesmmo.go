package prg

import (
	"crypto/aes"
	"crypto/cipher"
)

// keyLen is the width of each of the five AES-256 keys the construction
// below fixes.
const keyLen = 32

// AES256MMO is the PRG construction for lambda = 16: five independent
// AES-256 block ciphers combined with a Matyas-Meyer-Oseas
// one-way compression, f(s) = E_K(s) XOR s. Five blocks are computed per
// seed; the first four give the two (seed, value) pairs, the fifth donates
// one control bit to each side. The five keys must be identical and fixed
// between both parties — they are a construction parameter, not a secret
// tied to any one dealer session.
type AES256MMO struct {
	blocks [5]cipher.Block
}

// NewAES256MMO builds an AES256MMO PRG from five 32-byte AES-256 keys.
func NewAES256MMO(keys [5][32]byte) (*AES256MMO, error) {
	var g AES256MMO
	for i, k := range keys {
		block, err := aes.NewCipher(k[:])
		if err != nil {
			return nil, err
		}
		g.blocks[i] = block
	}
	return &g, nil
}

// NewAES256MMOFromBytes is NewAES256MMO for callers holding keys as
// variable-length byte slices (e.g. loaded from hex in a config file),
// which is the boundary where a wrong-length key is actually possible —
// fixed-size arrays make the common in-process path a compile-time
// guarantee instead.
func NewAES256MMOFromBytes(keys [5][]byte) (*AES256MMO, error) {
	var fixed [5][32]byte
	for i, k := range keys {
		if len(k) != keyLen {
			return nil, &ErrBadKeyLen{Want: keyLen, Got: len(k)}
		}
		copy(fixed[i][:], k)
	}
	return NewAES256MMO(fixed)
}

// Expand implements PRG.
func (g *AES256MMO) Expand(seed [SeedLen]byte) Output {
	var b [5][SeedLen]byte
	for i, block := range g.blocks {
		block.Encrypt(b[i][:], seed[:])
		for j := range b[i] {
			b[i][j] ^= seed[j]
		}
	}

	return Output{
		SeedL: b[0],
		ValL:  b[1],
		SeedR: b[2],
		ValR:  b[3],
		BitL:  b[4][0] & 1,
		BitR:  (b[4][0] >> 1) & 1,
	}
}

package prg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcf/prg"
)

var testKeys = [5][32]byte{
	{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20},
	{0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2a, 0x2b, 0x2c, 0x2d, 0x2e, 0x2f, 0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3a, 0x3b, 0x3c, 0x3d, 0x3e, 0x3f, 0x40},
	{0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49, 0x4a, 0x4b, 0x4c, 0x4d, 0x4e, 0x4f, 0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59, 0x5a, 0x5b, 0x5c, 0x5d, 0x5e, 0x5f, 0x60},
	{0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69, 0x6a, 0x6b, 0x6c, 0x6d, 0x6e, 0x6f, 0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79, 0x7a, 0x7b, 0x7c, 0x7d, 0x7e, 0x7f, 0x80},
	{0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89, 0x8a, 0x8b, 0x8c, 0x8d, 0x8e, 0x8f, 0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98, 0x99, 0x9a, 0x9b, 0x9c, 0x9d, 0x9e, 0x9f, 0xa0},
}

func TestExpandIsDeterministic(t *testing.T) {
	g, err := prg.NewAES256MMO(testKeys)
	require.NoError(t, err)

	seed := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	out1 := g.Expand(seed)
	out2 := g.Expand(seed)
	assert.Equal(t, out1, out2)
}

func TestExpandDiffersAcrossSeeds(t *testing.T) {
	g, err := prg.NewAES256MMO(testKeys)
	require.NoError(t, err)

	seedA := [16]byte{1}
	seedB := [16]byte{2}
	outA := g.Expand(seedA)
	outB := g.Expand(seedB)

	assert.NotEqual(t, outA.SeedL, outB.SeedL)
	assert.NotEqual(t, outA.SeedR, outB.SeedR)
}

func TestExpandProducesFourIndependentBlocksAndTwoControlBits(t *testing.T) {
	g, err := prg.NewAES256MMO(testKeys)
	require.NoError(t, err)

	seed := [16]byte{0xaa, 0xbb, 0xcc}
	out := g.Expand(seed)

	assert.NotEqual(t, out.SeedL, out.SeedR)
	assert.NotEqual(t, out.ValL, out.ValR)
	assert.True(t, out.BitL == 0 || out.BitL == 1)
	assert.True(t, out.BitR == 0 || out.BitR == 1)
}

func TestNewAES256MMOFromBytesRejectsBadKeyLength(t *testing.T) {
	var keys [5][]byte
	for i := range keys {
		keys[i] = make([]byte, 31)
	}
	_, err := prg.NewAES256MMOFromBytes(keys)
	require.Error(t, err)
	var badLen *prg.ErrBadKeyLen
	assert.ErrorAs(t, err, &badLen)
}

func TestDeriveKeysIsDeterministicAndDistinct(t *testing.T) {
	secret := []byte("a shared master secret")
	salt := []byte("dcf-test-salt")

	k1, err := prg.DeriveKeys(secret, salt)
	require.NoError(t, err)
	k2, err := prg.DeriveKeys(secret, salt)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	for i := 0; i < len(k1); i++ {
		for j := i + 1; j < len(k1); j++ {
			assert.NotEqual(t, k1[i], k1[j], "derived keys %d and %d must not collide", i, j)
		}
	}

	g, err := prg.NewAES256MMO(k1)
	require.NoError(t, err)
	_ = g.Expand([16]byte{1, 2, 3})
}

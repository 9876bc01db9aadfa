package prg

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// infoLabels are the five HKDF info strings used to split one master
// secret into AES256MMO's five independent block-cipher keys. They must
// stay fixed: changing one changes every key DeriveKeys produces for the
// same secret.
var infoLabels = [5][]byte{
	[]byte("dcf-prg-k0"),
	[]byte("dcf-prg-k1"),
	[]byte("dcf-prg-k2"),
	[]byte("dcf-prg-k3"),
	[]byte("dcf-prg-k4"),
}

// DeriveKeys expands one master secret into the five 32-byte AES-256 keys
// AES256MMO needs, via HKDF-SHA256 (RFC 5869) with a fixed per-slot info
// label. It is a convenience for deployments that would otherwise have to
// invent their own way to provision and rotate five related keys; it is
// not part of the PRG contract itself, which only ever consumes keys
// already split (see NewAES256MMO).
func DeriveKeys(masterSecret, salt []byte) ([5][32]byte, error) {
	var keys [5][32]byte
	for i, info := range infoLabels {
		r := hkdf.New(sha256.New, masterSecret, salt, info)
		if _, err := io.ReadFull(r, keys[i][:]); err != nil {
			return [5][32]byte{}, err
		}
	}
	return keys, nil
}

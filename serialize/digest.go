package serialize

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Digest computes a SHA-3-256 content digest of arbitrary serialized bytes,
// rendered as a lowercase hex string. Used by the convert subcommand's
// -digest flag to content-address a SumRepr document; it carries no
// cryptographic binding obligation here, only a stable fingerprint.
func Digest(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hash.go - Domain-separated hash façade over SHA3/SHAKE.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

import "golang.org/x/crypto/sha3"

// hashH is H(x) = SHA3-256(x).
func hashH(x []byte) [32]byte {
	return sha3.Sum256(x)
}

// hashG is G(x) = SHA3-512(x). Callers split the 64-byte result into two
// 32-byte halves.
func hashG(x []byte) [64]byte {
	return sha3.Sum512(x)
}

// hashJ is J(x) = SHAKE256(x) truncated to 32 bytes.
func hashJ(x []byte) []byte {
	out := make([]byte, SymSize)
	sha3.ShakeSum256(out, x)
	return out
}

// prf is PRF(eta, seed, b) = SHAKE256(seed || b) truncated to 64*eta
// bytes.
func prf(eta int, seed []byte, b byte) []byte {
	out := make([]byte, 64*eta)
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{b})
	h.Read(out)
	return out
}

// xof returns an unbounded SHAKE128 stream seeded with data || i || j.
// sha3.ShakeHash already supports incremental reads of arbitrary total
// length, so unlike a fixed-length-digest-only hash API, no
// squeeze-and-double wrapper is required here: the returned value is read
// directly by the samplers in sample.go.
func xof(data []byte, i, j byte) sha3.ShakeHash {
	h := sha3.NewShake128()
	h.Write(data)
	h.Write([]byte{i, j})
	return h
}

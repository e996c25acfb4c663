// params.go - ML-KEM parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

const (
	// SymSize is the size in bytes of the shared secret, and of the
	// internal seeds/hashes (ρ, σ, z, m, ...) that are all exactly one
	// SHA3-256/SHAKE-256-block's worth of symmetric security.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329
)

// ParameterSet is an ML-KEM parameter set. Only MLKEM768 is populated by
// this package, but the shape admits the other FIPS 203 parameter sets
// (ML-KEM-512, ML-KEM-1024) without touching any other file.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	polyVecSize        int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaCipherSize    int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// MLKEM768 is the ML-KEM-768 parameter set, which aims to provide security
// equivalent to AES-192.
//
// This parameter set has a 2400 byte decapsulation key, a 1184 byte
// encapsulation key, and a 1088 byte cipher text.
var MLKEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4)

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// EncapsulationKeySize returns the size of an encapsulation (public) key
// in bytes.
func (p *ParameterSet) EncapsulationKeySize() int {
	return p.publicKeySize
}

// DecapsulationKeySize returns the size of a decapsulation (private) key
// in bytes.
func (p *ParameterSet) DecapsulationKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv

	p.polyVecSize = k * 384 // 384 = 32*12 = byteEncode(12, ·) size of one poly

	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaCipherSize = 32*du*k + 32*dv

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // dk_pke || ek || H(ek) || z
	p.cipherTextSize = p.indcpaCipherSize

	return &p
}

// kem.go - ML-KEM key encapsulation mechanism.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

import (
	"crypto/subtle"
	"io"
)

// PublicKey is an ML-KEM encapsulation key.
type PublicKey struct {
	p     *ParameterSet
	ekPKE []byte   // K-PKE encryption key: t-hat || rho
	h     [32]byte // H(ekPKE), cached for encapsulation/decapsulation
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	b := make([]byte, len(pk.ekPKE))
	copy(b, pk.ekPKE)
	return b
}

// PublicKeyFromBytes deserializes a byte serialized encapsulation key.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.EncapsulationKeySize() {
		return nil, ErrInvalidKeySize
	}

	pk := &PublicKey{
		p:     p,
		ekPKE: make([]byte, len(b)),
	}
	copy(pk.ekPKE, b)
	pk.h = hashH(pk.ekPKE)

	return pk, nil
}

// PrivateKey is an ML-KEM decapsulation key.
type PrivateKey struct {
	PublicKey
	dkPKE []byte // K-PKE decryption key: s-hat
	z     []byte // implicit-rejection seed
}

// Bytes returns the byte serialization of a PrivateKey, in the FIPS 203
// dk_pke || ek || H(ek) || z layout.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.DecapsulationKeySize())
	b = append(b, sk.dkPKE...)
	b = append(b, sk.PublicKey.ekPKE...)
	b = append(b, sk.PublicKey.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey, verifying
// the embedded H(ek) matches the recomputed hash of the embedded
// encapsulation key.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.DecapsulationKeySize() {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.PublicKey.p = p

	off := p.indcpaSecretKeySize
	sk.dkPKE = make([]byte, off)
	copy(sk.dkPKE, b[:off])

	sk.PublicKey.ekPKE = make([]byte, p.indcpaPublicKeySize)
	copy(sk.PublicKey.ekPKE, b[off:off+p.indcpaPublicKeySize])
	off += p.indcpaPublicKeySize

	h := hashH(sk.PublicKey.ekPKE)
	if subtle.ConstantTimeCompare(h[:], b[off:off+SymSize]) != 1 {
		return nil, ErrInvalidPrivateKey
	}
	sk.PublicKey.h = h
	off += SymSize

	sk.z = make([]byte, SymSize)
	copy(sk.z, b[off:])

	return sk, nil
}

// GenerateKeyPair runs ML-KEM.KeyGen, drawing randomness from rng.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	var d, z [SymSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(rng, z[:]); err != nil {
		return nil, nil, err
	}

	pk, sk := p.generateKeyPairInternal(d[:], z[:])
	return pk, sk, nil
}

// generateKeyPairInternal is ML-KEM.KeyGen_internal: the deterministic
// core of key generation, taking the seeds d and z directly instead of
// drawing them from an io.Reader. It exists so the known-answer-test
// harness can reproduce NIST's fixed (d, z) test vectors exactly; ordinary
// callers should use GenerateKeyPair.
func (p *ParameterSet) generateKeyPairInternal(d, z []byte) (*PublicKey, *PrivateKey) {
	ekPKE, dkPKE := p.kpkeKeyGen(d)

	kp := new(PrivateKey)
	kp.PublicKey.p = p
	kp.PublicKey.ekPKE = ekPKE
	kp.PublicKey.h = hashH(ekPKE)
	kp.dkPKE = dkPKE
	kp.z = append([]byte(nil), z...)

	return &kp.PublicKey, kp
}

// Encapsulate runs ML-KEM.Encaps against pk, drawing randomness from rng,
// and returns the ciphertext and the shared secret.
func (pk *PublicKey) Encapsulate(rng io.Reader) (cipherText, sharedSecret []byte, err error) {
	var m [SymSize]byte
	if _, err = io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}

	cipherText, sharedSecret = pk.encapsulateInternal(m[:])
	return
}

// encapsulateInternal is ML-KEM.Encaps_internal: the deterministic core of
// encapsulation, taking the message m directly instead of drawing it from
// an io.Reader.
func (pk *PublicKey) encapsulateInternal(m []byte) (cipherText, sharedSecret []byte) {
	g := hashG(append(append([]byte(nil), m...), pk.h[:]...))
	k, r := g[:SymSize], g[SymSize:]

	cipherText = pk.p.kpkeEncrypt(pk.ekPKE, m, r)
	sharedSecret = append([]byte(nil), k...)

	return
}

// Decapsulate runs ML-KEM.Decaps against sk, recovering the shared secret
// encapsulated in cipherText. On a re-encryption mismatch this implicitly
// rejects: it returns a pseudorandom value derived from sk's seed z and the
// ciphertext instead of an error, so that callers cannot distinguish a
// tampered ciphertext from a valid one by the control flow of this
// function.
func (sk *PrivateKey) Decapsulate(cipherText []byte) (sharedSecret []byte, err error) {
	p := sk.PublicKey.p
	if len(cipherText) != p.CipherTextSize() {
		return nil, ErrInvalidCipherTextSize
	}

	mPrime := p.kpkeDecrypt(sk.dkPKE, cipherText)

	g := hashG(append(append([]byte(nil), mPrime...), sk.PublicKey.h[:]...))
	kPrime, rPrime := g[:SymSize], g[SymSize:]

	kBar := hashJ(append(append([]byte(nil), sk.z...), cipherText...))

	cPrime := p.kpkeEncrypt(sk.PublicKey.ekPKE, mPrime, rPrime)

	// Constant-time select between kPrime (success) and kBar (implicit
	// rejection), regardless of how cPrime compares to cipherText.
	ok := subtle.ConstantTimeCompare(cPrime, cipherText)
	out := make([]byte, SymSize)
	subtle.ConstantTimeCopy(ok, out, kPrime)
	subtle.ConstantTimeCopy(1-ok, out, kBar)

	return out, nil
}

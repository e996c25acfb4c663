// ntt_test.go - Number-Theoretic Transform tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNTTRoundTrip(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < nTests; i++ {
		p := randPoly(rng)

		got := *p
		got.ntt()
		got.invntt()

		require.Equal(p.coeffs, got.coeffs, "invntt(ntt(p)) == p")
	}
}

// TestNTTAddHomomorphism checks that the NTT is a ring homomorphism with
// respect to addition: ntt(a+b) == ntt(a)+ntt(b).
func TestNTTAddHomomorphism(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < nTests; i++ {
		a, b := randPoly(rng), randPoly(rng)

		var sumThenNTT poly
		sumThenNTT.add(a, b)
		sumThenNTT.ntt()

		aNTT, bNTT := *a, *b
		aNTT.ntt()
		bNTT.ntt()
		var nttThenSum poly
		nttThenSum.add(&aNTT, &bNTT)

		require.Equal(sumThenNTT.coeffs, nttThenSum.coeffs)
	}
}

// TestNTTMulAgreesWithSlowMul checks that pointwise multiplication in the
// NTT basis computes the same ring product as the textbook convolution.
func TestNTTMulAgreesWithSlowMul(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < nTests; i++ {
		a, b := randPoly(rng), randPoly(rng)

		want := slowMul(a, b)

		aNTT, bNTT := *a, *b
		aNTT.ntt()
		bNTT.ntt()
		var cNTT poly
		pointwiseMul(&cNTT, &aNTT, &bNTT)
		cNTT.invntt()

		require.Equal(want.coeffs, cNTT.coeffs)
	}
}

// TestNTTSmoke checks the a+b vs. slow-add agreement from the reference
// implementation's own self-test (0..255 added to 1024..1279), the same
// sanity scenario original_source/mlkem.py runs at import time.
func TestNTTSmoke(t *testing.T) {
	require := require.New(t)

	var a, b poly
	for i := range a.coeffs {
		a.coeffs[i] = uint16(i)
		b.coeffs[i] = uint16(1024 + i)
	}

	var want poly
	want.add(&a, &b)

	aNTT, bNTT := a, b
	aNTT.ntt()
	bNTT.ntt()
	var sumNTT poly
	sumNTT.add(&aNTT, &bNTT)
	sumNTT.invntt()

	require.Equal(want.coeffs, sumNTT.coeffs)

	wantProd := slowMul(&a, &b)

	var prodNTT poly
	pointwiseMul(&prodNTT, &aNTT, &bNTT)
	prodNTT.invntt()

	require.Equal(wantProd.coeffs, prodNTT.coeffs)
}

// sample_test.go - Sampler tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleNTTInRange(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}

	p := sampleNTT(xof(seed, 0, 1))
	for _, c := range p.coeffs {
		require.Less(c, uint16(kyberQ))
	}
}

func TestSampleNTTDeterministic(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(2 * i)
	}

	a := sampleNTT(xof(seed, 3, 1))
	b := sampleNTT(xof(seed, 3, 1))
	require.Equal(a.coeffs, b.coeffs)

	c := sampleNTT(xof(seed, 1, 3))
	require.NotEqual(a.coeffs, c.coeffs)
}

func TestSamplePolyCBDRange(t *testing.T) {
	require := require.New(t)

	for _, eta := range []int{2, 3} {
		data := prf(eta, []byte("0123456789abcdef0123456789abcdef"), 7)
		p := samplePolyCBD(eta, data)
		for _, c := range p.coeffs {
			// Valid CBD(eta) outputs are in [-eta, eta] reduced mod q: either
			// a small value of at most eta, or q minus at most eta.
			if c > uint16(eta) {
				require.Greater(int(c), kyberQ-eta-1)
			}
		}
	}
}

func TestSamplePolyCBDPanicsOnBadLength(t *testing.T) {
	require := require.New(t)
	require.Panics(func() {
		samplePolyCBD(2, make([]byte, 10))
	})
}

// kpke_test.go - K-PKE tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKPKEDemonstration reproduces the fixed-input demonstration that
// original_source/mlkem.py runs when executed directly: a deterministic
// seed and randomness, a message that doesn't even need padding because
// it's exactly SymSize bytes, and a check that decryption recovers it.
func TestKPKEDemonstration(t *testing.T) {
	require := require.New(t)

	p := MLKEM768
	seed := bytes.Repeat([]byte("SEED"), 8)
	msg := []byte("This is a demonstration message.")
	randomness := bytes.Repeat([]byte("RAND"), 8)
	require.Len(msg, SymSize)

	ekPKE, dkPKE := p.kpkeKeyGen(seed)
	require.Len(ekPKE, p.indcpaPublicKeySize)
	require.Len(dkPKE, p.indcpaSecretKeySize)

	ct := p.kpkeEncrypt(ekPKE, msg, randomness)
	require.Len(ct, p.indcpaCipherSize)

	pt := p.kpkeDecrypt(dkPKE, ct)
	require.Equal(msg, pt)
}

func TestKPKERandomRoundTrip(t *testing.T) {
	require := require.New(t)
	p := MLKEM768

	for i := 0; i < nTests; i++ {
		var seed, msg, randomness [SymSize]byte
		_, err := rand.Read(seed[:])
		require.NoError(err)
		_, err = rand.Read(msg[:])
		require.NoError(err)
		_, err = rand.Read(randomness[:])
		require.NoError(err)

		ekPKE, dkPKE := p.kpkeKeyGen(seed[:])
		ct := p.kpkeEncrypt(ekPKE, msg[:], randomness[:])
		pt := p.kpkeDecrypt(dkPKE, ct)

		require.Equal(msg[:], pt)
	}
}

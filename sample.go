// sample.go - Uniform and centered-binomial samplers.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

import "golang.org/x/crypto/sha3"

// sampleNTT performs rejection sampling against q on a SHAKE128 stream to
// produce a uniformly random NTT-basis polynomial. It reads 3-byte chunks,
// extracting two 12-bit candidates per chunk; a candidate that would push
// the accepted count past 256 is discarded even if it's otherwise valid.
func sampleNTT(stream sha3.ShakeHash) *poly {
	var p poly
	var buf [3]byte

	for n := 0; n < kyberN; {
		if _, err := stream.Read(buf[:]); err != nil {
			panic("mlkem768: XOF read failed: " + err.Error())
		}

		d1 := uint16(buf[0]) | (uint16(buf[1]&0x0f) << 8)
		d2 := uint16(buf[1]>>4) | (uint16(buf[2]) << 4)

		if d1 < kyberQ {
			p.coeffs[n] = d1
			n++
		}
		if n < kyberN && d2 < kyberQ {
			p.coeffs[n] = d2
			n++
		}
	}

	return &p
}

// samplePolyCBD samples a standard-basis polynomial from a centered
// binomial distribution with parameter eta, given 64*eta pseudorandom
// bytes. Coefficients represent values in [-eta, eta] reduced mod q.
func samplePolyCBD(eta int, data []byte) *poly {
	if len(data) != 64*eta {
		panic("mlkem768: samplePolyCBD: wrong input length")
	}

	bits := bytesToBits(data)

	var p poly
	for i := 0; i < kyberN; i++ {
		var x, y uint16
		base := 2 * i * eta
		for j := 0; j < eta; j++ {
			x += uint16(bits[base+j])
		}
		for j := 0; j < eta; j++ {
			y += uint16(bits[base+eta+j])
		}
		p.coeffs[i] = subMod(x, y)
	}

	return &p
}

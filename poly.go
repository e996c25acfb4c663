// poly.go - ML-KEM polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

// poly is an element of R_q = Z_q[X]/(X^256+1), represented as
// coeffs[0] + X*coeffs[1] + ... + X^255*coeffs[255]. The same type is used
// for both the standard and NTT bases; the two are never mixed, though the
// type system here (unlike the specification) doesn't enforce that.
type poly struct {
	coeffs [kyberN]uint16
}

// add sets p = a+b, elementwise mod q.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = addMod(a.coeffs[i], b.coeffs[i])
	}
}

// sub sets p = a-b, elementwise mod q.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = subMod(a.coeffs[i], b.coeffs[i])
	}
}

// slowMul computes the textbook O(n^2) convolution of a and b, reduced
// modulo X^256+1. It exists only as a reference for tests that check the
// NTT-based fast multiplication against it; it is never used by K-PKE.
func slowMul(a, b *poly) *poly {
	var c [2*kyberN - 1]uint16

	for i := 0; i < kyberN; i++ {
		for j := 0; j < kyberN; j++ {
			c[i+j] = addMod(c[i+j], mulMod(a.coeffs[j], b.coeffs[i]))
		}
	}

	var out poly
	for i := 0; i < kyberN-1; i++ {
		out.coeffs[i] = subMod(c[i], c[i+kyberN])
	}
	out.coeffs[kyberN-1] = c[kyberN-1]

	return &out
}

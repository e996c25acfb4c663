// polyvec.go - Vector and matrix of ML-KEM polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

// polyVec is a length-K vector of polynomials, basis (standard or NTT)
// determined by context just like poly itself.
type polyVec struct {
	vec []*poly
}

func newPolyVec(k int) polyVec {
	vec := make([]*poly, k)
	for i := range vec {
		vec[i] = new(poly)
	}
	return polyVec{vec}
}

// toBytes serializes v by byte-encoding each element at d bits/coefficient
// and concatenating.
func (v *polyVec) toBytes(d int) []byte {
	out := make([]byte, 0, len(v.vec)*32*d)
	for _, p := range v.vec {
		out = append(out, byteEncode(d, p)...)
	}
	return out
}

// polyVecFromBytes is the inverse of toBytes.
func polyVecFromBytes(k, d int, data []byte) polyVec {
	v := newPolyVec(k)
	size := 32 * d
	for i := range v.vec {
		v.vec[i] = byteDecode(d, data[i*size:(i+1)*size])
	}
	return v
}

// ntt applies the forward NTT to every element of v, in place.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invntt applies the inverse NTT to every element of v, in place.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// add sets v = a+b, elementwise.
func (v *polyVec) add(a, b *polyVec) {
	for i := range v.vec {
		v.vec[i].add(a.vec[i], b.vec[i])
	}
}

// dotNTT computes the sum over i of pointwiseMul(a[i], b[i]), all in the
// NTT basis, accumulating into out.
func dotNTT(out *poly, a, b *polyVec) {
	var tmp poly
	for i := range a.vec {
		pointwiseMul(&tmp, a.vec[i], b.vec[i])
		out.add(out, &tmp)
	}
}

// expandMatrix deterministically derives the K×K matrix A-hat of
// NTT-basis polynomials from the 32-byte seed rho, generated as
// matrix[i][j] = sampleNTT(XOF(rho, i, j)).
//
// K-PKE keygen dots a *column* of this matrix against s (matrix[j][i] for
// output index i), while K-PKE encrypt dots a *row* against r
// (matrix[i][j] for output index i) — the same transpose relationship
// spec.md §9 calls out, grounded on the identical generation routine that
// original_source/mlkem.py's kpke_keygen and kpke_encrypt each call fresh.
func expandMatrix(k int, rho []byte) [][]*poly {
	m := make([][]*poly, k)
	for i := range m {
		m[i] = make([]*poly, k)
		for j := range m[i] {
			m[i][j] = sampleNTT(xof(rho, byte(i), byte(j)))
		}
	}
	return m
}

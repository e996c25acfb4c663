// kpke.go - K-PKE: the IND-CPA public-key scheme underlying ML-KEM.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

// kpkeKeyGen runs K-PKE.KeyGen on the 32-byte seed d, returning
// (ek_pke, dk_pke).
func (p *ParameterSet) kpkeKeyGen(d []byte) (ekPKE, dkPKE []byte) {
	g := hashG(d)
	rho, sigma := g[:SymSize], g[SymSize:]

	ahat := expandMatrix(p.k, rho)

	shat := newPolyVec(p.k)
	for i := range shat.vec {
		shat.vec[i] = samplePolyCBD(p.eta1, prf(p.eta1, sigma, byte(i)))
		shat.vec[i].ntt()
	}

	ehat := newPolyVec(p.k)
	for i := range ehat.vec {
		ehat.vec[i] = samplePolyCBD(p.eta1, prf(p.eta1, sigma, byte(i+p.k)))
		ehat.vec[i].ntt()
	}

	that := newPolyVec(p.k)
	for i := range that.vec {
		var acc poly
		var tmp poly
		for j := 0; j < p.k; j++ {
			pointwiseMul(&tmp, ahat[j][i], shat.vec[j])
			acc.add(&acc, &tmp)
		}
		that.vec[i].add(&acc, ehat.vec[i])
	}

	ekPKE = append(that.toBytes(12), rho...)
	dkPKE = shat.toBytes(12)
	return
}

// kpkeEncrypt runs K-PKE.Encrypt: a 32-byte message m is encrypted under
// ekPKE using the 32 bytes of randomness r, producing a ciphertext.
func (p *ParameterSet) kpkeEncrypt(ekPKE, m, r []byte) []byte {
	that := polyVecFromBytes(p.k, 12, ekPKE[:p.k*384])
	rho := ekPKE[p.k*384:]

	ahat := expandMatrix(p.k, rho)

	rhat := newPolyVec(p.k)
	for i := range rhat.vec {
		rhat.vec[i] = samplePolyCBD(p.eta1, prf(p.eta1, r, byte(i)))
		rhat.vec[i].ntt()
	}

	e1 := newPolyVec(p.k)
	for i := range e1.vec {
		e1.vec[i] = samplePolyCBD(p.eta2, prf(p.eta2, r, byte(i+p.k)))
	}

	e2 := samplePolyCBD(p.eta2, prf(p.eta2, r, byte(2*p.k)))

	u := newPolyVec(p.k)
	for i := range u.vec {
		var acc poly
		var tmp poly
		for j := 0; j < p.k; j++ {
			pointwiseMul(&tmp, ahat[i][j], rhat.vec[j])
			acc.add(&acc, &tmp)
		}
		acc.invntt()
		u.vec[i].add(&acc, e1.vec[i])
	}

	mu := decompress(1, byteDecode(1, m))

	var vAcc poly
	dotNTT(&vAcc, &that, &rhat)
	vAcc.invntt()
	var v poly
	v.add(&vAcc, e2)
	v.add(&v, mu)

	c := make([]byte, 0, p.indcpaCipherSize)
	for i := range u.vec {
		c = append(c, byteEncode(p.du, compress(p.du, u.vec[i]))...)
	}
	c = append(c, byteEncode(p.dv, compress(p.dv, &v))...)
	return c
}

// kpkeDecrypt runs K-PKE.Decrypt, recovering the 32-byte message encoded
// in the ciphertext c under dkPKE.
func (p *ParameterSet) kpkeDecrypt(dkPKE, c []byte) []byte {
	c1Size := 32 * p.du * p.k
	c1, c2 := c[:c1Size], c[c1Size:]

	u := newPolyVec(p.k)
	uSize := 32 * p.du
	for i := range u.vec {
		u.vec[i] = decompress(p.du, byteDecode(p.du, c1[i*uSize:(i+1)*uSize]))
	}

	v := decompress(p.dv, byteDecode(p.dv, c2))

	shat := polyVecFromBytes(p.k, 12, dkPKE)

	uNTT := newPolyVec(p.k)
	for i := range uNTT.vec {
		uNTT.vec[i] = new(poly)
		*uNTT.vec[i] = *u.vec[i]
		uNTT.vec[i].ntt()
	}

	var acc poly
	dotNTT(&acc, &shat, &uNTT)
	acc.invntt()

	var w poly
	w.sub(v, &acc)

	return byteEncode(1, compress(1, &w))
}

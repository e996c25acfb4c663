// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

// zeta and gamma are precomputed off-line (see DESIGN.md) rather than
// derived from bitrev7(k) and the primitive root 17 at init time, the same
// choice the teacher makes for its own NTT tables.
//
// zeta[k]  = 17^bitrev7(k)       mod q
// gamma[k] = 17^(2*bitrev7(k)+1) mod q
var zeta = [128]uint16{
	1, 1729, 2580, 3289, 2642, 630, 1897, 848, 1062, 1919, 193, 797, 2786, 3260, 569, 1746,
	296, 2447, 1339, 1476, 3046, 56, 2240, 1333, 1426, 2094, 535, 2882, 2393, 2879, 1974, 821,
	289, 331, 3253, 1756, 1197, 2304, 2277, 2055, 650, 1977, 2513, 632, 2865, 33, 1320, 1915,
	2319, 1435, 807, 452, 1438, 2868, 1534, 2402, 2647, 2617, 1481, 648, 2474, 3110, 1227, 910,
	17, 2761, 583, 2649, 1637, 723, 2288, 1100, 1409, 2662, 3281, 233, 756, 2156, 3015, 3050,
	1703, 1651, 2789, 1789, 1847, 952, 1461, 2687, 939, 2308, 2437, 2388, 733, 2337, 268, 641,
	1584, 2298, 2037, 3220, 375, 2549, 2090, 1645, 1063, 319, 2773, 757, 2099, 561, 2466, 2594,
	2804, 1092, 403, 1026, 1143, 2150, 2775, 886, 1722, 1212, 1874, 1029, 2110, 2935, 885, 2154,
}

var gamma = [128]uint16{
	17, 3312, 2761, 568, 583, 2746, 2649, 680, 1637, 1692, 723, 2606, 2288, 1041, 1100, 2229,
	1409, 1920, 2662, 667, 3281, 48, 233, 3096, 756, 2573, 2156, 1173, 3015, 314, 3050, 279,
	1703, 1626, 1651, 1678, 2789, 540, 1789, 1540, 1847, 1482, 952, 2377, 1461, 1868, 2687, 642,
	939, 2390, 2308, 1021, 2437, 892, 2388, 941, 733, 2596, 2337, 992, 268, 3061, 641, 2688,
	1584, 1745, 2298, 1031, 2037, 1292, 3220, 109, 375, 2954, 2549, 780, 2090, 1239, 1645, 1684,
	1063, 2266, 319, 3010, 2773, 556, 757, 2572, 2099, 1230, 561, 2768, 2466, 863, 2594, 735,
	2804, 525, 1092, 2237, 403, 2926, 1026, 2303, 1143, 2186, 2150, 1179, 2775, 554, 886, 2443,
	1722, 1607, 1212, 2117, 1874, 1455, 1029, 2300, 2110, 1219, 2935, 394, 885, 2444, 2154, 1175,
}

// invNTT128 is 128^-1 mod q, the scaling factor applied at the end of the
// inverse NTT.
const invNTT128 uint16 = 3303

// ntt computes the forward negacyclic NTT of p in place; input in standard
// order, output in NTT (bit-reversed-adjacent-pair) order.
func (p *poly) ntt() {
	nttFn(&p.coeffs)
}

// invntt computes the inverse negacyclic NTT of p in place; input in NTT
// order, output in standard order.
func (p *poly) invntt() {
	invnttFn(&p.coeffs)
}

func nttRef(a *[kyberN]uint16) {
	k := 1
	for level := 7; level >= 1; level-- {
		length := 1 << uint(level)
		for start := 0; start < kyberN; start += 2 * length {
			z := zeta[k]
			k++
			for j := start; j < start+length; j++ {
				t := mulMod(z, a[j+length])
				a[j+length] = subMod(a[j], t)
				a[j] = addMod(a[j], t)
			}
		}
	}
}

func invnttRef(a *[kyberN]uint16) {
	k := 127
	for level := 1; level <= 7; level++ {
		length := 1 << uint(level)
		for start := 0; start < kyberN; start += 2 * length {
			z := zeta[k]
			k--
			for j := start; j < start+length; j++ {
				t := a[j]
				a[j] = addMod(t, a[j+length])
				a[j+length] = mulMod(z, subMod(a[j+length], t))
			}
		}
	}

	for i := range a {
		a[i] = mulMod(a[i], invNTT128)
	}
}

// pointwiseMul computes c = a*b where a, b, c are in the NTT basis, i.e.
// multiplication in the 128 degree-2 residue fields Z_q[X]/(X^2-gamma_i)
// that the incomplete NTT splits R_q into.
func pointwiseMul(c, a, b *poly) {
	for i := 0; i < kyberN/2; i++ {
		a0, a1 := a.coeffs[2*i], a.coeffs[2*i+1]
		b0, b1 := b.coeffs[2*i], b.coeffs[2*i+1]

		c.coeffs[2*i] = addMod(mulMod(a0, b0), mulMod(mulMod(a1, b1), gamma[i]))
		c.coeffs[2*i+1] = addMod(mulMod(a0, b1), mulMod(a1, b0))
	}
}

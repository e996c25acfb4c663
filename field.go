// field.go - Modular arithmetic mod q=3329.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

// addMod returns (a+b) mod q. a and b must already be in [0, q).
func addMod(a, b uint16) uint16 {
	return uint16((uint32(a) + uint32(b)) % kyberQ)
}

// subMod returns (a-b) mod q. a and b must already be in [0, q).
func subMod(a, b uint16) uint16 {
	return uint16((uint32(a) + kyberQ - uint32(b)) % kyberQ)
}

// mulMod returns (a*b) mod q. a and b must already be in [0, q). The
// product of two values below q comfortably fits a 32-bit intermediate, so
// no Montgomery or Barrett reduction is needed here; see DESIGN.md for why
// the teacher's Montgomery-domain machinery (tied to Kyber round-2's
// q=7681) isn't carried forward.
func mulMod(a, b uint16) uint16 {
	return uint16((uint32(a) * uint32(b)) % kyberQ)
}

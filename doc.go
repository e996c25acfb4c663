// doc.go - ML-KEM godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem768 implements ML-KEM-768, the post-quantum
// key-encapsulation mechanism (KEM) standardized in NIST FIPS 203, based
// on the hardness of the module learning-with-errors (MLWE) problem over
// module lattices.
//
// This implementation follows the FIPS 203 specification directly: the
// ring R_q = Z_q[X]/(X^256+1) with q=3329, its negacyclic number-theoretic
// transform, the IND-CPA K-PKE public-key scheme, and the
// Fujisaki-Okamoto-style transform that lifts K-PKE into an IND-CCA2 KEM
// via re-encryption and implicit rejection.
//
// Only the ML-KEM-768 parameter set is implemented. Side-channel
// resistance beyond the constant-time decapsulation comparison is out of
// scope; this is a value-correct, not a timing-hardened, implementation.
//
// For more information, see https://csrc.nist.gov/pubs/fips/203/final.
package mlkem768

// hwaccel_ref.go - Unaccelerated stubs.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

// initHardwareAcceleration is the only implementation shipped by this
// package: a pure-Go reference NTT. An AVX2 (or similar) backend would
// plug in here behind a build tag, overriding nttFn/invnttFn and setting
// isHardwareAccelerated, exactly as the teacher's hwaccel_amd64.go would
// have for round-2 Kyber; ML-KEM-768 doesn't need one yet so it isn't
// built.
func initHardwareAcceleration() {
	forceDisableHardwareAcceleration()
}

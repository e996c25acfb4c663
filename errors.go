// errors.go - Sentinel errors.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

import "errors"

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key is
	// an invalid size.
	ErrInvalidKeySize = errors.New("mlkem768: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte serialized
	// ciphertext is an invalid size.
	ErrInvalidCipherTextSize = errors.New("mlkem768: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// decapsulation key fails its embedded hash check.
	ErrInvalidPrivateKey = errors.New("mlkem768: invalid decapsulation key")
)

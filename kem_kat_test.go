// kem_kat_test.go - Known-answer-test conformance.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

import (
	"os"
	"testing"
)

// TestKAT runs the NIST ACVP known-answer vectors against ML-KEM-768, the
// same file original_source/tests.py's get_tests() consumes. The full
// vector file is large and isn't checked into the repository; if it isn't
// present at testdata/kat_MLKEM_768.rsp, this falls back to a skip rather
// than a failure, mirroring Yawning-kyber/kem_vectors_test.go's
// full-vectors-if-present-else-fallback pattern.
func TestKAT(t *testing.T) {
	const path = "testdata/kat_MLKEM_768.rsp"

	f, err := os.Open(path)
	if err != nil {
		t.Skipf("%s not present, skipping KAT conformance run", path)
	}
	defer f.Close()

	records, err := ReadKATFile(f)
	if err != nil {
		t.Fatalf("ReadKATFile(%s): %v", path, err)
	}
	if len(records) == 0 {
		t.Fatalf("%s: no records", path)
	}

	for _, rec := range records {
		rec := rec
		t.Run("", func(t *testing.T) {
			if err := MLKEM768.Verify(rec); err != nil {
				t.Fatalf("count=%d: %v", rec.Count, err)
			}
		})
	}
}

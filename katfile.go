// katfile.go - NIST-style "count = / key = hexstring" KAT (.rsp) parsing.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem768

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// KATRecord is one ML-KEM known-answer-test record: the deterministic
// seeds fed to key generation and encapsulation, the expected outputs, and
// a corrupted ciphertext/shared-secret pair exercising implicit rejection.
type KATRecord struct {
	Count int

	Z   []byte // keygen seed z
	D   []byte // keygen seed d
	Msg []byte // encapsulation seed m

	PK []byte // expected encapsulation key
	SK []byte // expected decapsulation key
	CT []byte // expected ciphertext
	SS []byte // expected shared secret

	CTN []byte // corrupted ciphertext
	SSN []byte // expected shared secret when decapsulating CTN (implicit rejection)
}

// ReadKATFile parses a NIST ACVP/CAVP-style .rsp file: a sequence of
// "key = value" lines, one record per block separated by a fresh
// "count = N" line, the same line-oriented format
// original_source/tests.py's get_tests() reads.
func ReadKATFile(r io.Reader) ([]*KATRecord, error) {
	var records []*KATRecord
	var cur *KATRecord

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		k, v, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("katfile: line %d: malformed %q", lineNo, line)
		}

		if k == "count" {
			if cur != nil {
				records = append(records, cur)
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("katfile: line %d: bad count: %w", lineNo, err)
			}
			cur = &KATRecord{Count: n}
			continue
		}

		if cur == nil {
			return nil, fmt.Errorf("katfile: line %d: %q before any count", lineNo, k)
		}

		b, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("katfile: line %d: bad hex for %q: %w", lineNo, k, err)
		}

		switch k {
		case "z":
			cur.Z = b
		case "d":
			cur.D = b
		case "msg":
			cur.Msg = b
		case "pk":
			cur.PK = b
		case "sk":
			cur.SK = b
		case "ct":
			cur.CT = b
		case "ss":
			cur.SS = b
		case "ct_n":
			cur.CTN = b
		case "ss_n":
			cur.SSN = b
		default:
			return nil, fmt.Errorf("katfile: line %d: unknown field %q", lineNo, k)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		records = append(records, cur)
	}

	return records, nil
}

// Verify runs (p, rec) through ML-KEM.KeyGen_internal, Encaps_internal and
// Decaps, checking every field of rec agrees, and returns the first
// mismatch encountered, or nil if the record is fully consistent.
func (p *ParameterSet) Verify(rec *KATRecord) error {
	pk, sk := p.generateKeyPairInternal(rec.D, rec.Z)

	if got := pk.Bytes(); !bytes.Equal(got, rec.PK) {
		return fmt.Errorf("count=%d: pk mismatch", rec.Count)
	}
	if got := sk.Bytes(); !bytes.Equal(got, rec.SK) {
		return fmt.Errorf("count=%d: sk mismatch", rec.Count)
	}

	ct, ss := pk.encapsulateInternal(rec.Msg)
	if !bytes.Equal(ss, rec.SS) {
		return fmt.Errorf("count=%d: ss mismatch", rec.Count)
	}
	if !bytes.Equal(ct, rec.CT) {
		return fmt.Errorf("count=%d: ct mismatch", rec.Count)
	}

	ss2, err := sk.Decapsulate(rec.CT)
	if err != nil {
		return fmt.Errorf("count=%d: Decapsulate(ct): %w", rec.Count, err)
	}
	if !bytes.Equal(ss2, ss) {
		return fmt.Errorf("count=%d: Decapsulate(ct) mismatch", rec.Count)
	}

	ss3, err := sk.Decapsulate(rec.CTN)
	if err != nil {
		return fmt.Errorf("count=%d: Decapsulate(ct_n): %w", rec.Count, err)
	}
	if !bytes.Equal(ss3, rec.SSN) {
		return fmt.Errorf("count=%d: Decapsulate(ct_n) (implicit rejection) mismatch", rec.Count)
	}

	return nil
}

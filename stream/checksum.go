package stream

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"hash/crc32"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/Tim020/botocore/botoerr"
)

// Supported checksum algorithm names.
const (
	AlgorithmCRC32  = "crc32"
	AlgorithmSHA256 = "sha256"
	AlgorithmXXH64  = "xxh64"
)

// Verifier computes a running checksum over a body and compares it against
// the value the service declared.
type Verifier struct {
	algorithm string
	expected  string
	h         hash.Hash
}

// NewVerifier creates a Verifier for the named algorithm. The expected
// checksum is lowercase hex. Unsupported algorithm names fail with an
// UnknownKeyError listing the supported set.
func NewVerifier(algorithm, expected string) (*Verifier, error) {
	var h hash.Hash
	switch algorithm {
	case AlgorithmCRC32:
		h = crc32.NewIEEE()
	case AlgorithmSHA256:
		h = sha256.New()
	case AlgorithmXXH64:
		h = xxhash.New()
	default:
		return nil, botoerr.NewUnknownKeyError(algorithm, "checksum_algorithm",
			[]string{AlgorithmCRC32, AlgorithmSHA256, AlgorithmXXH64})
	}
	return &Verifier{algorithm: algorithm, expected: expected, h: h}, nil
}

// Write feeds body bytes into the running checksum.
func (v *Verifier) Write(p []byte) (int, error) {
	return v.h.Write(p)
}

// Sum returns the current checksum as lowercase hex.
func (v *Verifier) Sum() string {
	return hex.EncodeToString(v.h.Sum(nil))
}

// Verify compares the computed checksum against the expected one and fails
// with a ChecksumError on mismatch.
func (v *Verifier) Verify() error {
	actual := v.Sum()
	if actual != v.expected {
		return botoerr.NewChecksumError(v.algorithm, v.expected, actual)
	}
	return nil
}

// VerifyReader consumes all of r while checksumming it and verifies the
// result. The body bytes are discarded.
func VerifyReader(r io.Reader, algorithm, expected string) error {
	v, err := NewVerifier(algorithm, expected)
	if err != nil {
		return err
	}
	if _, err := io.Copy(v, r); err != nil {
		return err
	}
	return v.Verify()
}

// Sum64Hex returns the xxh64 digest of p as lowercase hex. Used where a
// cheap integrity tag is needed without the full Verifier.
func Sum64Hex(p []byte) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], xxhash.Sum64(p))
	return hex.EncodeToString(buf[:])
}

package hashing

import (
	"fmt"
	"strings"

	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/xerrors"
)

// Algorithm selects the digest function applied to file content.
type Algorithm string

const (
	SHA256 Algorithm = "sha256" // 32-byte SHA-256.
	BLAKE3 Algorithm = "blake3" // 32-byte BLAKE3 (default).
	XXH3   Algorithm = "xxh3"   // 16-byte XXH3-128, non-cryptographic.
)

// Algorithms lists every supported algorithm in display order.
var Algorithms = []Algorithm{SHA256, BLAKE3, XXH3}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case SHA256, BLAKE3, XXH3:
		return a, nil
	case "sha-256":
		return SHA256, nil
	}
	return "", xerrors.Errorf("invalid algorithm %q (use 'sha256', 'blake3' or 'xxh3')", s)
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case SHA256, BLAKE3, XXH3:
		return true
	}
	return false
}

// Size returns the digest length in bytes, or 0 for an unknown algorithm.
func (a Algorithm) Size() int {
	switch a {
	case SHA256, BLAKE3:
		return 32
	case XXH3:
		return 16
	}
	return 0
}

// Sum returns the digest of data. It panics on an unknown algorithm;
// callers validate the algorithm once at startup.
func (a Algorithm) Sum(data []byte) Digest {
	switch a {
	case SHA256:
		sum := sha256.Sum256(data)
		return sum[:]
	case BLAKE3:
		sum := blake3.Sum256(data)
		return sum[:]
	case XXH3:
		sum := xxh3.Hash128(data).Bytes()
		return sum[:]
	}
	panic(fmt.Sprintf("hashing: unknown algorithm %q", string(a)))
}

func (a Algorithm) String() string { return string(a) }

//go:build amd64

// Package simd provides vectorized byte and substring search primitives for
// high-performance line-oriented text search. The package automatically
// selects the widest lane width the running CPU supports (AVX-512, then
// AVX2) and falls back to a portable SWAR (SIMD-within-a-register)
// implementation everywhere else.
//
// The primary use case is scanning memory-mapped file contents for a literal
// query, and recovering line boundaries around a match, at a throughput
// competitive with production greps.
//
// # Tiers
//
// Exactly one tier is selected once, at process start, based on CPU feature
// detection (golang.org/x/sys/cpu). Every tier must return byte-identical
// results for identical input; this is covered by TestMemchrBasic and the
// stdlib-parity checks in memchr_test.go.
package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization. These decide
// which tier's 64-byte (AVX-512-width) or 32-byte (AVX2-width) lane handles
// a given call; callers never branch on tier themselves.
var (
	// hasAVX512 indicates 512-bit lane support (Skylake-X and newer Xeons,
	// Ice Lake / Zen 4 client parts). Gives the widest per-iteration lane.
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW

	// hasAVX2 indicates 256-bit lane support (Haswell/Excavator and newer).
	hasAVX2 = cpu.X86.HasAVX2
)

// minAVX512Len and minAVX2Len are the input sizes below which the wider
// tier's tail-handling overhead outweighs its throughput gain; below them
// we fall through to the next narrower tier.
const (
	minAVX512Len = 64
	minAVX2Len   = 32
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This function is equivalent to bytes.IndexByte but dispatches to the
// widest available lane width on x86-64, falling back to the portable
// SWAR implementation for small inputs.
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}

	if hasAVX512 && len(haystack) >= minAVX512Len {
		return memchrWide64(haystack, needle)
	}
	if hasAVX2 && len(haystack) >= minAVX2Len {
		return memchrWide32(haystack, needle)
	}

	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present. Both bytes are checked
// in the same pass, at the same throughput as a single-byte Memchr.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if len(haystack) == 0 {
		return -1
	}

	if hasAVX512 && len(haystack) >= minAVX512Len {
		return memchr2Wide64(haystack, needle1, needle2)
	}
	if hasAVX2 && len(haystack) >= minAVX2Len {
		return memchr2Wide32(haystack, needle1, needle2)
	}

	return memchr2Generic(haystack, needle1, needle2)
}

// MemchrPair finds the first position where byte1 appears at offset 0 and
// byte2 appears at the given offset from byte1. memmemRareByte uses this to
// match a needle's two rarest bytes at their correct relative distance,
// which is far more selective than a single-byte search.
//
// Returns the position of byte1 where both conditions hold, or -1.
func MemchrPair(haystack []byte, byte1, byte2 byte, offset int) int {
	if offset < 0 {
		return -1
	}
	if len(haystack) <= offset {
		return -1
	}

	if offset == 0 {
		if byte1 != byte2 {
			return -1
		}
		return Memchr(haystack, byte1)
	}

	return memchrPairGeneric(haystack, byte1, byte2, offset)
}

// ActiveTier reports which search tier this process selected at startup.
// It exists for diagnostics and tests; the scanner never exposes this
// choice to callers otherwise — they only ever observe Memchr/Memmem
// results, which are required to be identical across tiers.
func ActiveTier() string {
	switch {
	case hasAVX512:
		return "avx512"
	case hasAVX2:
		return "avx2"
	default:
		return "scalar"
	}
}

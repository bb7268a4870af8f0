// Package cpu reports the SIMD capabilities used to pick kernel variants.
//
// Detection runs once and is cached. Callers that need a different view of the
// hardware (tests, the ndbench --force-generic flag) derive a modified Features
// value instead of mutating package state.
package cpu

import "sync"

// SIMDLevel is the instruction set a kernel variant requires.
type SIMDLevel int

const (
	// SIMDNone needs nothing beyond portable Go.
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX
	SIMDAVX2
	SIMDAVX512
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "none"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX:
		return "avx"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Features describes the processor as seen by the kernel registry.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric restricts selection to SIMDNone variants.
	ForceGeneric bool

	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features
)

// DetectFeatures returns the cached features of the running processor.
// It is safe for concurrent use.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}

// Generic returns f with ForceGeneric set.
func (f Features) Generic() Features {
	f.ForceGeneric = true
	return f
}

// Best returns the highest SIMD level supported by f. On amd64 the x86 levels
// are ordered, on arm64 NEON is the only level.
func (f Features) Best() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// Supports reports whether features allow a variant that requires level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

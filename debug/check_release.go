//go:build !debug

// Package debug provides bounds checks and assertions that can be enabled
// with the debug build tag or will otherwise compile to no-ops.
//
// This is not considered idiomatic Go, but keeps validation off the
// per-pixel hot paths in release builds.
package debug

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = false

// Check validates the index x against the half-open range [0, n).
//
// On violation it writes a single line to stderr and returns false, in which
// case the caller must bail out with its sentinel value instead of using x:
//
//	if !debug.Check("lut: index ", idx, len(m)) {
//		return 0
//	}
//
// In release builds it reports every index as valid; out of range access
// becomes the caller's responsibility.
func Check(msg string, x, n int) bool { return true }

// CheckImagePtr validates that p lies within the address span of img, i.e.
// [base, base+(ni-1)*si+(nj-1)*sj], both ends inclusive. The caller bails
// out with its sentinel value when false is returned, see Check.
//
// The span is a coarse over-approximation of the valid element addresses:
// it assumes non-negative strides and does not verify that p is reachable
// from base by whole strides. An empty image rejects every pointer,
// including base itself.
func CheckImagePtr(msg string, p uintptr, img Image) bool { return true }

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}

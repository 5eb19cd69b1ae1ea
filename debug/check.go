//go:build debug

package debug

import (
	"fmt"
	"os"
)

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = true

func Check(msg string, x, n int) bool {
	if x < 0 || x >= n {
		fmt.Fprintf(os.Stderr, "%s%d out of bound (%d)\n", msg, x, n)
		return false
	}
	return true
}

func CheckImagePtr(msg string, p uintptr, img Image) bool {
	base := img.Base()
	ni, nj := img.Extents()
	si, sj := img.Strides()
	last := base + uintptr((ni-1)*si+(nj-1)*sj)
	if ni <= 0 || nj <= 0 || p < base || p > last {
		fmt.Fprintf(os.Stderr, "%s%#x out of bound (%#x,%dx%d, %dx%d)\n",
			msg, p, base, ni, si, nj, sj)
		return false
	}
	return true
}

func Assert(b bool, message string) {
	if !b {
		panic(message)
	}
}

func AssertErrNil(err error) {
	if err != nil {
		panic(err)
	}
}

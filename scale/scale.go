// Package scale resamples strided buffers between rectangles, e.g. when a
// plot zooms into a region of an image item.
package scale

import (
	"image"
	"math"
	"unsafe"

	"github.com/clktmr/pixbuf/debug"
	"github.com/clktmr/pixbuf/pix"
)

// Interpolation selects how source pixels are combined into a destination
// pixel.
type Interpolation int

const (
	Nearest Interpolation = iota
	Linear
)

// Resize scales the whole of src onto the whole of dst. It returns the
// number of pixels written, which is zero if a bounds violation was
// detected in a debug build.
func Resize[T pix.Scalar](dst, src *pix.Buffer[T], interp Interpolation) int {
	return ScaleRect(dst, dst.Bounds(), src, src.Bounds(), interp)
}

// ScaleRect resamples the source rectangle sr of src onto the destination
// rectangle dr of dst. Both rectangles are interpreted as by
// [pix.Buffer.Bounds] and must lie within their buffer's bounds; in debug
// builds a violating rectangle trips the bounds checks on the pixel paths
// below, in release builds it is the caller's responsibility.
//
// It returns the number of pixels written, which is zero if a bounds
// violation was detected.
func ScaleRect[T pix.Scalar](dst *pix.Buffer[T], dr image.Rectangle,
	src *pix.Buffer[T], sr image.Rectangle, interp Interpolation) int {
	if dr.Empty() || sr.Empty() {
		return 0
	}
	ai := float64(sr.Dy()) / float64(dr.Dy())
	aj := float64(sr.Dx()) / float64(dr.Dx())

	sni, snj := src.Extents()
	dni, dnj := dst.Extents()
	n := 0
	for i := dr.Min.Y; i < dr.Max.Y; i++ {
		if !debug.Check("scale: dst row ", i, dni) {
			return 0
		}
		// Sample at the pixel center.
		fi := (float64(i-dr.Min.Y)+0.5)*ai - 0.5 + float64(sr.Min.Y)
		for j := dr.Min.X; j < dr.Max.X; j++ {
			if !debug.Check("scale: dst col ", j, dnj) {
				return 0
			}
			fj := (float64(j-dr.Min.X)+0.5)*aj - 0.5 + float64(sr.Min.X)

			var v T
			switch interp {
			case Nearest:
				i0 := int(math.Floor(fi + 0.5))
				j0 := int(math.Floor(fj + 0.5))
				if !debug.Check("scale: src row ", i0, sni) {
					return 0
				}
				if !debug.Check("scale: src col ", j0, snj) {
					return 0
				}
				p := src.Elem(i0, j0)
				if !debug.CheckImagePtr("scale: src ",
					uintptr(unsafe.Pointer(p)), src) {
					return 0
				}
				v = *p
			case Linear:
				var ok bool
				if v, ok = bilinear(src, fi, fj); !ok {
					return 0
				}
			}

			p := dst.Elem(i, j)
			if !debug.CheckImagePtr("scale: dst ",
				uintptr(unsafe.Pointer(p)), dst) {
				return 0
			}
			*p = v
			n++
		}
	}
	return n
}

// bilinear interpolates between the four pixels surrounding (fi, fj),
// clamping at the source edges.
func bilinear[T pix.Scalar](src *pix.Buffer[T], fi, fj float64) (v T, ok bool) {
	sni, snj := src.Extents()
	i0, j0 := int(math.Floor(fi)), int(math.Floor(fj))
	di, dj := fi-float64(i0), fj-float64(j0)
	i1, j1 := clamp(i0+1, sni), clamp(j0+1, snj)
	i0, j0 = clamp(i0, sni), clamp(j0, snj)

	if !debug.Check("scale: src row ", i0, sni) ||
		!debug.Check("scale: src row ", i1, sni) ||
		!debug.Check("scale: src col ", j0, snj) ||
		!debug.Check("scale: src col ", j1, snj) {
		return v, false
	}
	v00 := float64(*src.Elem(i0, j0))
	v01 := float64(*src.Elem(i0, j1))
	v10 := float64(*src.Elem(i1, j0))
	v11 := float64(*src.Elem(i1, j1))
	f := (1-di)*((1-dj)*v00+dj*v01) + di*((1-dj)*v10+dj*v11)
	return T(f), true
}

func clamp(x, n int) int {
	return min(max(x, 0), n-1)
}

// Package pix provides strided two-dimensional numeric buffers, used as the
// common datastructure between the scaling and colormap engines.
//
// A Buffer addresses its element (i, j) at base + i*si + j*sj, with strides
// given in bytes. Views created by Sub, FlipI, FlipJ and Transpose share
// their backing storage, which allows cropping, mirroring and transposing
// images without copying pixels. Strides of a view may be negative.
package pix

import (
	"image"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/clktmr/pixbuf/debug"
)

// Scalar is the set of element types a Buffer can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Buffer is a strided view of a two-dimensional numeric array. The zero
// value is an empty buffer.
type Buffer[T Scalar] struct {
	pix    []T // backing storage, shared between views
	off    int // byte offset of element (0, 0) into pix
	ni, nj int // extents
	si, sj int // strides in bytes
}

// New returns a contiguous row-major buffer with ni rows and nj columns.
func New[T Scalar](ni, nj int) *Buffer[T] {
	debug.Assert(ni >= 0 && nj >= 0, "pix: negative extent")
	elem := int(unsafe.Sizeof(*new(T)))
	return &Buffer[T]{
		pix: make([]T, ni*nj),
		ni:  ni, nj: nj,
		si: nj * elem, sj: elem,
	}
}

// FromSlice wraps existing row-major data in a Buffer without copying. The
// slice must hold at least ni*nj elements.
func FromSlice[T Scalar](p []T, ni, nj int) *Buffer[T] {
	debug.Assert(ni >= 0 && nj >= 0, "pix: negative extent")
	debug.Assert(len(p) >= ni*nj, "pix: slice too short")
	elem := int(unsafe.Sizeof(*new(T)))
	return &Buffer[T]{
		pix: p,
		ni:  ni, nj: nj,
		si: nj * elem, sj: elem,
	}
}

// Extents returns the number of rows and columns.
func (b *Buffer[T]) Extents() (ni, nj int) { return b.ni, b.nj }

// Strides returns the row and column strides in bytes.
func (b *Buffer[T]) Strides() (si, sj int) { return b.si, b.sj }

// Base returns the address of element (0, 0).
func (b *Buffer[T]) Base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.pix))) + uintptr(b.off)
}

// Bounds returns the buffer's extents as a rectangle, with x addressing
// columns and y addressing rows.
func (b *Buffer[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.nj, b.ni)
}

// Elem returns the address of element (i, j) without validating it. Callers
// on raw pointer paths must validate the address with debug.CheckImagePtr
// before dereferencing.
func (b *Buffer[T]) Elem(i, j int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b.pix)),
		b.off+i*b.si+j*b.sj))
}

// At returns the element (i, j), or the zero value if the indices fail the
// bounds checks in debug builds.
func (b *Buffer[T]) At(i, j int) (v T) {
	if !debug.Check("pix: row ", i, b.ni) {
		return
	}
	if !debug.Check("pix: col ", j, b.nj) {
		return
	}
	return *b.Elem(i, j)
}

// Set stores v at (i, j). It does nothing if the indices fail the bounds
// checks in debug builds.
func (b *Buffer[T]) Set(i, j int, v T) {
	if !debug.Check("pix: row ", i, b.ni) {
		return
	}
	if !debug.Check("pix: col ", j, b.nj) {
		return
	}
	*b.Elem(i, j) = v
}

// Sub returns a view of b limited to r, interpreted as by Bounds. The view
// shares storage with b.
func (b *Buffer[T]) Sub(r image.Rectangle) *Buffer[T] {
	r = r.Intersect(b.Bounds())
	v := Buffer[T]{pix: b.pix, si: b.si, sj: b.sj}
	if !r.Empty() {
		v.off = b.off + r.Min.Y*b.si + r.Min.X*b.sj
		v.ni, v.nj = r.Dy(), r.Dx()
	}
	return &v
}

// FlipI returns a view of b with the rows in reverse order.
func (b *Buffer[T]) FlipI() *Buffer[T] {
	v := *b
	if b.ni > 0 {
		v.off += (b.ni - 1) * b.si
	}
	v.si = -b.si
	return &v
}

// FlipJ returns a view of b with the columns in reverse order.
func (b *Buffer[T]) FlipJ() *Buffer[T] {
	v := *b
	if b.nj > 0 {
		v.off += (b.nj - 1) * b.sj
	}
	v.sj = -b.sj
	return &v
}

// Transpose returns a view of b with the axes swapped.
func (b *Buffer[T]) Transpose() *Buffer[T] {
	v := *b
	v.ni, v.nj = b.nj, b.ni
	v.si, v.sj = b.sj, b.si
	return &v
}

// Row returns the i'th row as a slice sharing storage with b, or nil if the
// row's elements are not adjacent in memory.
func (b *Buffer[T]) Row(i int) []T {
	if !debug.Check("pix: row ", i, b.ni) {
		return nil
	}
	if b.sj != int(unsafe.Sizeof(*new(T))) {
		return nil
	}
	return unsafe.Slice(b.Elem(i, 0), b.nj)
}

// Range returns the minimum and maximum element of b. NaN elements of
// floating point buffers are ignored. ok is false if b is empty or holds
// only NaNs.
func Range[T Scalar](b *Buffer[T]) (lo, hi T, ok bool) {
	ni, nj := b.Extents()
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			v := b.At(i, j)
			if v != v { // NaN
				continue
			}
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return
}

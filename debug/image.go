package debug

// Image describes a strided two-dimensional buffer to CheckImagePtr. The
// valid element addresses are base + i*si + j*sj for 0 <= i < ni and
// 0 <= j < nj, with strides given in bytes. The checker only reads the
// descriptor, it never retains it.
type Image interface {
	Base() uintptr
	Extents() (ni, nj int)
	Strides() (si, sj int)
}

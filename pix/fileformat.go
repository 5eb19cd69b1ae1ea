package pix

import (
	"compress/zlib"
	"encoding/binary"
	"errors"
	"io"
	"unsafe"
)

// ErrElemMismatch is returned by Load if the stored element type differs
// from the requested one.
var ErrElemMismatch = errors.New("pix: element type mismatch")

type header struct {
	ElemSize uint8
	Float    bool
	Ni, Nj   uint32
}

func isFloat[T Scalar]() bool {
	switch any(*new(T)).(type) {
	case float32, float64:
		return true
	}
	return false
}

// Store writes a compacted row-major snapshot of b to w. Views are stored
// as seen, i.e. cropped, flipped or transposed.
func (b *Buffer[T]) Store(w io.Writer) error {
	zw := zlib.NewWriter(w)
	hdr := header{
		ElemSize: uint8(unsafe.Sizeof(*new(T))),
		Float:    isFloat[T](),
		Ni:       uint32(b.ni),
		Nj:       uint32(b.nj),
	}
	if err := binary.Write(zw, binary.BigEndian, &hdr); err != nil {
		return err
	}
	row := make([]T, b.nj)
	for i := 0; i < b.ni; i++ {
		for j := 0; j < b.nj; j++ {
			row[j] = b.At(i, j)
		}
		if err := binary.Write(zw, binary.BigEndian, row); err != nil {
			return err
		}
	}
	return zw.Close()
}

// Load reads a buffer stored by Store from r.
func Load[T Scalar](r io.Reader) (*Buffer[T], error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var hdr header
	if err := binary.Read(zr, binary.BigEndian, &hdr); err != nil {
		return nil, err
	}
	if hdr.ElemSize != uint8(unsafe.Sizeof(*new(T))) || hdr.Float != isFloat[T]() {
		return nil, ErrElemMismatch
	}
	b := New[T](int(hdr.Ni), int(hdr.Nj))
	if err := binary.Read(zr, binary.BigEndian, b.pix); err != nil {
		return nil, err
	}
	return b, nil
}

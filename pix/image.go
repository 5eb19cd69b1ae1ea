package pix

import (
	"image"
	"image/color"
)

// FromImage converts m into a float buffer of its luminance values scaled
// to [0, 1].
func FromImage(m image.Image) *Buffer[float64] {
	r := m.Bounds()
	b := New[float64](r.Dy(), r.Dx())
	for i := 0; i < b.ni; i++ {
		for j := 0; j < b.nj; j++ {
			c := color.Gray16Model.Convert(m.At(r.Min.X+j, r.Min.Y+i)).(color.Gray16)
			b.Set(i, j, float64(c.Y)/0xffff)
		}
	}
	return b
}

// Gray converts b into a grayscale image, mapping the values lo and hi to
// black and white respectively.
func (b *Buffer[T]) Gray(lo, hi T) *image.Gray {
	img := image.NewGray(b.Bounds())
	span := float64(hi) - float64(lo)
	if span <= 0 {
		return img
	}
	for i := 0; i < b.ni; i++ {
		for j := 0; j < b.nj; j++ {
			f := (float64(b.At(i, j)) - float64(lo)) / span
			if f != f { // NaN
				continue
			}
			f = min(max(f, 0), 1)
			img.SetGray(j, i, color.Gray{Y: uint8(f*0xff + 0.5)})
		}
	}
	return img
}

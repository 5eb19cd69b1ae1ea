package lut_test

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/clktmr/pixbuf/lut"
	"github.com/clktmr/pixbuf/pix"
)

var grayscale = []color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

func TestLinear(t *testing.T) {
	m := lut.Linear(grayscale, 256)
	if len(m) != 256 {
		t.Fatalf("len = %d, want 256", len(m))
	}
	if m[0] != grayscale[0] {
		t.Errorf("m[0] = %v, want %v", m[0], grayscale[0])
	}
	if m[255] != grayscale[1] {
		t.Errorf("m[255] = %v, want %v", m[255], grayscale[1])
	}
	for k := 1; k < 256; k++ {
		if m[k].R < m[k-1].R {
			t.Fatalf("not monotone at %d", k)
		}
	}
}

func TestApply(t *testing.T) {
	src := pix.FromSlice([]float64{0, 1, 2, 3}, 1, 4)
	m := lut.Linear(grayscale, 4)
	dst := image.NewRGBA(image.Rect(0, 0, 4, 1))

	if n := lut.Apply(dst, src, m, 0, 3); n != 4 {
		t.Fatalf("Apply = %d, want 4", n)
	}
	for j := 0; j < 4; j++ {
		if got := dst.RGBAAt(j, 0); got != m[j] {
			t.Errorf("pixel %d = %v, want %v", j, got, m[j])
		}
	}
}

func TestApplyClampAndNaN(t *testing.T) {
	src := pix.FromSlice([]float64{-10, 10, math.NaN()}, 1, 3)
	m := lut.Linear(grayscale, 16)
	dst := image.NewRGBA(image.Rect(0, 0, 3, 1))

	if n := lut.Apply(dst, src, m, 0, 1); n != 3 {
		t.Fatalf("Apply = %d, want 3", n)
	}
	if got := dst.RGBAAt(0, 0); got != m[0] {
		t.Errorf("underflow pixel = %v, want %v", got, m[0])
	}
	if got := dst.RGBAAt(1, 0); got != m[15] {
		t.Errorf("overflow pixel = %v, want %v", got, m[15])
	}
	if got := dst.RGBAAt(2, 0); got != (color.RGBA{}) {
		t.Errorf("NaN pixel = %v, want transparent", got)
	}
}

// A destination smaller than the source only stores and counts the
// overlapping pixels.
func TestApplySmallDst(t *testing.T) {
	src := pix.FromSlice([]float64{0, 1, 2, 3}, 1, 4)
	m := lut.Linear(grayscale, 4)
	dst := image.NewRGBA(image.Rect(0, 0, 2, 1))

	if n := lut.Apply(dst, src, m, 0, 3); n != 2 {
		t.Errorf("Apply = %d, want 2", n)
	}
	for j := 0; j < 2; j++ {
		if got := dst.RGBAAt(j, 0); got != m[j] {
			t.Errorf("pixel %d = %v, want %v", j, got, m[j])
		}
	}
}

func TestApplyEmptyRange(t *testing.T) {
	src := pix.FromSlice([]float64{1, 2}, 1, 2)
	dst := image.NewRGBA(image.Rect(0, 0, 2, 1))
	if n := lut.Apply(dst, src, lut.Linear(grayscale, 4), 5, 5); n != 0 {
		t.Errorf("Apply with empty range = %d, want 0", n)
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			c := color.RGBA{0xff, 0x00, 0x00, 0xff}
			if x >= 4 {
				c = color.RGBA{0x00, 0x00, 0xff, 0xff}
			}
			img.SetRGBA(x, y, c)
		}
	}

	m := lut.FromImage(img, 4)
	if len(m) == 0 || len(m) > 4 {
		t.Fatalf("len = %d, want 1..4", len(m))
	}
	for _, c := range m {
		if c.A != 0xff {
			t.Errorf("quantized color %v not opaque", c)
		}
	}
}

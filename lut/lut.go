// Package lut builds and applies colormap lookup tables to numeric
// buffers, e.g. when rendering intensity data as a false color image.
package lut

import (
	"image"
	"image/color"
	"math"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/clktmr/pixbuf/debug"
	"github.com/clktmr/pixbuf/pix"
)

// Map is a lookup table of colors, indexed by scaled pixel values.
type Map []color.RGBA

// Linear returns a Map of n colors interpolated between the given stops,
// which are spaced evenly across the table.
func Linear(stops []color.RGBA, n int) Map {
	debug.Assert(len(stops) >= 2, "lut: need at least two stops")
	debug.Assert(n >= 2, "lut: need at least two entries")
	m := make(Map, n)
	for k := range m {
		f := float64(k) / float64(n-1) * float64(len(stops)-1)
		s := min(int(f), len(stops)-2)
		d := f - float64(s)
		c0, c1 := stops[s], stops[s+1]
		m[k] = color.RGBA{
			R: lerp(c0.R, c1.R, d),
			G: lerp(c0.G, c1.G, d),
			B: lerp(c0.B, c1.B, d),
			A: lerp(c0.A, c1.A, d),
		}
	}
	return m
}

func lerp(a, b uint8, d float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*d))
}

// FromImage returns a Map holding at most n quantized colors of m.
func FromImage(m image.Image, n int) Map {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make([]color.Color, 0, n), m)
	out := make(Map, 0, len(p))
	for _, c := range p {
		out = append(out, color.RGBAModel.Convert(c).(color.RGBA))
	}
	return out
}

// Apply colorizes src into dst by mapping values in [lo, hi] linearly onto
// m. Values outside the range are clamped, NaNs map to a transparent pixel.
// Element (i, j) of src is written to dst's pixel (Min.X+j, Min.Y+i);
// elements falling outside dst's bounds are skipped.
//
// It returns the number of pixels actually stored, which is zero if lo and
// hi span no range or a bounds violation was detected in a debug build.
func Apply[T pix.Scalar](dst *image.RGBA, src *pix.Buffer[T], m Map, lo, hi T) int {
	span := float64(hi) - float64(lo)
	if !(span > 0) || len(m) == 0 { // also rejects NaN
		return 0
	}
	ni, nj := src.Extents()
	n := 0
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			v := src.At(i, j)
			x, y := dst.Rect.Min.X+j, dst.Rect.Min.Y+i
			if !(image.Point{x, y}.In(dst.Rect)) {
				continue
			}
			if v != v { // NaN
				dst.SetRGBA(x, y, color.RGBA{})
				n++
				continue
			}
			f := (float64(v) - float64(lo)) / span
			f = min(max(f, 0), 1)
			idx := int(math.Round(f * float64(len(m)-1)))
			if !debug.Check("lut: index ", idx, len(m)) {
				return 0
			}
			dst.SetRGBA(x, y, m[idx])
			n++
		}
	}
	return n
}

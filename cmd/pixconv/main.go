// Command pixconv resizes an image and renders it through a colormap.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/clktmr/pixbuf/lut"
	"github.com/clktmr/pixbuf/pix"
	"github.com/clktmr/pixbuf/scale"
)

var (
	flags = flag.NewFlagSet("pixconv", flag.ExitOnError)

	width  = flags.Int("width", 0, "output width, 0 keeps the input width")
	height = flags.Int("height", 0, "output height, 0 keeps the input height")
	interp = flags.String("interp", "linear", "interpolation, either nearest or linear")
	cmap   = flags.String("colormap", "gray", "colormap, one of gray, jet or an image file to quantize")
	colors = flags.Int("colors", 256, "number of colors in the lookup table")

	imagefile string
)

const usageString = `Image resize and false color renderer.

Usage: %s [flags] <image>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "pixconv")
	flags.PrintDefaults()
}

var jet = []color.RGBA{
	{0x00, 0x00, 0x8f, 0xff},
	{0x00, 0x00, 0xff, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0x8f, 0x00, 0x00, 0xff},
}

func main() {
	flags.Usage = usage
	flags.Parse(os.Args[1:])

	if flags.NArg() == 1 {
		imagefile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	r, err := os.Open(imagefile)
	if err != nil {
		log.Fatalln(err)
	}

	src, _, err := image.Decode(r)
	if err != nil {
		log.Fatalln(err)
	}
	r.Close()

	data := pix.FromImage(src)
	ni, nj := data.Extents()
	if *height == 0 {
		*height = ni
	}
	if *width == 0 {
		*width = nj
	}

	var ip scale.Interpolation
	switch *interp {
	case "nearest":
		ip = scale.Nearest
	case "linear":
		ip = scale.Linear
	default:
		log.Fatalln("unsupported interpolation:", *interp)
	}

	resized := pix.New[float64](*height, *width)
	if scale.Resize(resized, data, ip) == 0 {
		log.Fatalln("resize failed")
	}

	var m lut.Map
	switch *cmap {
	case "gray":
		m = lut.Linear([]color.RGBA{{A: 0xff}, {0xff, 0xff, 0xff, 0xff}}, *colors)
	case "jet":
		m = lut.Linear(jet, *colors)
	default:
		pr, err := os.Open(*cmap)
		if err != nil {
			log.Fatalln(err)
		}
		pimg, _, err := image.Decode(pr)
		if err != nil {
			log.Fatalln(err)
		}
		pr.Close()
		m = lut.FromImage(pimg, *colors)
	}

	lo, hi, ok := pix.Range(resized)
	if !ok {
		log.Fatalln("no finite pixel values in", imagefile)
	}
	if hi == lo {
		hi = lo + 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	if lut.Apply(dst, resized, m, lo, hi) == 0 {
		log.Fatalln("colormap failed")
	}

	outfile := strings.TrimSuffix(imagefile, filepath.Ext(imagefile)) + ".out.png"
	w, err := os.Create(outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer w.Close()

	if err := png.Encode(w, dst); err != nil {
		log.Fatalln(err)
	}
}

// Command aim renders Star Soldier's aim classification as a 256x240 map:
// each pixel is colored by the direction code a shot fired from the screen
// center toward that pixel would take.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/pkg/errors"

	"starsoldier/aim"
	"starsoldier/gridvis"
)

const (
	screenW = 256
	screenH = 240
)

var shooter = aim.Position{X: 127, Y: 119}

var palette = gridvis.Palette(
	"#FF9D00", "#0000FF", "#20E2FF", "#00FF04",
	"#BC046C", "#3C7300", "#0588FF", "#672A00",
	"#FFC6F5", "#F3FF00", "#FFF7B3", "#00FFAF",
	"#00464A", "#FF0029", "#150047", "#FF00F5",
)

func main() {
	log.SetPrefix("aim: ")
	log.SetFlags(0)

	nWorkers := -1
	flag.IntVar(&nWorkers, "n", -1, "number of parallel workers (-1 = CPU count)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-n workers] <out.png>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	if err := run(flag.Arg(0), nWorkers); err != nil {
		log.Fatal(err)
	}
}

func run(pathOut string, nWorkers int) error {
	codes, used := aim.Sweep(screenW, screenH, shooter, nWorkers)
	fmt.Printf("swept %dx%d from (%d,%d) with %d workers\n", screenW, screenH, shooter.X, shooter.Y, used)

	if err := gridvis.ExportPNG(pathOut, visualize(codes)); err != nil {
		return errors.Wrapf(err, "writing %s", pathOut)
	}
	fmt.Printf("wrote %s\n", pathOut)
	return nil
}

func visualize(codes [][]aim.Code) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(codes[0]), len(codes)))
	for y, row := range codes {
		for x, c := range row {
			img.SetNRGBA(x, y, codeColor(c))
		}
	}
	return img
}

func codeColor(c aim.Code) color.NRGBA {
	return palette[c]
}

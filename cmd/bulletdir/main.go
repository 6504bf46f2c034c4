// Command bulletdir dumps Star Soldier's precomputed bullet direction table
// from an iNES ROM as a labelled grid around the firing point.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"starsoldier/gridvis"
	"starsoldier/rom"
)

const (
	gridW, gridH     = 21, 21
	originX, originY = 10, 10
)

func main() {
	log.SetPrefix("bulletdir: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <rom.nes> <out.png>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
	}

	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatal(err)
	}
}

func run(pathROM, pathOut string) error {
	r, err := rom.Load(pathROM)
	if err != nil {
		return err
	}

	dirs := rom.BulletDirections(r, rom.StarSoldier)
	fmt.Printf("read %d bullet directions from PRG $%04X/$%04X\n", len(dirs), rom.StarSoldier.BulletDirX, rom.StarSoldier.BulletDirY)

	g := newGrid(gridW, gridH, originX, originY, dirs)
	if err = gridvis.ExportPNG(pathOut, gridvis.Visualize(g)); err != nil {
		return errors.Wrapf(err, "writing %s", pathOut)
	}
	fmt.Printf("wrote %s\n", pathOut)
	return nil
}

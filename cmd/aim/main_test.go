package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"starsoldier/aim"
)

func TestPaletteIsDistinct(t *testing.T) {
	if len(palette) != aim.CodeCount {
		t.Fatalf("palette has %d colors, want %d", len(palette), aim.CodeCount)
	}
	seen := map[color.NRGBA]int{}
	for i, c := range palette {
		if j, dup := seen[c]; dup {
			t.Errorf("palette[%d] duplicates palette[%d]", i, j)
		}
		seen[c] = i
	}
	if palette[0] != (color.NRGBA{0xFF, 0x9D, 0x00, 0xFF}) {
		t.Errorf("palette[0] = %v", palette[0])
	}
	if palette[15] != (color.NRGBA{0xFF, 0x00, 0xF5, 0xFF}) {
		t.Errorf("palette[15] = %v", palette[15])
	}
}

func TestRunWritesAimMap(t *testing.T) {
	out := filepath.Join(t.TempDir(), "aim.png")
	if err := run(out, 2); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	if b := img.Bounds(); b.Dx() != screenW || b.Dy() != screenH {
		t.Fatalf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), screenW, screenH)
	}

	for _, p := range []aim.Position{shooter, {X: 0, Y: 0}, {X: 255, Y: 239}, {X: 128, Y: 119}, {X: 152, Y: 79}, {X: 0, Y: 119}} {
		want := palette[aim.Classify(shooter, p)]
		got := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
		if got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestRunReportsWriteError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no-such-dir", "aim.png")
	err := run(out, 1)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "writing "+out) {
		t.Errorf("error %q does not name the output file", err)
	}
	if _, ok := errors.Cause(err).(*os.PathError); !ok {
		t.Errorf("cause of %q is %T, want *os.PathError", err, errors.Cause(err))
	}
}

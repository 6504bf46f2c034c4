// Package rom loads Star Soldier iNES images and exposes fixed ranges of the
// program ROM.
package rom

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

const (
	headerSize = 0x10
	PRGSize    = 0x8000
	CHRSize    = 0x8000

	// ImageSize is the only iNES file size accepted.
	ImageSize = headerSize + PRGSize + CHRSize
)

var inesMagic = []byte("NES\x1A")

var (
	ErrSizeMismatch  = errors.New("iNES ROM size mismatch")
	ErrMagicNotFound = errors.New("iNES magic not found")
)

type ROM struct {
	PRG [PRGSize]byte
}

// FromINES validates the image size and magic and copies out the PRG bank.
func FromINES(ines []byte) (*ROM, error) {
	if len(ines) != ImageSize {
		return nil, errors.Wrapf(ErrSizeMismatch, "got %d bytes, want %d", len(ines), ImageSize)
	}
	if !bytes.HasPrefix(ines, inesMagic) {
		return nil, ErrMagicNotFound
	}

	r := &ROM{}
	copy(r.PRG[:], ines[headerSize:headerSize+PRGSize])
	return r, nil
}

func Load(path string) (*ROM, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading ROM")
	}

	r, err := FromINES(b)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return r, nil
}

// Bytes returns n bytes of PRG starting at offset. The offsets are properties
// of the image being analyzed, so a range outside PRG panics.
func (r *ROM) Bytes(offset, n int) []byte {
	if offset < 0 || n < 0 || offset+n > PRGSize {
		panic(errors.Errorf("rom: PRG range $%04X+$%X out of bounds", offset, n))
	}
	return r.PRG[offset : offset+n]
}

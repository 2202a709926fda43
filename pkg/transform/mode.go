package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saylorsolutions/xorimg/pkg/outpath"
)

var (
	ErrInvalidMode      = errors.New("invalid mode")
	ErrInvalidDirection = errors.New("invalid direction")
)

// Mode selects how a file is broken into units for screening.
type Mode int

const (
	// ByteMode screens every byte of the file, without interpreting it.
	ByteMode Mode = iota
	// PixelMode decodes the file as an image and screens every RGB channel sample.
	PixelMode
)

func (m Mode) String() string {
	switch m {
	case ByteMode:
		return "bytes"
	case PixelMode:
		return "pixel"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "bytes" or "pixel", and a few forgiving variations of each.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "byte", "bytes", "b":
		return ByteMode, nil
	case "pixel", "pixels", "p":
		return PixelMode, nil
	default:
		return 0, fmt.Errorf("%w: '%s', expected 'bytes' or 'pixel'", ErrInvalidMode, s)
	}
}

// Direction is whether a person is hiding or recovering a file.
// Screening is symmetric, so this only affects the output file name and messages.
type Direction string

const (
	Encrypt Direction = "encrypt"
	Decrypt Direction = "decrypt"
)

// ParseDirection accepts the full word or its first letter, ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "encrypt":
		return Encrypt, nil
	case "d", "decrypt":
		return Decrypt, nil
	default:
		return "", fmt.Errorf("%w: '%s', expected 'encrypt' or 'decrypt'", ErrInvalidDirection, s)
	}
}

// Action maps a Mode and Direction to the outpath.Action used to name output.
func (m Mode) Action(dir Direction) (outpath.Action, error) {
	var action outpath.Action
	switch dir {
	case Encrypt:
		action = outpath.Encrypt
	case Decrypt:
		action = outpath.Decrypt
	default:
		return "", fmt.Errorf("%w: '%s'", ErrInvalidDirection, dir)
	}
	switch m {
	case ByteMode:
		return action, nil
	case PixelMode:
		return "pixel_" + action, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}
}

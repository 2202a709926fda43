// Package outpath derives output file names that sit next to the input without overwriting it.
package outpath

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAction = errors.New("invalid action")
)

// Action tags what was done to a file, and selects the suffix added to its name.
type Action string

const (
	Encrypt      Action = "encrypt"
	Decrypt      Action = "decrypt"
	PixelEncrypt Action = "pixel_encrypt"
	PixelDecrypt Action = "pixel_decrypt"
)

var suffixes = map[Action]string{
	Encrypt:      "encrypted",
	Decrypt:      "decrypted",
	PixelEncrypt: "pixel_encrypted",
	PixelDecrypt: "pixel_decrypted",
}

// Suffix returns the name suffix for the Action, or false if the Action isn't known.
func (a Action) Suffix() (string, bool) {
	s, ok := suffixes[a]
	return s, ok
}

func (a Action) Valid() bool {
	_, ok := suffixes[a]
	return ok
}

// Derive inserts "_" and the Action's suffix between the stem and extension of input.
//
//	Derive("a/b.png", Encrypt) == "a/b_encrypted.png"
//	Derive("img", Decrypt) == "img_decrypted"
func Derive(input string, action Action) (string, error) {
	suffix, ok := action.Suffix()
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrInvalidAction, action)
	}
	stem, ext := SplitExt(input)
	return stem + "_" + suffix + ext, nil
}

// SplitExt splits path into a stem and an extension, such that stem+ext == path.
// The extension starts at the last dot of the final path element, but leading dots of that element never start one.
// This means ".bashrc" has no extension, while ".bashrc.bak" has ".bak".
func SplitExt(path string) (stem, ext string) {
	base := path[lastSep(path)+1:]
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 {
		return path, ""
	}
	if strings.TrimLeft(base[:dot], ".") == "" {
		return path, ""
	}
	split := len(path) - len(base) + dot
	return path[:split], path[split:]
}

func lastSep(path string) int {
	return strings.LastIndexAny(path, separators)
}

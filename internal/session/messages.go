package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saylorsolutions/xorimg/pkg/outpath"
	"github.com/saylorsolutions/xorimg/pkg/transform"
	"github.com/saylorsolutions/xorimg/pkg/xor"
)

// Banner is the heading shown when a session starts.
func Banner(mode transform.Mode) string {
	if mode == transform.PixelMode {
		return "Image Pixel Manipulation Encryption/Decryption Tool"
	}
	return "Image Encryption/Decryption Tool"
}

func subject(mode transform.Mode) string {
	if mode == transform.PixelMode {
		return "an image (pixels)"
	}
	return "an image"
}

func label(req transform.Request) string {
	word := "encrypted"
	if req.Direction == transform.Decrypt {
		word = "decrypted"
	}
	if req.Mode == transform.PixelMode {
		return "Pixel-" + word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// FormatResult describes a successful screen for a person.
func FormatResult(req transform.Request, res *transform.Result) string {
	return fmt.Sprintf("%s image saved to %s", label(req), res.Output)
}

// FormatError describes a failed screen for a person.
func FormatError(req transform.Request, err error) string {
	var (
		decodeErr *transform.DecodeError
		encodeErr *transform.EncodeError
		what      = "image"
	)
	if req.Direction == transform.Decrypt {
		what = "encrypted image"
	}
	switch {
	case errors.Is(err, transform.ErrFileNotFound):
		if req.Direction == transform.Decrypt {
			return fmt.Sprintf("Error: Encrypted image file not found at %s", req.Source)
		}
		return fmt.Sprintf("Error: Image file not found at %s", req.Source)
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("Error loading %s: %v", what, decodeErr.Err)
	case errors.As(err, &encodeErr):
		return fmt.Sprintf("Error saving %s image: %v", strings.ToLower(label(req)), encodeErr.Err)
	case errors.Is(err, transform.ErrOverwrite):
		return fmt.Sprintf("Error: %v", err)
	case errors.Is(err, transform.ErrIO):
		return fmt.Sprintf("Error processing %s: %v", what, err)
	case errors.Is(err, xor.ErrInvalidKey):
		return "Invalid key. Please enter an integer."
	case errors.Is(err, outpath.ErrInvalidAction), errors.Is(err, transform.ErrInvalidDirection):
		return "Invalid action. Please enter 'e' for encrypt, 'd' for decrypt, or 'q' to quit."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

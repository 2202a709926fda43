package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/saylorsolutions/xorimg/pkg/outpath"
)

const (
	DefaultJPEGQuality = 95
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Format names an encoder, using the same names that image.Decode reports.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var extFormats = map[string]Format{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".jpe":  JPEG,
	".gif":  GIF,
	".bmp":  BMP,
	".dib":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
}

// FormatForPath selects an encoder from the extension of path, ignoring case.
func FormatForPath(path string) (Format, error) {
	_, ext := outpath.SplitExt(path)
	f, ok := extFormats[strings.ToLower(ext)]
	if !ok {
		if len(ext) == 0 {
			return "", fmt.Errorf("%w: no file extension on '%s' to choose an encoder", ErrUnsupportedFormat, path)
		}
		return "", fmt.Errorf("%w: no encoder for extension '%s'", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// Decode reads any registered image format into a Grid.
// PNG, JPEG, GIF, BMP, TIFF, and WebP are registered.
// The returned format name is the one reported by image.Decode.
func Decode(r io.Reader) (*Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return FromImage(img), format, nil
}

type encodeParams struct {
	jpegQuality int
}

// EncodeOpt adjusts how a Grid is encoded.
// If any EncodeOpt returns an error, then encoding doesn't start and the error is returned.
type EncodeOpt = func(params *encodeParams) error

// JPEGQuality sets the quality used for the JPEG encoder, from 1 to 100 inclusive.
func JPEGQuality(quality int) EncodeOpt {
	return func(params *encodeParams) error {
		if quality < 1 || quality > 100 {
			return fmt.Errorf("JPEG quality %d out of range [1, 100]", quality)
		}
		params.jpegQuality = quality
		return nil
	}
}

// Encode writes the Grid to w in the given Format.
func Encode(w io.Writer, g *Grid, format Format, opts ...EncodeOpt) error {
	params := &encodeParams{
		jpegQuality: DefaultJPEGQuality,
	}
	for _, opt := range opts {
		if err := opt(params); err != nil {
			return err
		}
	}

	img := g.Image()
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: params.jpegQuality})
	case GIF:
		return gif.Encode(w, img, nil)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}
}

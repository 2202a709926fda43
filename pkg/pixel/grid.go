package pixel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/saylorsolutions/xorimg/pkg/xor"
)

// Channels is the number of samples stored per pixel.
const Channels = 3

// RGB is a single pixel in a Grid.
type RGB struct {
	R, G, B uint8
}

// Grid is a W x H image of RGB triples, stored row-major with interleaved samples.
type Grid struct {
	Width  int
	Height int
	// Pix holds R, G, B samples for each pixel, so len(Pix) == Width*Height*Channels.
	Pix []uint8
}

// NewGrid creates a black Grid with the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}, nil
}

// FromImage converts any image to a Grid, discarding alpha.
// Non-premultiplied colors keep their RGB values even when fully transparent.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := &Grid{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]uint8, b.Dx()*b.Dy()*Channels),
	}
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < g.Height; y++ {
			row := nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < g.Width; x++ {
				i := g.offset(x, y)
				copy(g.Pix[i:i+Channels], row[x*4:x*4+Channels])
			}
		}
		return g
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.offset(x, y)
			g.Pix[i], g.Pix[i+1], g.Pix[i+2] = straightRGB(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return g
}

// straightRGB drops alpha without premultiplying when the color model allows it.
func straightRGB(c color.Color) (r, g, b uint8) {
	switch c := c.(type) {
	case color.NRGBA:
		return c.R, c.G, c.B
	case color.NRGBA64:
		return uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8)
	default:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return n.R, n.G, n.B
	}
}

func (g *Grid) offset(x, y int) int {
	return (y*g.Width + x) * Channels
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the pixel at (x, y), or false if it's out of bounds.
func (g *Grid) At(x, y int) (RGB, bool) {
	if !g.inBounds(x, y) {
		return RGB{}, false
	}
	i := g.offset(x, y)
	return RGB{R: g.Pix[i], G: g.Pix[i+1], B: g.Pix[i+2]}, true
}

// Set replaces the pixel at (x, y). Out of bounds coordinates are ignored.
func (g *Grid) Set(x, y int, px RGB) {
	if !g.inBounds(x, y) {
		return
	}
	i := g.offset(x, y)
	g.Pix[i], g.Pix[i+1], g.Pix[i+2] = px.R, px.G, px.B
}

// Screen XORs every channel of every pixel with key, in place.
// Dimensions are never changed.
func (g *Grid) Screen(key xor.Key) {
	xor.Apply(g.Pix, key)
}

// Image returns an opaque image.NRGBA copy of the Grid, suitable for encoding.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.offset(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: g.Pix[i], G: g.Pix[i+1], B: g.Pix[i+2], A: 0xff})
		}
	}
	return img
}

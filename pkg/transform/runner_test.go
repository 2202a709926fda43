package transform

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylorsolutions/xorimg/pkg/pixel"
)

func newTestRunner(t *testing.T, opts ...RunnerOpt) *Runner {
	t.Helper()
	r, err := NewRunner(opts...)
	require.NoError(t, err)
	return r
}

func writePNG(t *testing.T, path string, px color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, px)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	require.NoError(t, png.Encode(f, img))
}

func readPixel(t *testing.T, path string) pixel.RGB {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	grid, _, err := pixel.Decode(f)
	require.NoError(t, err)
	px, ok := grid.At(0, 0)
	require.True(t, ok)
	return px
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunner_Bytes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(src, []byte{0x00, 0xFF, 0x10}, 0644))
	r := newTestRunner(t)

	res, err := r.Run(Request{Mode: ByteMode, Direction: Encrypt, Key: 5, Source: src})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data_encrypted.bin"), res.Output)
	assert.Equal(t, int64(3), res.Bytes)
	encrypted, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0xFA, 0x15}, encrypted)

	res, err = r.Run(Request{Mode: ByteMode, Direction: Decrypt, Key: 5, Source: res.Output})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data_encrypted_decrypted.bin"), res.Output)
	decrypted, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0x10}, decrypted)

	assert.ElementsMatch(t, []string{"data.bin", "data_encrypted.bin", "data_encrypted_decrypted.bin"}, dirNames(t, dir))
}

func TestRunner_BytesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(src, nil, 0644))

	res, err := newTestRunner(t).Run(Request{Mode: ByteMode, Direction: Encrypt, Key: 9, Source: src})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "empty_encrypted"), res.Output)
	data, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRunner_BytesProgress(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "big.dat")
	require.NoError(t, os.WriteFile(src, bytes.Repeat([]byte("abc"), 10_000), 0644))
	var progress bytes.Buffer

	res, err := newTestRunner(t, WithProgress(&progress)).Run(Request{Mode: ByteMode, Direction: Encrypt, Key: 1, Source: src})
	require.NoError(t, err)
	assert.Equal(t, int64(30_000), res.Bytes)
	assert.NotEmpty(t, progress.String())
}

func TestRunner_Pixel(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pic.png")
	writePNG(t, src, color.NRGBA{R: 10, G: 20, B: 30, A: 0xff})
	r := newTestRunner(t)

	res, err := r.Run(Request{Mode: PixelMode, Direction: Encrypt, Key: 255, Source: src})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pic_pixel_encrypted.png"), res.Output)
	assert.Equal(t, "png", res.Format)
	assert.Equal(t, 1, res.Width)
	assert.Equal(t, 1, res.Height)
	assert.Equal(t, pixel.RGB{R: 245, G: 235, B: 225}, readPixel(t, res.Output))

	res, err = r.Run(Request{Mode: PixelMode, Direction: Decrypt, Key: 255, Source: res.Output})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pic_pixel_encrypted_pixel_decrypted.png"), res.Output)
	assert.Equal(t, pixel.RGB{R: 10, G: 20, B: 30}, readPixel(t, res.Output))
}

func TestRunner_FileNotFound(t *testing.T) {
	for _, mode := range []Mode{ByteMode, PixelMode} {
		t.Run(mode.String(), func(t *testing.T) {
			dir := t.TempDir()
			_, err := newTestRunner(t).Run(Request{Mode: mode, Direction: Encrypt, Key: 5, Source: filepath.Join(dir, "missing.png")})
			assert.ErrorIs(t, err, ErrFileNotFound)
			assert.Empty(t, dirNames(t, dir))
		})
	}
}

func TestRunner_Directory(t *testing.T) {
	dir := t.TempDir()
	_, err := newTestRunner(t).Run(Request{Mode: ByteMode, Direction: Encrypt, Key: 5, Source: dir})
	assert.ErrorIs(t, err, ErrIO)
}

func TestRunner_DecodeError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "fake.png")
	require.NoError(t, os.WriteFile(src, []byte("not really a png"), 0644))

	_, err := newTestRunner(t).Run(Request{Mode: PixelMode, Direction: Encrypt, Key: 5, Source: src})
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr), "Expected a DecodeError, got %v", err)
	assert.Equal(t, src, decodeErr.Path)
	assert.Equal(t, []string{"fake.png"}, dirNames(t, dir))
}

func TestRunner_EncodeError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pic.png")
	writePNG(t, src, color.NRGBA{A: 0xff})

	_, err := newTestRunner(t).Run(Request{Mode: PixelMode, Direction: Encrypt, Key: 5, Source: src, Output: filepath.Join(dir, "out.webp")})
	var encodeErr *EncodeError
	require.True(t, errors.As(err, &encodeErr), "Expected an EncodeError, got %v", err)
	assert.ErrorIs(t, err, pixel.ErrUnsupportedFormat)
	assert.Equal(t, []string{"pic.png"}, dirNames(t, dir))
}

func TestRunner_OutputDirMissing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(src, []byte("abc"), 0644))

	_, err := newTestRunner(t).Run(Request{Mode: ByteMode, Direction: Encrypt, Key: 5, Source: src, Output: filepath.Join(dir, "nope", "out.bin")})
	assert.ErrorIs(t, err, ErrIO)
	assert.Equal(t, []string{"data.bin"}, dirNames(t, dir))
}

func TestRunner_Overwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(src, []byte("abc"), 0644))

	_, err := newTestRunner(t).Run(Request{Mode: ByteMode, Direction: Encrypt, Key: 5, Source: src, Output: src})
	assert.ErrorIs(t, err, ErrOverwrite)
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}

func TestRunner_ReplacesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.bin")
	out := filepath.Join(dir, "data_encrypted.bin")
	require.NoError(t, os.WriteFile(src, []byte{1, 2}, 0644))
	require.NoError(t, os.WriteFile(out, []byte("stale output that is longer"), 0644))

	_, err := newTestRunner(t).Run(Request{Mode: ByteMode, Direction: Encrypt, Key: 1, Source: src})
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 3}, data)
}

func TestNewRunner_Neg(t *testing.T) {
	_, err := NewRunner(WithJPEGQuality(0))
	assert.Error(t, err)
	_, err = NewRunner(WithLogger(nil))
	assert.Error(t, err)
}

func TestRequest_OutputPath(t *testing.T) {
	out, err := Request{Mode: PixelMode, Direction: Encrypt, Source: "photo.jpg"}.OutputPath()
	require.NoError(t, err)
	assert.Equal(t, "photo_pixel_encrypted.jpg", out)

	out, err = Request{Mode: ByteMode, Direction: Encrypt, Source: "photo.jpg"}.OutputPath()
	require.NoError(t, err)
	assert.Equal(t, "photo_encrypted.jpg", out)

	_, err = Request{Mode: ByteMode, Direction: "sideways", Source: "photo.jpg"}.OutputPath()
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

package transform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/schollz/progressbar/v3"

	"github.com/saylorsolutions/xorimg/pkg/outpath"
	"github.com/saylorsolutions/xorimg/pkg/pixel"
	"github.com/saylorsolutions/xorimg/pkg/xor"
)

const outputPerm fs.FileMode = 0644

// Request describes a single screening operation.
type Request struct {
	Mode      Mode
	Direction Direction
	Key       xor.Key
	Source    string
	// Output overrides the derived output path when set.
	Output string
}

// Result reports what a successful Request produced.
type Result struct {
	Output string
	Format string
	Bytes  int64
	Width  int
	Height int
}

// Runner executes Requests, writing each result next to its source.
// Output is staged in a temporary file and only renamed into place once it's complete.
type Runner struct {
	logger      hclog.Logger
	jpegQuality int
	progress    io.Writer
}

// RunnerOpt operates on a Runner in a standard and predictable way, and is used in NewRunner.
type RunnerOpt = func(r *Runner) error

// WithLogger sets the logger used for diagnostics. The default discards everything.
func WithLogger(logger hclog.Logger) RunnerOpt {
	return func(r *Runner) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		r.logger = logger
		return nil
	}
}

// WithJPEGQuality sets the quality used when pixel screened output is written as JPEG.
func WithJPEGQuality(quality int) RunnerOpt {
	return func(r *Runner) error {
		if quality < 1 || quality > 100 {
			return fmt.Errorf("JPEG quality %d out of range [1, 100]", quality)
		}
		r.jpegQuality = quality
		return nil
	}
}

// WithProgress renders a progress bar to out while byte screening.
func WithProgress(out io.Writer) RunnerOpt {
	return func(r *Runner) error {
		r.progress = out
		return nil
	}
}

// NewRunner creates a Runner using the options provided as zero or more RunnerOpt.
func NewRunner(opts ...RunnerOpt) (*Runner, error) {
	r := &Runner{
		logger:      hclog.NewNullLogger(),
		jpegQuality: pixel.DefaultJPEGQuality,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// OutputPath returns where the Request's output will be written.
func (req Request) OutputPath() (string, error) {
	if len(req.Output) > 0 {
		return req.Output, nil
	}
	action, err := req.Mode.Action(req.Direction)
	if err != nil {
		return "", err
	}
	return outpath.Derive(req.Source, action)
}

// Run executes the Request.
// If anything fails, no output file is left behind.
func (r *Runner) Run(req Request) (*Result, error) {
	output, err := req.OutputPath()
	if err != nil {
		return nil, err
	}
	logger := r.logger.With("mode", req.Mode.String(), "source", req.Source, "output", output)

	info, err := os.Stat(req.Source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrFileNotFound, req.Source)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: '%s' is a directory", ErrIO, req.Source)
	}
	if err := checkOverwrite(req.Source, output); err != nil {
		return nil, err
	}

	logger.Debug("Starting screen", "direction", string(req.Direction), "size", info.Size())
	var res *Result
	switch req.Mode {
	case ByteMode:
		res, err = r.screenBytes(req, output, info.Size())
	case PixelMode:
		res, err = r.screenPixels(req, output)
	default:
		err = fmt.Errorf("%w: %s", ErrInvalidMode, req.Mode)
	}
	if err != nil {
		logger.Debug("Screen failed", "error", err)
		return nil, err
	}
	logger.Info("Screen complete", "bytes", res.Bytes, "width", res.Width, "height", res.Height)
	return res, nil
}

func checkOverwrite(source, output string) error {
	srcAbs, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	outAbs, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if srcAbs == outAbs {
		return fmt.Errorf("%w: '%s'", ErrOverwrite, source)
	}
	srcInfo, srcErr := os.Stat(srcAbs)
	outInfo, outErr := os.Stat(outAbs)
	if srcErr == nil && outErr == nil && os.SameFile(srcInfo, outInfo) {
		return fmt.Errorf("%w: '%s' is the same file as '%s'", ErrOverwrite, output, source)
	}
	return nil
}

func (r *Runner) screenBytes(req Request, output string, size int64) (*Result, error) {
	src, err := openSource(req.Source)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = src.Close()
	}()

	var n int64
	err = writeAtomic(output, func(dst io.Writer) error {
		var bar *progressbar.ProgressBar
		if r.progress != nil {
			bar = newProgressBar(r.progress, size, string(req.Direction)+"ing "+filepath.Base(req.Source))
			dst = io.MultiWriter(dst, bar)
		}
		var err error
		n, err = io.Copy(xor.NewWriter(dst, req.Key), src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		if bar != nil {
			_ = bar.Finish()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Output: output,
		Bytes:  n,
	}, nil
}

func (r *Runner) screenPixels(req Request, output string) (*Result, error) {
	format, err := pixel.FormatForPath(output)
	if err != nil {
		return nil, &EncodeError{Path: output, Err: err}
	}

	src, err := openSource(req.Source)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = src.Close()
	}()
	grid, decodedAs, err := pixel.Decode(src)
	if err != nil {
		return nil, &DecodeError{Path: req.Source, Err: err}
	}
	r.logger.Debug("Decoded image", "format", decodedAs, "width", grid.Width, "height", grid.Height)

	grid.Screen(req.Key)

	err = writeAtomic(output, func(dst io.Writer) error {
		if err := pixel.Encode(dst, grid, format, pixel.JPEGQuality(r.jpegQuality)); err != nil {
			return &EncodeError{Path: output, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Output: output,
		Format: string(format),
		Width:  grid.Width,
		Height: grid.Height,
	}, nil
}

func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return f, nil
}

// writeAtomic stages output in a temp file in the same directory, and renames it over target only if fill succeeds.
func writeAtomic(target string, fill func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(target)
	if len(dir) == 0 {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create output in '%s': %w", ErrIO, dir, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := fill(tmp); err != nil {
		return err
	}
	if err := tmp.Chmod(outputPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to flush output: %w", ErrIO, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("%w: failed to move output into place: %w", ErrIO, err)
	}
	return nil
}

func newProgressBar(out io.Writer, size int64, desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(out)
		}),
	)
}

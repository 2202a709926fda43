package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/saylorsolutions/xorimg/cmd/internal"
	"github.com/saylorsolutions/xorimg/internal/config"
	"github.com/saylorsolutions/xorimg/internal/logging"
	"github.com/saylorsolutions/xorimg/internal/session"
	"github.com/saylorsolutions/xorimg/internal/tui"
	"github.com/saylorsolutions/xorimg/pkg/transform"
)

var version = "dev"

func main() {
	cfg := config.Default()
	if err := cfg.LoadEnv(os.LookupEnv); err != nil {
		internal.Fatal("Error reading environment: %v", err)
	}
	flags := cfg.FlagSet("xorimg")
	flags.Usage = func() {
		fmt.Print(usage(flags))
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if cfg.Help {
		flags.Usage()
		return
	}
	if cfg.Version {
		internal.Echo("xorimg %s", version)
		return
	}
	if err := cfg.Validate(); err != nil {
		internal.Fatal("%v", err)
	}

	logger := logging.NewLogger("xorimg", cfg.LogLevel, cfg.JSONLog, os.Stderr)
	runnerOpts := []transform.RunnerOpt{
		transform.WithLogger(logger),
		transform.WithJPEGQuality(cfg.JPEGQuality),
	}
	if cfg.Progress {
		runnerOpts = append(runnerOpts, transform.WithProgress(os.Stderr))
	}
	runner, err := transform.NewRunner(runnerOpts...)
	if err != nil {
		internal.Fatal("Failed to set up: %v", err)
	}

	switch {
	case cfg.TUI:
		if err := tui.Run(runner, cfg.Mode, logger.Named("tui")); err != nil {
			internal.Fatal("Terminal UI failed: %v", err)
		}
	case flags.NArg() == 0:
		if cfg.RandomKey || len(cfg.Output) > 0 {
			internal.Fatal("--random-key and --out require ACTION and FILE arguments")
		}
		opts := []session.Opt{
			session.WithMode(cfg.Mode),
			session.WithLogger(logger.Named("session")),
		}
		if cfg.HideKey {
			fd := int(os.Stdin.Fd())
			if term.IsTerminal(fd) {
				opts = append(opts, session.WithKeyReader(hiddenKeyReader(fd)))
			} else {
				logger.Warn("Ignoring --hide-key since stdin is not a terminal")
			}
		}
		s, err := session.New(os.Stdin, os.Stdout, runner, opts...)
		if err != nil {
			internal.Fatal("Failed to start session: %v", err)
		}
		if err := s.Run(); err != nil {
			internal.Fatal("%v", err)
		}
	default:
		job, err := parseArgs(flags.Args(), cfg.RandomKey)
		if err != nil {
			internal.Fatal("%v", err)
		}
		req := job.request(cfg.Mode, cfg.Output)
		if job.generated {
			internal.Warn("Generated key: %d", int(req.Key))
		}
		res, err := runner.Run(req)
		if err != nil {
			internal.Fatal("%s", session.FormatError(req, err))
		}
		internal.Echo("%s", session.FormatResult(req, res))
	}
}

func hiddenKeyReader(fd int) session.KeyReader {
	return func() (string, error) {
		key, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(key), nil
	}
}

func usage(flags *flag.FlagSet) string {
	return fmt.Sprintf(`
xorimg scrambles a file by XORing it with a single byte key, and recovers it by doing the same thing again with the same key.
Output is written next to the input with a suffix added before the extension, so photo.jpg becomes photo_encrypted.jpg.

In bytes mode (the default), every byte of the file is screened, so any file type works, but images won't open afterward.
In pixel mode, the image is decoded and every R, G, and B sample is screened, so the output is still a viewable (scrambled) image.
Pixel mode reads PNG, JPEG, GIF, BMP, TIFF, and WebP, and writes the format matching the output extension.

USAGE:  xorimg [FLAGS]                      Prompt for actions, keys, and files until 'q' is entered.
        xorimg [FLAGS] ACTION KEY FILE      Screen a single file and exit.
        xorimg [FLAGS] -r encrypt FILE      Encrypt a single file with a random key, and print the key.

ARGS:
    ACTION is either encrypt (e) or decrypt (d).
    KEY is an integer. Only the low 8 bits are used, so 261 is the same as 5, and -1 is the same as 255.
    FILE is the input file.

FLAGS:
%s
ENVIRONMENT:
    %s, %s, %s, and %s set defaults for the matching flags.

SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
With only 256 possible keys, anyone can recover the original by trying them all.
Pixel screened JPEG and GIF output is lossy, so decrypting it will only approximate the original. Use PNG, BMP, or TIFF to round trip exactly.
WebP can be read but not written, so pixel screening a .webp file needs --out with one of those extensions.
`, flags.FlagUsages(), config.EnvMode, config.EnvJPEGQuality, config.EnvLogLevel, config.EnvJSONLog)
}

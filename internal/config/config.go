package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/saylorsolutions/xorimg/internal/logging"
	"github.com/saylorsolutions/xorimg/pkg/pixel"
	"github.com/saylorsolutions/xorimg/pkg/transform"
)

const (
	EnvMode        = "XORIMG_MODE"
	EnvLogLevel    = "XORIMG_LOG_LEVEL"
	EnvJSONLog     = "XORIMG_JSON_LOG"
	EnvJPEGQuality = "XORIMG_JPEG_QUALITY"

	DefaultLogLevel = "warn"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is everything that can be set with environment variables or flags.
// Precedence is flags, then environment, then defaults.
type Config struct {
	Mode        transform.Mode
	LogLevel    string
	JSONLog     bool
	JPEGQuality int
	HideKey     bool
	Progress    bool
	TUI         bool
	RandomKey   bool
	Output      string
	Help        bool
	Version     bool
}

// Default returns a Config with byte screening and warn level logging.
func Default() *Config {
	return &Config{
		Mode:        transform.ByteMode,
		LogLevel:    DefaultLogLevel,
		JPEGQuality: pixel.DefaultJPEGQuality,
	}
}

// LoadEnv applies XORIMG_* variables found with lookup, which is usually os.LookupEnv.
func (c *Config) LoadEnv(lookup func(string) (string, bool)) error {
	if val, ok := lookup(EnvMode); ok && len(val) > 0 {
		mode, err := transform.ParseMode(val)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvMode, err)
		}
		c.Mode = mode
	}
	if val, ok := lookup(EnvLogLevel); ok && len(val) > 0 {
		c.LogLevel = val
	}
	if val, ok := lookup(EnvJSONLog); ok {
		c.JSONLog = val == "1" || strings.EqualFold(val, "true")
	}
	if val, ok := lookup(EnvJPEGQuality); ok && len(val) > 0 {
		q, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %w", ErrInvalidConfig, EnvJPEGQuality, err)
		}
		c.JPEGQuality = q
	}
	return nil
}

// FlagSet binds a new pflag.FlagSet to the Config, using current values as defaults.
// Parsing errors are returned rather than exiting.
func (c *Config) FlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.BoolVarP(&c.Help, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&c.Version, "version", false, "Prints the version and exits.")
	flags.VarP((*modeValue)(&c.Mode), "mode", "m", "Screening mode, either 'bytes' to XOR raw file bytes, or 'pixel' to XOR decoded RGB samples.")
	flags.BoolVarP(&c.TUI, "tui", "t", c.TUI, "Use a terminal UI form instead of line prompts.")
	flags.BoolVar(&c.HideKey, "hide-key", c.HideKey, "Don't echo the key while it's typed at an interactive terminal.")
	flags.BoolVarP(&c.Progress, "progress", "P", c.Progress, "Show a progress bar on stderr while byte screening. Not available with --tui.")
	flags.BoolVarP(&c.RandomKey, "random-key", "r", c.RandomKey, "Generate and print a random key instead of taking a KEY argument. Only valid for encrypt.")
	flags.StringVarP(&c.Output, "out", "o", c.Output, "Write output to this path instead of deriving one from FILE. Only valid with positional arguments.")
	flags.IntVarP(&c.JPEGQuality, "jpeg-quality", "q", c.JPEGQuality, "Quality (1-100) used when pixel screened output is written as JPEG.")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Diagnostic log level: trace, debug, info, warn, error, or off.")
	flags.BoolVar(&c.JSONLog, "json-log", c.JSONLog, "Emit diagnostic logs as JSON.")
	return flags
}

// Validate checks values that flags and environment parsing can't.
func (c *Config) Validate() error {
	if c.Mode != transform.ByteMode && c.Mode != transform.PixelMode {
		return fmt.Errorf("%w: unknown mode %s", ErrInvalidConfig, c.Mode)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: JPEG quality %d out of range [1, 100]", ErrInvalidConfig, c.JPEGQuality)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log level '%s'", ErrInvalidConfig, c.LogLevel)
	}
	if c.TUI && (c.RandomKey || len(c.Output) > 0) {
		return fmt.Errorf("%w: --random-key and --out can't be used with --tui", ErrInvalidConfig)
	}
	if c.TUI && c.Progress {
		return fmt.Errorf("%w: --progress can't be used with --tui", ErrInvalidConfig)
	}
	return nil
}

var _ flag.Value = (*modeValue)(nil)

type modeValue transform.Mode

func (m *modeValue) String() string {
	return transform.Mode(*m).String()
}

func (m *modeValue) Set(s string) error {
	mode, err := transform.ParseMode(s)
	if err != nil {
		return err
	}
	*m = modeValue(mode)
	return nil
}

func (m *modeValue) Type() string {
	return "mode"
}

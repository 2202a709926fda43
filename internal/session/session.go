package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/saylorsolutions/xorimg/pkg/transform"
	"github.com/saylorsolutions/xorimg/pkg/xor"
)

// KeyReader reads a key entry after its prompt has been shown, for example with terminal echo disabled.
type KeyReader = func() (string, error)

// Session is a line oriented prompt loop, reading requests from in and reporting to out.
// Nothing carries over between iterations.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	runner  *transform.Runner
	mode    transform.Mode
	logger  hclog.Logger
	readKey KeyReader
}

// Opt operates on a Session in a standard and predictable way, and is used in New.
type Opt = func(s *Session) error

// WithMode sets whether files are screened byte-wise or pixel-wise. The default is transform.ByteMode.
func WithMode(mode transform.Mode) Opt {
	return func(s *Session) error {
		if _, err := mode.Action(transform.Encrypt); err != nil {
			return err
		}
		s.mode = mode
		return nil
	}
}

func WithLogger(logger hclog.Logger) Opt {
	return func(s *Session) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		s.logger = logger
		return nil
	}
}

// WithKeyReader replaces reading the key from the input stream.
func WithKeyReader(readKey KeyReader) Opt {
	return func(s *Session) error {
		s.readKey = readKey
		return nil
	}
}

func New(in io.Reader, out io.Writer, runner *transform.Runner, opts ...Opt) (*Session, error) {
	if runner == nil {
		return nil, errors.New("nil runner")
	}
	s := &Session{
		in:     bufio.NewReader(in),
		out:    out,
		runner: runner,
		mode:   transform.ByteMode,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Run prompts until the user quits or input ends.
// An error is only returned if input can't be read.
func (s *Session) Run() error {
	s.printf("%s\n\n", Banner(s.mode))
	for {
		done, err := s.step()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.printf("\n")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		if done {
			return nil
		}
	}
}

func (s *Session) step() (done bool, err error) {
	s.printf("Do you want to (e)ncrypt or (d)ecrypt %s? (q) to quit: ", subject(s.mode))
	line, err := s.readLine()
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "q" || answer == "quit" {
		return true, nil
	}
	dir, err := transform.ParseDirection(answer)
	if err != nil {
		s.logger.Debug("Rejected action", "input", answer)
		s.printf("Invalid action. Please enter 'e' for encrypt, 'd' for decrypt, or 'q' to quit.\n")
		return false, nil
	}

	s.printf("Enter the encryption key (an integer): ")
	keyText, err := s.keyLine()
	if err != nil {
		return false, err
	}
	key, err := xor.ParseKey(keyText)
	if err != nil {
		s.logger.Debug("Rejected key", "error", err)
		s.printf("Invalid key. Please enter an integer.\n")
		return false, nil
	}

	if dir == transform.Encrypt {
		s.printf("Enter the path to the image file: ")
	} else {
		s.printf("Enter the path to the encrypted image file: ")
	}
	path, err := s.readLine()
	if err != nil {
		return false, err
	}

	req := transform.Request{
		Mode:      s.mode,
		Direction: dir,
		Key:       key,
		Source:    strings.TrimSpace(path),
	}
	res, err := s.runner.Run(req)
	if err != nil {
		s.printf("%s\n", FormatError(req, err))
		return false, nil
	}
	s.printf("%s\n", FormatResult(req, res))
	return false, nil
}

func (s *Session) keyLine() (string, error) {
	if s.readKey != nil {
		return s.readKey()
	}
	return s.readLine()
}

// readLine returns the next line without its terminator.
// A final line without a newline is still returned, and io.EOF comes on the next call.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

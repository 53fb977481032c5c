package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrInterrupt is returned when the operator presses Ctrl-C at a prompt.
var ErrInterrupt = errors.New("interrupted")

// Reader reads operator input one line at a time. Both methods return io.EOF
// once input is exhausted.
type Reader interface {
	ReadLine(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Close() error
}

// Options configure Open.
type Options struct {
	// HistoryFile persists terminal history; empty disables it
	HistoryFile string

	// Completions are offered on tab in terminal mode
	Completions []string
}

// Open returns a Terminal when stdin is a terminal and a Stream over
// stdin/stdout otherwise.
func Open(opts Options) (Reader, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return NewStream(os.Stdin, os.Stdout), nil
	}

	return NewTerminal(opts)
}

// Stream reads lines from an io.Reader and echoes prompts to an io.Writer.
type Stream struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStream creates a Stream reading from r and writing prompts to w.
func NewStream(r io.Reader, w io.Writer) *Stream {
	return &Stream{in: bufio.NewReader(r), out: w}
}

// ReadLine writes prompt and returns the next line without its line ending.
// A final line without a newline is returned before io.EOF.
func (s *Stream) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(s.out, prompt)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword reads a line like ReadLine. Streams are not terminals, so there
// is no echo to suppress.
func (s *Stream) ReadPassword(prompt string) (string, error) {
	return s.ReadLine(prompt)
}

// Close is a no-op; the underlying reader is owned by the caller.
func (s *Stream) Close() error {
	return nil
}

// Terminal reads from an interactive terminal via readline.
type Terminal struct {
	rl *readline.Instance
}

// NewTerminal creates a readline-backed Reader.
func NewTerminal(opts Options) (*Terminal, error) {
	items := make([]readline.PrefixCompleterInterface, len(opts.Completions))
	for i, c := range opts.Completions {
		items[i] = readline.PcItem(c)
	}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     opts.HistoryFile,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize terminal")
	}

	return &Terminal{rl: rl}, nil
}

// ReadLine shows prompt and reads one line with history and completion.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)

	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	if err != nil {
		return "", err
	}

	return line, nil
}

// ReadPassword shows prompt and reads a line without echoing it.
func (t *Terminal) ReadPassword(prompt string) (string, error) {
	pw, err := t.rl.ReadPassword(prompt)
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	if err != nil {
		return "", err
	}

	return string(pw), nil
}

// Close restores the terminal and flushes history.
func (t *Terminal) Close() error {
	return t.rl.Close()
}

package testutil

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pseudomuto/metaexplorer/pkg/prompt"
)

// Step is one scripted answer. Err, when set, is returned instead of Line.
type Step struct {
	Line string
	Err  error
}

// ScriptedReader is a prompt.Reader replaying Steps. Prompts are recorded in
// Prompts and echoed to Out when set. Once the script runs out every read
// returns io.EOF.
type ScriptedReader struct {
	Steps   []Step
	Prompts []string
	Out     io.Writer
	Closed  bool
}

var _ prompt.Reader = (*ScriptedReader)(nil)

// Script builds a ScriptedReader answering each prompt with the next line.
func Script(lines ...string) *ScriptedReader {
	steps := make([]Step, len(lines))
	for i, l := range lines {
		steps[i] = Step{Line: l}
	}

	return &ScriptedReader{Steps: steps}
}

// Then appends a step returning err.
func (s *ScriptedReader) Then(err error) *ScriptedReader {
	s.Steps = append(s.Steps, Step{Err: err})
	return s
}

// And appends answer lines.
func (s *ScriptedReader) And(lines ...string) *ScriptedReader {
	for _, l := range lines {
		s.Steps = append(s.Steps, Step{Line: l})
	}

	return s
}

// Interrupt appends a Ctrl-C.
func (s *ScriptedReader) Interrupt() *ScriptedReader {
	return s.Then(prompt.ErrInterrupt)
}

func (s *ScriptedReader) ReadLine(p string) (string, error) {
	s.Prompts = append(s.Prompts, p)
	if s.Out != nil {
		_, _ = fmt.Fprint(s.Out, p)
	}

	if len(s.Steps) == 0 {
		return "", io.EOF
	}

	step := s.Steps[0]
	s.Steps = s.Steps[1:]

	return step.Line, step.Err
}

func (s *ScriptedReader) ReadPassword(p string) (string, error) {
	return s.ReadLine(p)
}

func (s *ScriptedReader) Close() error {
	s.Closed = true
	return nil
}

// Session pairs a ScriptedReader with a buffer capturing output.
type Session struct {
	*ScriptedReader
	Output bytes.Buffer
}

// NewSession creates a Session answering prompts with lines. Prompts are
// echoed into Output.
func NewSession(lines ...string) *Session {
	return SessionFor(Script(lines...))
}

// SessionFor wraps an existing ScriptedReader in a Session.
func SessionFor(r *ScriptedReader) *Session {
	s := &Session{ScriptedReader: r}
	s.Out = &s.Output
	return s
}

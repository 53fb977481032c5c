package explorer

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
	"github.com/pseudomuto/metaexplorer/pkg/format"
	"github.com/pseudomuto/metaexplorer/pkg/prompt"
)

const (
	topHeading = "Select the object type you want to view:"
	topPrompt  = "Enter option number: "
	exitLabel  = "Exit"
)

// Session is the catalog connection used by an Explorer. *catalog.Client
// satisfies it.
type Session interface {
	Query(ctx context.Context, text string, binds map[string]any) (*catalog.Result, error)
	Close() error
}

// Explorer runs the interactive menus over one Session.
type Explorer struct {
	session Session
	dialect *catalog.Dialect
	in      prompt.Reader
	out     *format.Formatter
	logger  *slog.Logger
}

// New creates an Explorer. The Explorer takes ownership of session and closes
// it when Run returns.
func New(session Session, dialect *catalog.Dialect, in prompt.Reader, out io.Writer) *Explorer {
	return &Explorer{
		session: session,
		dialect: dialect,
		in:      in,
		out:     format.New(out),
		logger:  slog.Default(),
	}
}

// WithLogger sets the logger used for diagnostics.
func (e *Explorer) WithLogger(l *slog.Logger) *Explorer {
	e.logger = l
	return e
}

// Completions returns the words worth offering on tab: top-level entries and
// every detail option.
func Completions() []string {
	words := []string{}
	seen := map[string]bool{}
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}

	for _, c := range Categories {
		add(c.Label)
	}
	add(exitLabel)

	for _, c := range Categories {
		for _, o := range c.Options {
			add(o.Label)
		}
	}
	add(backLabel)

	return words
}

// Run shows the top-level menu until the operator exits or input ends. Every
// catalog error is reported inline; only a failure to read input is returned.
func (e *Explorer) Run(ctx context.Context) error {
	defer e.closeSession()

	labels := make([]string, 0, len(Categories)+1)
	for _, c := range Categories {
		labels = append(labels, c.Label)
	}
	labels = append(labels, exitLabel)

	for {
		e.out.Menu(topHeading, labels)

		line, err := e.in.ReadLine(topPrompt)
		if err != nil {
			if isEndOfInput(err) {
				e.out.Line("Exiting...")
				return nil
			}
			return errors.Wrap(err, "failed to read menu selection")
		}

		choice, err := prompt.ParseChoice(line)
		if err == nil && choice.Matches(len(labels), exitLabel, "quit") {
			e.out.Line("Exiting...")
			return nil
		}

		cat := matchCategory(choice, err)
		if cat == nil {
			e.logger.Debug("invalid top-level selection", "input", line)
			e.out.Line("Invalid selection.")
			e.out.Blank()
			continue
		}

		if err := e.browse(ctx, cat); err != nil {
			if errors.Is(err, io.EOF) {
				e.out.Line("Exiting...")
				return nil
			}
			return err
		}
	}
}

// browse lists one category, resolves the operator's pick and opens its
// detail menu. It returns io.EOF when input ends.
func (e *Explorer) browse(ctx context.Context, cat *Category) error {
	listing, err := e.ListObjects(ctx, cat.Kind)
	switch {
	case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrUnsupported):
		e.logger.Debug("category unavailable", "category", cat.Kind, "error", err)
		e.out.Blank()
		return nil
	case err != nil:
		e.logger.Debug("list query failed", "category", cat.Kind, "error", err)
		e.out.Line("Error listing %s: %v", cat.Plural, err)
		e.out.Blank()
		return nil
	case listing.Empty():
		e.out.Line("No %s found.", cat.Plural)
		e.out.Blank()
		return nil
	}

	e.out.Blank()
	line, err := e.in.ReadLine("Select a " + cat.Singular + " number: ")
	if err != nil {
		if errors.Is(err, prompt.ErrInterrupt) {
			return nil
		}
		return err
	}

	name, err := listing.Resolve(cat.Kind, line)
	if err != nil {
		e.logger.Debug("invalid object selection", "category", cat.Kind, "input", line, "error", err)
		e.out.Line("Invalid selection or error: %v", err)
		return nil
	}

	return e.OpenMenu(ctx, cat, name)
}

func (e *Explorer) closeSession() {
	if err := e.session.Close(); err != nil {
		e.logger.Warn("failed to close session", "error", err)
	}
}

func matchCategory(choice *prompt.Choice, parseErr error) *Category {
	if parseErr != nil {
		return nil
	}

	for i, c := range Categories {
		if choice.Matches(i+1, c.Label, c.Singular) {
			return c
		}
	}

	return nil
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, prompt.ErrInterrupt)
}

package explorer

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
	"github.com/pseudomuto/metaexplorer/pkg/prompt"
)

const menuPrompt = "Select metadata option: "

// OpenMenu runs the detail menu of cat for the object name until the operator
// picks Back or interrupts. It returns io.EOF when input ends.
func (e *Explorer) OpenMenu(ctx context.Context, cat *Category, name string) error {
	labels := cat.MenuLabels()

	for {
		e.out.Blank()
		e.out.Line(" %s: %s", cat.Title, name)
		e.out.Menu("", labels)

		line, err := e.in.ReadLine(menuPrompt)
		if err != nil {
			if errors.Is(err, prompt.ErrInterrupt) {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return io.EOF
			}
			return errors.Wrap(err, "failed to read metadata option")
		}

		opt, back, err := matchOption(cat, line)
		if err != nil {
			e.logger.Debug("invalid metadata option", "category", cat.Kind, "input", line)
			e.out.Line("Invalid option.")
			continue
		}

		if back {
			return nil
		}

		if err := e.Describe(ctx, opt, name); err != nil {
			e.report(opt, name, err)
		}
	}
}

// Describe runs the query of opt for the object name and prints the result.
// It returns ErrUnsupported when the dialect has no query for the option and
// ErrNotFound when a record or text option has no row.
func (e *Explorer) Describe(ctx context.Context, opt Option, name string) error {
	query, ok := e.dialect.DetailQuery(opt.Detail)
	if !ok {
		return errors.Wrapf(ErrUnsupported, "%s on %s", opt.Detail, e.dialect.Name)
	}

	res, err := e.session.Query(ctx, query.Text, query.Binds(name))
	if err != nil {
		return err
	}

	switch opt.Shape {
	case ShapeRecord:
		if res.Empty() {
			return errors.Wrapf(ErrNotFound, "%s %s", opt.Detail, name)
		}
		e.out.Section(opt.Section)
		e.out.Record(query.Labels, res.Columns, res.Rows[0])
	case ShapeText:
		text := firstText(res)
		if text == "" {
			return errors.Wrapf(ErrNotFound, "%s %s", opt.Detail, name)
		}
		e.out.Section(opt.Section)
		e.out.Text(text)
	case ShapeList:
		e.out.Section(opt.Section)
		e.out.List(res.Strings())
	default:
		e.out.Section(opt.Section)
		e.out.Rows(res)
	}

	return nil
}

// report prints the outcome of a failed Describe. The menu stays open in
// every case.
func (e *Explorer) report(opt Option, name string, err error) {
	e.logger.Debug("metadata option failed", "detail", opt.Detail, "object", name, "error", err)

	switch {
	case errors.Is(err, ErrNotFound):
		e.out.Line("%s", opt.NotFound)
	case errors.Is(err, ErrUnsupported):
		e.out.Line("%s is not available for %s.", opt.Label, e.dialect.Title)
	default:
		e.out.Line("Query failed: %v", err)
	}
}

// matchOption resolves menu input to an option of cat, or back when the
// operator picked the trailing Back entry.
func matchOption(cat *Category, input string) (Option, bool, error) {
	choice, err := prompt.ParseChoice(input)
	if err != nil {
		return Option{}, false, errors.Wrap(ErrInvalidOption, err.Error())
	}

	for i, o := range cat.Options {
		if choice.Matches(i+1, o.names()...) {
			return o, false, nil
		}
	}

	if choice.Matches(len(cat.Options)+1, backLabel) {
		return Option{}, true, nil
	}

	return Option{}, false, errors.Wrapf(ErrInvalidOption, "%q", input)
}

func firstText(res *catalog.Result) string {
	if res.Empty() || len(res.Rows[0]) == 0 || res.Rows[0][0] == nil {
		return ""
	}

	return catalog.FormatValue(res.Rows[0][0])
}

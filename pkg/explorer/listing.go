package explorer

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
	"github.com/pseudomuto/metaexplorer/pkg/prompt"
)

// Listing is the numbered result of ListObjects.
type Listing struct {
	Kind  catalog.ObjectKind
	Names []string
}

// Empty reports whether the listing has no names.
func (l *Listing) Empty() bool {
	return l == nil || len(l.Names) == 0
}

// Resolve returns the name at the 1-based index typed by the operator while
// kind is the active category. A listing produced for another kind, or input
// that is not a number in [1, len(Names)], returns a *SelectionError.
func (l *Listing) Resolve(kind catalog.ObjectKind, input string) (string, error) {
	if l.Empty() {
		return "", &SelectionError{Reason: "nothing to select"}
	}

	if l.Kind != kind {
		return "", &SelectionError{Reason: fmt.Sprintf("listing of %s is stale for %s", l.Kind, kind)}
	}

	choice, err := prompt.ParseChoice(input)
	if err != nil {
		return "", &SelectionError{Reason: fmt.Sprintf("%q is not a number", input)}
	}

	n, ok := choice.Index()
	if !ok {
		return "", &SelectionError{Reason: fmt.Sprintf("%q is not a number", choice.Text())}
	}

	if n < 1 || n > len(l.Names) {
		return "", &SelectionError{Reason: fmt.Sprintf("%d is out of range [1, %d]", n, len(l.Names))}
	}

	return l.Names[n-1], nil
}

// ListObjects runs the dialect's list query for kind, prints each name as
// "i. NAME" and returns them in the same order.
//
// An unknown kind prints "Invalid type." and returns ErrInvalidCategory. A
// kind the dialect cannot list prints a notice and returns ErrUnsupported. An
// empty catalog returns an empty Listing and no error.
func (e *Explorer) ListObjects(ctx context.Context, kind catalog.ObjectKind) (*Listing, error) {
	listing := &Listing{Kind: kind}

	cat, ok := CategoryFor(kind)
	if !ok {
		e.out.Line("Invalid type.")
		return listing, errors.Wrapf(ErrInvalidCategory, "%s", kind)
	}

	query, ok := e.dialect.ListQuery(kind)
	if !ok {
		e.out.Line("%s are not available for %s.", cat.Label, e.dialect.Title)
		return listing, errors.Wrapf(ErrUnsupported, "%s on %s", kind, e.dialect.Name)
	}

	res, err := e.session.Query(ctx, query, nil)
	if err != nil {
		return listing, err
	}

	listing.Names = res.Strings()
	e.out.Listing(listing.Names)

	return listing, nil
}

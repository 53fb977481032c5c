package explorer

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidCategory is returned by ListObjects for an unknown object kind.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrUnsupported is returned when the active dialect has no query for a
	// category or detail option.
	ErrUnsupported = errors.New("not supported by dialect")

	// ErrInvalidSelection is returned when an object index is not a number in
	// range.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidOption is returned for detail menu input that matches no option.
	ErrInvalidOption = errors.New("invalid option")

	// ErrNotFound is returned when a record or text detail has no row.
	ErrNotFound = errors.New("not found")
)

// SelectionError describes why an object index was rejected. It matches
// ErrInvalidSelection.
type SelectionError struct {
	Reason string
}

func (e *SelectionError) Error() string { return e.Reason }

// Is reports whether target is ErrInvalidSelection.
func (e *SelectionError) Is(target error) bool { return target == ErrInvalidSelection }

// Package domain holds the error taxonomy shared by the checkout domain packages.
package domain

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrInvalidArgument is matched by every argument validation failure in the
// domain packages.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected constructor or operation argument.
type ArgumentError struct {
	Arg    string
	Reason string
}

// InvalidArgument returns an *ArgumentError for the named argument.
func InvalidArgument(arg, reason string) error {
	return &ArgumentError{Arg: arg, Reason: reason}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

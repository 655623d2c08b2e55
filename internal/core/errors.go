package core

import (
	"errors"
	"fmt"
)

// Exported variables.
var (
	ErrAlreadyGrouped = errors.New("argument already belongs to an exclusive group")
	ErrBadIdentifier  = errors.New("invalid argument identifier")
	ErrDuplicateArg   = errors.New("argument with the same flag or name already exists")
	ErrEmptyGroup     = errors.New("exclusive group has no members")
	ErrNilArg         = errors.New("argument is nil")
	ErrNoName         = errors.New("argument has no name")
)

// ArgError is a problem with a specific argument, reported by whatever
// parses the command line and rendered by an Output's Failure.
type ArgError struct {
	ID      string
	Message string
}

// NewArgError returns an ArgError for the argument id.
func NewArgError(id, message string) *ArgError {
	return &ArgError{ID: id, Message: message}
}

// ArgID returns the label identifying the offending argument.
func (e *ArgError) ArgID() string {
	if e.ID == "" {
		return "undefined"
	}

	return "Argument: " + e.ID
}

func (e *ArgError) Error() string {
	return e.ArgID() + " -- " + e.Message
}

// ExitError asks the process boundary to exit with Code.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

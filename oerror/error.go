package oerror

import "fmt"

// Error is an error raised by the season rules, mostly while validating settings.
type Error struct {
	Err string
}

// New formats a new Error.
func New(format string, args ...interface{}) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}

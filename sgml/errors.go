package sgml

import "errors"

var (
	// ErrHeadersWritten is returned by WriteHeaders when the header block
	// has already been written.
	ErrHeadersWritten = errors.New("sgml: headers have already been written")

	// ErrInvalidArgument is wrapped by every argument validation error.
	ErrInvalidArgument = errors.New("sgml: invalid argument")

	// ErrEmptyName and ErrEmptyValue match ErrInvalidArgument.
	ErrEmptyName  = &argError{msg: "name must not be empty"}
	ErrEmptyValue = &argError{msg: "value must not be empty"}
)

// argError is an argument error which matches ErrInvalidArgument under
// errors.Is.
type argError struct {
	msg string
}

func (e *argError) Error() string {
	return "sgml: " + e.msg
}

func (e *argError) Unwrap() error {
	return ErrInvalidArgument
}

package pkgerror

import "errors"

type Code int

const (
	CodeInternal Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeConflict
)

func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "INVALID_INPUT"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeConflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}

// Error is an expected failure whose message is safe to show to clients.
type Error struct {
	msg  string
	code Code
}

func NewBusiness(msg string, code Code) *Error {
	return &Error{msg: msg, code: code}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Code() Code { return e.code }

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

package apperrors

import "errors"

// Sentinels every domain error wraps. Handlers switch on these through KindOf.
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrBadRequest            = errors.New("bad request")
)

var (
	ErrCourseNotFound     = NotFound("course not found")
	ErrStudentNotFound    = NotFound("student not found")
	ErrInstructorNotFound = NotFound("instructor not found")

	ErrEnrollmentExists = &Error{Err: ErrResourceAlreadyExists, Message: "student is already enrolled in course"}

	ErrInvalidGPA = InvalidParam("gpa", "gpa must be a finite number")
)

// Kind is the client-facing category of an error.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// KindOf reports which sentinel err wraps. Anything unrecognised is KindInternal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrResourceNotFound):
		return KindNotFound
	case errors.Is(err, ErrBadRequest):
		return KindBadRequest
	case errors.Is(err, ErrResourceAlreadyExists):
		return KindConflict
	default:
		return KindInternal
	}
}

// Error is a domain error with a client-safe message. Param names the
// request parameter at fault, if any.
type Error struct {
	Err     error
	Message string
	Param   string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidParam returns a bad request error blaming the named parameter.
func InvalidParam(param, message string) error {
	return &Error{Err: ErrBadRequest, Message: message, Param: param}
}

// ParamOf returns the offending parameter carried by err, or "".
func ParamOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Param
	}
	return ""
}

// NotFound returns a not found error with a client-safe message.
func NotFound(message string) error {
	return &Error{Err: ErrResourceNotFound, Message: message}
}

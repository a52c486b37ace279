package constants

import "net/http"

// CodedError is an error carrying the HTTP status it should be rendered with.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound         = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized       = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden          = NewCodedError(http.StatusForbidden, "forbidden")
	ErrMissingAuthCookie  = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrInvalidAuthToken   = NewCodedError(http.StatusUnauthorized, "invalid auth token")
	ErrInvalidCredentials = NewCodedError(http.StatusUnauthorized, "invalid credentials")
	ErrEmailAlreadyTaken  = NewCodedError(http.StatusConflict, "email already taken")
	ErrUnknownCategory    = NewCodedError(http.StatusBadRequest, "unknown activity category")
	ErrNotOwner           = NewCodedError(http.StatusForbidden, "record belongs to another faculty")
)

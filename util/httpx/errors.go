package httpx

import (
	"errors"
	"fmt"
)

type ErrCode string

const (
	ErrTransport ErrCode = "TRANSPORT"
	ErrNotFound  ErrCode = "NOT_FOUND"
	ErrStatus    ErrCode = "HTTP_STATUS"
	ErrDecode    ErrCode = "DECODE"
	ErrEncode    ErrCode = "ENCODE"
)

// Error describes a failed request against the remote API.
type Error struct {
	code   ErrCode
	Method string
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.code {
	case ErrNotFound, ErrStatus:
		return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.Status)
	default:
		return fmt.Sprintf("%s %s: %s: %v", e.Method, e.URL, e.code, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }
func (e *Error) Code() ErrCode { return e.code }

// Code extracts the transport error code, or "" for other errors.
func Code(err error) ErrCode {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return ""
}

func IsNotFound(err error) bool { return Code(err) == ErrNotFound }

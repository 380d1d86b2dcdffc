package booksvc

import "errors"

type ErrCode string

const (
	ErrNoSelection ErrCode = "NO_SELECTION"
	ErrInvalidID   ErrCode = "INVALID_ID"
	ErrUnknownBook ErrCode = "UNKNOWN_BOOK"
)

var messages = map[ErrCode]string{
	ErrNoSelection: "no book selected or bookId missing",
	ErrInvalidID:   "book id must be a positive number",
	ErrUnknownBook: "book is not in the displayed list",
}

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return messages[e.code] }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

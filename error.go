package re2post

import (
	"fmt"

	"golang.org/x/xerrors"
)

type ErrorCode string

const (
	InputTooLong        ErrorCode = "InputTooLong"
	NestingTooDeep      ErrorCode = "NestingTooDeep"
	UnmatchedCloseParen ErrorCode = "UnmatchedCloseParen"
	UnmatchedOpenParen  ErrorCode = "UnmatchedOpenParen"
	EmptyAlternative    ErrorCode = "EmptyAlternative"
	DanglingQuantifier  ErrorCode = "DanglingQuantifier"
	MalformedPostfix    ErrorCode = "MalformedPostfix"
	InvalidOptions      ErrorCode = "InvalidOptions"
)

// Sentinels for errors.Is. Only the code is compared.
var (
	ErrInputTooLong        = &RegexError{Code: InputTooLong}
	ErrNestingTooDeep      = &RegexError{Code: NestingTooDeep}
	ErrUnmatchedCloseParen = &RegexError{Code: UnmatchedCloseParen}
	ErrUnmatchedOpenParen  = &RegexError{Code: UnmatchedOpenParen}
	ErrEmptyAlternative    = &RegexError{Code: EmptyAlternative}
	ErrDanglingQuantifier  = &RegexError{Code: DanglingQuantifier}
	ErrMalformedPostfix    = &RegexError{Code: MalformedPostfix}
	ErrInvalidOptions      = &RegexError{Code: InvalidOptions}
)

type RegexError struct {
	Code    ErrorCode
	Message string
	Pos     int
}

func (p *RegexError) Error() string {
	return fmt.Sprintf("code=%s, message=%s, pos=%d", p.Code, p.Message, p.Pos)
}

func (p *RegexError) Is(target error) bool {
	t, ok := target.(*RegexError)
	if !ok {
		return false
	}
	return t.Code == p.Code
}

func newError(code ErrorCode, pos int, format string, args ...interface{}) *RegexError {
	return &RegexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

// CodeOf returns the code of the first *RegexError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var regexErr *RegexError
	if xerrors.As(err, &regexErr) {
		return regexErr.Code, true
	}
	return "", false
}

// Package failure defines the tagged failure type raised by the service and
// storage layers and recovered by the HTTP layer into a response envelope.
//
// Every expected failure carries a [Kind]. Errors without a Kind are treated
// as [Unknown] by [KindOf].
package failure

import (
	"errors"
	"fmt"
)

// Kind discriminates failures. The zero value is Unknown.
type Kind uint8

const (
	Unknown Kind = iota
	AccountNotFound
	PasswordError
	AccountLocked
	Unauthorized
	UniqueViolation
	Business
)

var kindNames = [...]string{
	Unknown:         "unknown",
	AccountNotFound: "account_not_found",
	PasswordError:   "password_error",
	AccountLocked:   "account_locked",
	Unauthorized:    "unauthorized",
	UniqueViolation: "unique_violation",
	Business:        "business",
}

// String returns a snake_case name suitable for logs and metric labels.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Error is a failure tagged with its Kind.
//
// Message is the client-facing text for Business failures. Detail is the raw
// storage diagnostic for UniqueViolation failures (e.g. the PostgreSQL
// detail "Key (username)=(zhangsan) already exists.").
type Error struct {
	Kind    Kind
	Message string
	Detail  string

	cause error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error of the same Kind, so sentinel-style checks like
// errors.Is(err, failure.ErrAccountLocked) work on wrapped failures.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Detail == ""
}

// Sentinels for kinds that never carry extra data.
var (
	ErrAccountNotFound = &Error{Kind: AccountNotFound}
	ErrPasswordError   = &Error{Kind: PasswordError}
	ErrAccountLocked   = &Error{Kind: AccountLocked}
	ErrUnauthorized    = &Error{Kind: Unauthorized}
	ErrUniqueViolation = &Error{Kind: UniqueViolation}
)

// NewUniqueViolation wraps a duplicate-key error reported by storage.
func NewUniqueViolation(detail string, cause error) *Error {
	return &Error{Kind: UniqueViolation, Detail: detail, cause: cause}
}

// NewBusiness returns a business-rule failure whose message is shown to the
// client verbatim.
func NewBusiness(msg string) *Error {
	return &Error{Kind: Business, Message: msg}
}

// WrapBusiness is NewBusiness with an underlying cause kept for logging.
func WrapBusiness(msg string, cause error) *Error {
	return &Error{Kind: Business, Message: msg, cause: cause}
}

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.Kind
	}
	return Unknown
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var f *Error
	ok := errors.As(err, &f)
	return f, ok
}

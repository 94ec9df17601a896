package services

import "errors"

// Kind classifies a service failure. The routes layer maps kinds to
// HTTP status codes; services never format user-facing responses.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindNotAuthorized
	KindInvalidTransition
	KindAlreadyExists
	KindInvalidInput
	KindConflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func notAuthorized(msg string) *Error {
	return &Error{Kind: KindNotAuthorized, Message: msg}
}

func invalidTransition(msg string) *Error {
	return &Error{Kind: KindInvalidTransition, Message: msg}
}

func alreadyExists(msg string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: msg}
}

func invalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// KindOf extracts the failure kind from any error returned by a
// service operation.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

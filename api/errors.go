package api

// ErrorKind classifies an expected request failure.
type ErrorKind int

const (
	// KindUnreachable: no response was received (network down, timeout).
	KindUnreachable ErrorKind = iota
	// KindHTTP: the backend answered with an error status.
	KindHTTP
	// KindInvalidResponse: a success response carried an unexpected shape.
	KindInvalidResponse
)

// Error is an expected request failure. Message is the exact human-readable
// string the UI shows inline, so callers can surface it verbatim.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

const unreachableMessage = "Failed to reach backend"

func errUnreachable() *Error {
	return &Error{Kind: KindUnreachable, Message: unreachableMessage}
}

func errHTTP(status int, message string) *Error {
	return &Error{Kind: KindHTTP, Status: status, Message: message}
}

func errInvalidResponse(message string) *Error {
	return &Error{Kind: KindInvalidResponse, Message: message}
}

package apperr

import (
	"net/http"
)

// Kind classifies a request failure so callers can map it to a response
// without string matching.
type Kind int

const (
	// KindInvalidIdentifier is a malformed route id (pre-query rejection)
	KindInvalidIdentifier Kind = iota
	// KindInvalidSortColumn is a sort_by value outside the allow-list
	KindInvalidSortColumn
	// KindInvalidOrder is an order value other than asc/desc
	KindInvalidOrder
	// KindMissingField is an absent required body field
	KindMissingField
	// KindNotFound is a syntactically valid reference with no matching row
	KindNotFound
)

// Error is a typed failure carrying a client-facing message. Anything that is
// not an *Error surfaces to the client as a generic 500.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to a response status code
func (e *Error) HTTPStatus() int {
	if e.Kind == KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// InvalidIdentifier builds a malformed-id error
func InvalidIdentifier(message string) *Error {
	return &Error{Kind: KindInvalidIdentifier, Message: message}
}

// InvalidSortColumn builds a rejected sort_by error
func InvalidSortColumn(message string) *Error {
	return &Error{Kind: KindInvalidSortColumn, Message: message}
}

// InvalidOrder builds a rejected order error
func InvalidOrder(message string) *Error {
	return &Error{Kind: KindInvalidOrder, Message: message}
}

// MissingField builds an absent-required-field error
func MissingField(message string) *Error {
	return &Error{Kind: KindMissingField, Message: message}
}

// NotFound builds a resource-specific not-found error
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

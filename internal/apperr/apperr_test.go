package apperr

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"invalid identifier", InvalidIdentifier("Invalid article ID"), http.StatusBadRequest},
		{"invalid sort column", InvalidSortColumn("Invalid sort column query: x"), http.StatusBadRequest},
		{"invalid order", InvalidOrder("Invalid order query: x"), http.StatusBadRequest},
		{"missing field", MissingField("Missing fields"), http.StatusBadRequest},
		{"not found", NotFound("Article not found"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = NotFound("Topic not found")

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As should match *Error")
	}
	if appErr.Kind != KindNotFound {
		t.Errorf("Kind = %v, want KindNotFound", appErr.Kind)
	}
	if appErr.Error() != "Topic not found" {
		t.Errorf("Error() = %q", appErr.Error())
	}
}

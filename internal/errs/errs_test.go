package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"unprocessable", NewUnprocessableEntityError("dup", true), http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"too many", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"store failure", NewStoreFailureError("Something went wrong while saving"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "POKEMON_ID_MISMATCH"
	err := NewBadRequestError("mismatch", true, &code, []FieldError{{Field: "id", Error: "must match"}})

	assert.Equal(t, code, err.Code)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "id", err.Errors[0].Field)
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFoundError("Pokemon not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessage_DoesNotMutate(t *testing.T) {
	base := NewInternalServerError()
	custom := base.WithMessage("Something went wrong deleting pokemon")

	assert.Equal(t, http.StatusText(http.StatusInternalServerError), base.Message)
	assert.Equal(t, "Something went wrong deleting pokemon", custom.Message)
	assert.Equal(t, base.Status, custom.Status)
}

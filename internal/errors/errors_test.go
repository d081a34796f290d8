package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "model not found",
			err:         ErrModelNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "model not found",
		},
		{
			name:        "user not found",
			err:         ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "user not found",
		},
		{
			name:        "purchase not found",
			err:         ErrPurchaseNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "purchase not found",
		},
		{
			name:        "forbidden",
			err:         ErrForbidden,
			wantStatus:  http.StatusForbidden,
			wantMessage: "forbidden access",
		},
		{
			name:        "unauthorized",
			err:         ErrUnauthorized,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "unauthorized access",
		},
		{
			name:        "upstream",
			err:         ErrUpstream,
			wantStatus:  http.StatusBadGateway,
			wantMessage: "upstream failure",
		},
		{
			name:        "wrapped upstream",
			err:         fmt.Errorf("%w: increment purchase count", ErrUpstream),
			wantStatus:  http.StatusBadGateway,
			wantMessage: "upstream failure",
		},
		{
			name:        "unknown error is not leaked",
			err:         errors.New("dial tcp 127.0.0.1:3306: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)

			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse("unauthorized access")

	assert.True(t, resp.Error)
	assert.Equal(t, "unauthorized access", resp.Message)
}

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// stubVerifier accepts exactly one token string.
type stubVerifier struct {
	accept string
	ident  Identity
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	if token == s.accept {
		return s.ident, nil
	}
	return Identity{}, ErrInvalidToken
}

func TestGate(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":true,"message":"unauthorized access"}`,
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":true,"message":"unauthorized access"}`,
		},
		{
			name:       "rejected token",
			authHeader: "Bearer bad-token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":true,"message":"unauthorized access"}`,
		},
		{
			name:       "accepted token",
			authHeader: "Bearer good-token",
			wantStatus: http.StatusOK,
			wantBody:   `buyer@example.com`,
		},
	}

	verifier := &stubVerifier{
		accept: "good-token",
		ident:  Identity{Email: "buyer@example.com"},
	}

	e := echo.New()
	e.GET("/secret", func(c echo.Context) error {
		ident, ok := FromContext(c)
		assert.True(t, ok)
		return c.String(http.StatusOK, ident.Email)
	}, Gate(verifier))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secret", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

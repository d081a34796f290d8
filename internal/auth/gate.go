package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "modelmatrix/internal/errors"
)

// Gate returns the bearer-token middleware guarding identity-scoped routes.
// A missing header, a missing token and a failed verification all produce the
// same 401 envelope.
func Gate(verifier Verifier) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ContextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			ident, err := verifier.Verify(c.Request().Context(), tokenString)
			if err != nil {
				return nil, err
			}
			return ident, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse(apperrors.ErrUnauthorized.Error()))
		},
	})
}

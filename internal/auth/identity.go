package auth

import "github.com/labstack/echo/v4"

// ContextKey is the echo context key the gate stores the identity under.
const ContextKey = "identity"

// Identity is the verified caller the gate attaches to the request context.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// FromContext returns the identity the gate attached to the echo context.
func FromContext(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(ContextKey).(Identity)
	return ident, ok
}

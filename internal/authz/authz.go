// Package authz provides the authorization predicates composed per route.
// Ownership and role checks share one predicate type instead of being
// repeated inline in handlers.
package authz

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"modelmatrix/internal/auth"
	apperrors "modelmatrix/internal/errors"
)

// Resource describes the thing a predicate is evaluated against.
type Resource struct {
	// Owner is the email of the record owner, or the :email path target.
	Owner string
	// Role is the role stored on the caller's user record, when resolved.
	Role string
}

// Predicate decides whether an identity may act on a resource.
type Predicate func(ident auth.Identity, res Resource) error

// Owner allows only the identity whose email matches the resource owner.
func Owner() Predicate {
	return func(ident auth.Identity, res Resource) error {
		if ident.Email == "" || ident.Email != res.Owner {
			return apperrors.ErrForbidden
		}
		return nil
	}
}

// Role allows only callers whose user record carries the given role.
func Role(role string) Predicate {
	return func(ident auth.Identity, res Resource) error {
		if res.Role != role {
			return apperrors.ErrForbidden
		}
		return nil
	}
}

// Any allows when at least one predicate allows.
func Any(preds ...Predicate) Predicate {
	return func(ident auth.Identity, res Resource) error {
		for _, pred := range preds {
			if err := pred(ident, res); err == nil {
				return nil
			}
		}
		return apperrors.ErrForbidden
	}
}

// RoleSource resolves the role stored for an identity.
type RoleSource interface {
	RoleFor(ctx context.Context, email string) (string, error)
}

// Require returns echo middleware enforcing pred against the caller. The
// resource owner is taken from the :email path parameter; the role comes from
// the caller's stored user record.
func Require(roles RoleSource, pred Predicate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := auth.FromContext(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse(apperrors.ErrUnauthorized.Error()))
			}
			res := Resource{Owner: c.Param("email")}
			if roles != nil {
				// Unknown callers keep an empty role and fail role checks.
				role, err := roles.RoleFor(c.Request().Context(), ident.Email)
				if err == nil {
					res.Role = role
				}
			}
			if err := pred(ident, res); err != nil {
				return c.JSON(http.StatusForbidden, apperrors.NewErrorResponse(apperrors.ErrForbidden.Error()))
			}
			return next(c)
		}
	}
}

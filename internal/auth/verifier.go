package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned for any token the provider will not vouch for.
// The gate collapses every verification failure into one unauthorized reply,
// so callers get no detail about why a token was rejected.
var ErrInvalidToken = errors.New("invalid token")

// Credentials is the decoded identity-provider credential blob.
type Credentials struct {
	ProjectID string `json:"project_id"`
	Issuer    string `json:"issuer"`
	Audience  string `json:"audience"`
	Secret    string `json:"secret"`
}

// ParseCredentials decodes the base64-encoded JSON credential blob handed to
// the process via IDENTITY_CREDENTIALS.
func ParseCredentials(blob string) (*Credentials, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("decode credential blob: %w", err)
	}
	creds := &Credentials{}
	if err := json.Unmarshal(raw, creds); err != nil {
		return nil, fmt.Errorf("unmarshal credential blob: %w", err)
	}
	if creds.Secret == "" {
		return nil, errors.New("credential blob has no secret")
	}
	return creds, nil
}

// Claims carried by provider-issued ID tokens.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens against the identity provider.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

type tokenVerifier struct {
	creds *Credentials
	cache *IdentityCache
}

// NewVerifier creates a Verifier for the given provider credentials.
// cache may be nil, in which case every token is verified from scratch.
func NewVerifier(creds *Credentials, cache *IdentityCache) Verifier {
	return &tokenVerifier{creds: creds, cache: cache}
}

// Verify checks the token signature and registered claims and returns the
// decoded identity. An email claim is mandatory.
func (v *tokenVerifier) Verify(ctx context.Context, tokenString string) (Identity, error) {
	if v.cache != nil {
		if ident, ok := v.cache.Get(ctx, tokenString); ok {
			return ident, nil
		}
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(v.creds.Secret), nil
	})
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if v.creds.Issuer != "" && !claims.VerifyIssuer(v.creds.Issuer, true) {
		return Identity{}, ErrInvalidToken
	}
	if v.creds.Audience != "" && !claims.VerifyAudience(v.creds.Audience, true) {
		return Identity{}, ErrInvalidToken
	}
	if claims.Email == "" {
		return Identity{}, ErrInvalidToken
	}

	ident := Identity{
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}
	if v.cache != nil {
		v.cache.Put(ctx, tokenString, ident)
	}
	return ident, nil
}

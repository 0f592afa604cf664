package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"leadscore/internal/config"
	"leadscore/pkg/domain"
	"leadscore/pkg/serrors"
)

// contextKey is a private type for request context keys.
type contextKey string

// UserIDKey is the context key under which the authenticated user's ID is
// stored.
const UserIDKey contextKey = "userID"

// SecHandlerOptions configures token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application
// configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates requests using RS256-signed bearer tokens. The
// token subject must be the user's UUID.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// Authenticate verifies the given bearer token and returns a context carrying
// the authenticated user's ID.
func (s *SecHandler) Authenticate(ctx context.Context, token string) (context.Context, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// Middleware extracts the bearer token from the Authorization header,
// verifies it and stores the user ID in the request context. Requests without
// a valid token are rejected with 401.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.Authenticate(r.Context(), token)
		if err != nil {
			writeError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the authenticated user's ID stored by the
// authentication middleware. It returns the zero UserID when the request was
// not authenticated.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}

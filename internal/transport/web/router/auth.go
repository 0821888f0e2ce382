package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jbeshir/swipe-feedback/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"error":%q}`, err.Error())
					return
				}

				logger := domain.LoggerFromContext(r.Context()).With("user_id", result.UserID)
				ctx := domain.ContextWithLogger(r.Context(), logger)
				ctx = domain.ContextWithUserID(ctx, result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

const userIDHeader = "X-User-ID"

// NewHeaderValidator trusts the X-User-ID header as the caller's identity.
// Only for deployments behind a gateway that sets the header itself, and for local development.
func NewHeaderValidator() AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		if _, ok := r.Header[http.CanonicalHeaderKey(userIDHeader)]; !ok {
			return nil, nil
		}

		userID := strings.TrimSpace(r.Header.Get(userIDHeader))
		if userID == "" {
			return nil, fmt.Errorf("empty %s header", userIDHeader)
		}

		return &AuthResult{
			UserID: userID,
			Method: domain.AuthMethodHeader,
		}, nil
	}
}

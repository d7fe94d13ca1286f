package http

import (
	"context"
	"net/http"
	"strings"

	"studygroups-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// Authenticator validates the bearer token and stores the claims in the
// request context. Both expired and malformed tokens answer 401 with the
// session-expired code so clients re-authenticate.
func Authenticator(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token", Code: CodeSessionExpired})
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "session expired", Code: CodeSessionExpired})
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "wrong token type", Code: CodeSessionExpired})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// claimsFrom returns the authenticated claims placed by Authenticator.
func claimsFrom(r *http.Request) (*security.UserClaims, bool) {
	claims, ok := r.Context().Value(claimsKey).(*security.UserClaims)
	return claims, ok
}

// userID is a convenience for handlers behind Authenticator.
func userID(r *http.Request) string {
	if claims, ok := claimsFrom(r); ok {
		return claims.UserID
	}
	return ""
}

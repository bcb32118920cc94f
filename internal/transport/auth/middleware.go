package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"billforge/internal/domain"
	"billforge/internal/repository"
)

type ctxKey string

const (
	UserIDKey ctxKey = "userID"
	TierKey   ctxKey = "tier"
)

// TokenMiddleware authenticates requests with a bearer token (or a ?token=
// query parameter, which websocket clients need) and stores the user id and
// subscription tier in the request context. The tier is only consumed by
// template listing; this layer does not know what it gates.
func TokenMiddleware(tokenRepo *repository.AccessTokenRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tok *domain.AccessToken

			authHeader := r.Header.Get("Authorization")
			if plain, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				if plain = strings.TrimSpace(plain); plain != "" {
					if t, err := tokenRepo.FindByPlainToken(r.Context(), plain); err == nil {
						tok = t
					}
				}
			}

			if tok == nil {
				if plain := r.URL.Query().Get("token"); plain != "" {
					if t, err := tokenRepo.FindByPlainToken(r.Context(), plain); err == nil {
						tok = t
					}
				}
			}

			if tok == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if tok.Expired() {
				http.Error(w, "Token expired", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, tok.UserID)
			ctx = context.WithValue(ctx, TierKey, tok.Tier())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	if !ok {
		return 0, errors.New("userID not found in context")
	}
	return userID, nil
}

// GetTier returns the caller's subscription tier, defaulting to "free" when
// the context carries none.
func GetTier(ctx context.Context) string {
	tier, ok := ctx.Value(TierKey).(string)
	if !ok || tier == "" {
		return "free"
	}
	return tier
}

package repository

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"billforge/internal/domain"
)

type AccessTokenRepository struct {
	db *sql.DB
}

func NewAccessTokenRepository(db *sql.DB) *AccessTokenRepository {
	return &AccessTokenRepository{db: db}
}

// FindByPlainToken resolves a bearer token in the "<id>|<secret>" form (or a
// bare secret) to its stored row. Only the sha256 of the secret is persisted.
func (r *AccessTokenRepository) FindByPlainToken(ctx context.Context, plainToken string) (*domain.AccessToken, error) {
	plainToken = strings.TrimSpace(plainToken)
	if plainToken == "" {
		return nil, errors.New("empty token")
	}

	var (
		tokenID   *int64
		tokenPart string
	)
	if idx := strings.Index(plainToken, "|"); idx > 0 {
		if id, err := strconv.ParseInt(plainToken[:idx], 10, 64); err == nil {
			tokenID = &id
		}
		tokenPart = plainToken[idx+1:]
	} else {
		tokenPart = plainToken
	}

	sum := sha256.Sum256([]byte(tokenPart))
	hash := fmt.Sprintf("%x", sum)

	var tok domain.AccessToken

	if tokenID != nil {
		err := r.db.QueryRowContext(ctx, `
			SELECT id, token_hash, user_id, abilities, expires_at
			FROM access_tokens
			WHERE id = $1 AND (expires_at IS NULL OR expires_at > $2)`,
			*tokenID, time.Now(),
		).Scan(&tok.ID, &tok.TokenHash, &tok.UserID, &tok.Abilities, &tok.ExpiresAt)
		if err == nil && tok.TokenHash == hash {
			return &tok, nil
		}
	}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, token_hash, user_id, abilities, expires_at
		FROM access_tokens
		WHERE token_hash = $1 AND (expires_at IS NULL OR expires_at > $2)
		ORDER BY id DESC LIMIT 1`,
		hash, time.Now(),
	).Scan(&tok.ID, &tok.TokenHash, &tok.UserID, &tok.Abilities, &tok.ExpiresAt)
	if err != nil {
		return nil, errors.New("token not found")
	}

	return &tok, nil
}

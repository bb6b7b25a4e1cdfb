package repository

import (
	"context"
	"fmt"

	"truetimeshare/internal/data/entity"
	"truetimeshare/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RefreshTokenRepository interface {
	Replace(ctx context.Context, rt *entity.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type refreshTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRefreshTokenRepository(db database.PgxIface, log *zap.Logger) RefreshTokenRepository {
	return &refreshTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "refresh_token")),
	}
}

// Replace stores the user's refresh token, displacing any prior one.
// The upsert on user_id keeps the single-live-session invariant even
// under concurrent logins.
func (r *refreshTokenRepository) Replace(ctx context.Context, rt *entity.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, token, expiry, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET id = EXCLUDED.id,
		    token = EXCLUDED.token,
		    expiry = EXCLUDED.expiry,
		    created_at = EXCLUDED.created_at
	`

	_, err := r.db.Exec(ctx, query,
		rt.ID,
		rt.UserID,
		rt.Token,
		rt.Expiry,
		rt.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to replace refresh token",
			zap.Error(err),
			zap.String("user_id", rt.UserID.String()),
		)
		return fmt.Errorf("replace refresh token for user %s: %w", rt.UserID.String(), err)
	}

	return nil
}

func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, expiry, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var rt entity.RefreshToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&rt.ID,
		&rt.UserID,
		&rt.Token,
		&rt.Expiry,
		&rt.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find refresh token", zap.Error(err))
		return nil, fmt.Errorf("find refresh token: %w", err)
	}

	return &rt, nil
}

// DeleteByUser removes all refresh tokens for the user. Deleting zero
// rows is success (logout is idempotent).
func (r *refreshTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM refresh_tokens WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete refresh tokens",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete refresh tokens for user %s: %w", userID.String(), err)
	}

	return nil
}

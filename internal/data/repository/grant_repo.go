package repository

import (
	"context"
	"fmt"
	"time"

	"truetimeshare/internal/data/entity"
	"truetimeshare/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GrantRepository interface {
	Issue(ctx context.Context, grant *entity.Grant) error
	FindByToken(ctx context.Context, kind entity.GrantKind, token string) (*entity.Grant, error)
	FindByUser(ctx context.Context, kind entity.GrantKind, userID uuid.UUID) (*entity.Grant, error)
	MarkAccepted(ctx context.Context, kind entity.GrantKind, token string) error
	Refresh(ctx context.Context, kind entity.GrantKind, token, code string, expiry time.Time) error
	DeleteByUser(ctx context.Context, kind entity.GrantKind, userID uuid.UUID) error
}

type grantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGrantRepository(db database.PgxIface, log *zap.Logger) GrantRepository {
	return &grantRepository{
		db:  db,
		log: log.With(zap.String("repository", "grant")),
	}
}

const grantColumns = `id, user_id, kind, mode, token, code, expiry, accepted, created_at`

func scanGrant(row pgx.Row) (*entity.Grant, error) {
	var grant entity.Grant
	err := row.Scan(
		&grant.ID,
		&grant.UserID,
		&grant.Kind,
		&grant.Mode,
		&grant.Token,
		&grant.Code,
		&grant.Expiry,
		&grant.Accepted,
		&grant.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &grant, nil
}

// Issue persists a fresh grant. The upsert on (user_id, kind) replaces
// any prior grant for that user in one statement, so at most one live
// grant per user per kind survives concurrent issues.
func (r *grantRepository) Issue(ctx context.Context, grant *entity.Grant) error {
	query := `
		INSERT INTO grants (id, user_id, kind, mode, token, code,
		                    expiry, accepted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, kind) DO UPDATE
		SET id = EXCLUDED.id,
		    mode = EXCLUDED.mode,
		    token = EXCLUDED.token,
		    code = EXCLUDED.code,
		    expiry = EXCLUDED.expiry,
		    accepted = EXCLUDED.accepted,
		    created_at = EXCLUDED.created_at
	`

	_, err := r.db.Exec(ctx, query,
		grant.ID,
		grant.UserID,
		grant.Kind,
		grant.Mode,
		grant.Token,
		grant.Code,
		grant.Expiry,
		grant.Accepted,
		grant.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to issue grant",
			zap.Error(err),
			zap.String("user_id", grant.UserID.String()),
			zap.String("kind", string(grant.Kind)),
		)
		return fmt.Errorf("issue %s grant for user %s: %w", grant.Kind, grant.UserID.String(), err)
	}

	return nil
}

func (r *grantRepository) FindByToken(ctx context.Context, kind entity.GrantKind, token string) (*entity.Grant, error) {
	query := `SELECT ` + grantColumns + ` FROM grants WHERE kind = $1 AND token = $2`

	grant, err := scanGrant(r.db.QueryRow(ctx, query, kind, token))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find grant by token",
			zap.Error(err),
			zap.String("kind", string(kind)),
		)
		return nil, fmt.Errorf("find %s grant by token: %w", kind, err)
	}

	return grant, nil
}

func (r *grantRepository) FindByUser(ctx context.Context, kind entity.GrantKind, userID uuid.UUID) (*entity.Grant, error) {
	query := `SELECT ` + grantColumns + ` FROM grants WHERE kind = $1 AND user_id = $2`

	grant, err := scanGrant(r.db.QueryRow(ctx, query, kind, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find grant by user",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find %s grant for user %s: %w", kind, userID.String(), err)
	}

	return grant, nil
}

// MarkAccepted flips the grant's accepted flag. Matching zero rows is
// not an error; callers validate the grant before consuming it.
func (r *grantRepository) MarkAccepted(ctx context.Context, kind entity.GrantKind, token string) error {
	query := `UPDATE grants SET accepted = true WHERE kind = $1 AND token = $2`

	_, err := r.db.Exec(ctx, query, kind, token)
	if err != nil {
		r.log.Error("Failed to mark grant accepted",
			zap.Error(err),
			zap.String("kind", string(kind)),
		)
		return fmt.Errorf("mark %s grant accepted: %w", kind, err)
	}

	return nil
}

// Refresh regenerates code and expiry on the existing row, clearing
// accepted. The token string stays the same.
func (r *grantRepository) Refresh(ctx context.Context, kind entity.GrantKind, token, code string, expiry time.Time) error {
	query := `
		UPDATE grants
		SET code = $3, expiry = $4, accepted = false
		WHERE kind = $1 AND token = $2
	`

	result, err := r.db.Exec(ctx, query, kind, token, code, expiry)
	if err != nil {
		r.log.Error("Failed to refresh grant",
			zap.Error(err),
			zap.String("kind", string(kind)),
		)
		return fmt.Errorf("refresh %s grant: %w", kind, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s grant not found", kind)
	}

	return nil
}

func (r *grantRepository) DeleteByUser(ctx context.Context, kind entity.GrantKind, userID uuid.UUID) error {
	query := `DELETE FROM grants WHERE kind = $1 AND user_id = $2`

	_, err := r.db.Exec(ctx, query, kind, userID)
	if err != nil {
		r.log.Error("Failed to delete grants",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete %s grants for user %s: %w", kind, userID.String(), err)
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"truetimeshare/internal/data/entity"
	"truetimeshare/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommunityEmailRepository interface {
	Create(ctx context.Context, ce *entity.CommunityEmail) error
	FindByEmail(ctx context.Context, email string) (*entity.CommunityEmail, error)
}

type communityEmailRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommunityEmailRepository(db database.PgxIface, log *zap.Logger) CommunityEmailRepository {
	return &communityEmailRepository{
		db:  db,
		log: log.With(zap.String("repository", "community_email")),
	}
}

func (r *communityEmailRepository) Create(ctx context.Context, ce *entity.CommunityEmail) error {
	query := `
		INSERT INTO community_emails (id, email, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, ce.ID, ce.Email, ce.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create community email",
			zap.Error(err),
			zap.String("email", ce.Email),
		)
		return fmt.Errorf("create community email %s: %w", ce.Email, err)
	}

	return nil
}

func (r *communityEmailRepository) FindByEmail(ctx context.Context, email string) (*entity.CommunityEmail, error) {
	query := `SELECT id, email, created_at FROM community_emails WHERE email = $1`

	var ce entity.CommunityEmail
	err := r.db.QueryRow(ctx, query, email).Scan(&ce.ID, &ce.Email, &ce.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find community email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find community email %s: %w", email, err)
	}

	return &ce, nil
}

package repository

import (
	"truetimeshare/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	Grant          GrantRepository
	RefreshToken   RefreshTokenRepository
	Property       PropertyRepository
	CommunityEmail CommunityEmailRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		Grant:          NewGrantRepository(db, log),
		RefreshToken:   NewRefreshTokenRepository(db, log),
		Property:       NewPropertyRepository(db, log),
		CommunityEmail: NewCommunityEmailRepository(db, log),
	}
}

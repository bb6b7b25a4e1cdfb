package usecase

import (
	"truetimeshare/internal/data/repository"
	"truetimeshare/pkg/notify"
	"truetimeshare/pkg/token"
	"truetimeshare/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Property  PropertyService
	Community CommunityService
	User      UserService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	issuer *token.Issuer,
	mailer notify.Mailer,
	sms notify.SMSSender,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, issuer, mailer, sms, log),
		Property:  NewPropertyService(repo, log),
		Community: NewCommunityService(repo, config, mailer, log),
		User:      NewUserService(repo, config, log),
	}
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"truetimeshare/internal/data/entity"
	"truetimeshare/internal/data/repository"
	"truetimeshare/pkg/notify"
	"truetimeshare/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommunityService interface {
	RegisterEmail(ctx context.Context, email string) error
}

type communityService struct {
	repo   *repository.Repository
	config *utils.Config
	mailer notify.Mailer
	log    *zap.Logger
}

func NewCommunityService(repo *repository.Repository, config *utils.Config, mailer notify.Mailer, log *zap.Logger) CommunityService {
	return &communityService{repo: repo, config: config, mailer: mailer, log: log}
}

func (s *communityService) RegisterEmail(ctx context.Context, email string) error {
	existing, err := s.repo.CommunityEmail.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrConflict
	}

	record := &entity.CommunityEmail{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Email:      email,
	}

	if err := s.repo.CommunityEmail.Create(ctx, record); err != nil {
		return err
	}

	s.dispatchWelcome(ctx, email)

	s.log.Info("Community email registered", zap.String("email", email))
	return nil
}

func (s *communityService) dispatchWelcome(ctx context.Context, email string) {
	if !s.config.IsProduction() {
		return
	}

	site := s.config.App.Name
	body := fmt.Sprintf("Hi. Welcome to the %s community. We will keep you posted.", site)

	err := s.mailer.SendEmail(ctx, notify.EmailMessage{
		To:      email,
		Subject: fmt.Sprintf("Welcome to %s", site),
		Text:    body,
		HTML:    body,
	})
	if err != nil {
		s.log.Error("Failed to send community welcome email", zap.Error(err), zap.String("email", email))
	}
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"truetimeshare/internal/usecase"
	"truetimeshare/pkg/utils"

	"go.uber.org/zap"
)

func TestCommunityRegisterEmail(t *testing.T) {
	repo, _, _, _ := newMockRepository()
	mailer := &mockMailer{}

	cfg := &utils.Config{}
	cfg.App.Name = "TrueTimeShare"
	cfg.App.Env = utils.EnvProduction

	svc := usecase.NewCommunityService(repo, cfg, mailer, zap.NewNop())
	ctx := context.Background()

	if err := svc.RegisterEmail(ctx, "fan@example.com"); err != nil {
		t.Fatalf("RegisterEmail: %v", err)
	}

	if mail := mailer.last(); mail == nil || mail.To != "fan@example.com" {
		t.Error("welcome email not dispatched")
	}

	if err := svc.RegisterEmail(ctx, "fan@example.com"); !errors.Is(err, usecase.ErrConflict) {
		t.Fatalf("duplicate err = %v, want ErrConflict", err)
	}
}

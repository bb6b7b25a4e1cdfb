package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"truetimeshare/internal/data/entity"
	"truetimeshare/internal/dto/request"
	"truetimeshare/internal/usecase"
	"truetimeshare/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, users *mockUserRepo, email string) *entity.User {
	t.Helper()

	now := time.Now()
	addr := email
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Role:         entity.RoleOwner,
		Email:        &addr,
		PasswordHash: "hash",
		Status:       entity.StatusActive,
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func newUserService(t *testing.T) (usecase.UserService, *mockUserRepo) {
	t.Helper()

	repo, users, _, _ := newMockRepository()
	cfg := &utils.Config{}
	cfg.Bcrypt.Cost = 4

	return usecase.NewUserService(repo, cfg, zap.NewNop()), users
}

func TestListUsersPagination(t *testing.T) {
	svc, users := newUserService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedUser(t, users, uuid.NewString()+"@example.com")
	}

	page, err := svc.ListUsers(ctx, 1, 2)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if page.Total != 5 {
		t.Errorf("total = %d, want 5", page.Total)
	}
	if len(page.Users) != 2 {
		t.Errorf("page size = %d, want 2", len(page.Users))
	}

	// Out-of-range inputs get normalized instead of erroring.
	page, err = svc.ListUsers(ctx, 0, 0)
	if err != nil {
		t.Fatalf("ListUsers with zero inputs: %v", err)
	}
	if page.Page != 1 || page.PerPage != 10 {
		t.Errorf("normalized page = %d/%d, want 1/10", page.Page, page.PerPage)
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc, users := newUserService(t)
	ctx := context.Background()

	user := seedUser(t, users, "jane@example.com")

	newPass := "brand-new-pass"
	role := "renter"
	if _, err := svc.UpdateUser(ctx, user.ID, &request.UpdateUserRequest{
		Password: &newPass,
		Role:     &role,
	}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	stored, _ := users.FindByID(ctx, user.ID)
	if stored.Role != entity.RoleRenter {
		t.Errorf("role = %s, want renter", stored.Role)
	}
	if stored.PasswordHash == "hash" {
		t.Error("password hash not replaced")
	}
	if !utils.CheckPasswordHash(newPass, stored.PasswordHash) {
		t.Error("new password does not verify against stored hash")
	}

	badRole := "superuser"
	if _, err := svc.UpdateUser(ctx, user.ID, &request.UpdateUserRequest{Role: &badRole}); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("bad role err = %v, want ErrValidation", err)
	}
}

func TestDeleteUser(t *testing.T) {
	svc, users := newUserService(t)
	ctx := context.Background()

	user := seedUser(t, users, "jane@example.com")

	if err := svc.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if got, _ := users.FindByID(ctx, user.ID); got != nil {
		t.Error("user still present after delete")
	}
	if err := svc.DeleteUser(ctx, user.ID); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"truetimeshare/internal/data/entity"
	"truetimeshare/internal/data/repository"
	"truetimeshare/internal/dto/request"
	"truetimeshare/internal/dto/response"
	"truetimeshare/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	ListUsers(ctx context.Context, page, perPage int) (*response.UserListResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(repo *repository.Repository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{repo: repo, config: config, log: log}
}

func (s *userService) ListUsers(ctx context.Context, page, perPage int) (*response.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.User.FindAll(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, *response.UserToResponse(user))
	}

	return &response.UserListResponse{
		Users:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return response.UserToResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Role != nil {
		role := entity.UserRole(*req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *req.Role)
		}
		user.Role = role
	}
	if req.Status != nil {
		status := entity.UserStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		user.Status = status
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password, s.config.Bcrypt.Cost)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User updated by admin", zap.String("user_id", id.String()))

	return response.UserToResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("User deleted by admin", zap.String("user_id", id.String()))
	return nil
}

package usecase

import (
	"context"
	"time"

	"truetimeshare/internal/data/entity"
	"truetimeshare/internal/data/repository"
	"truetimeshare/internal/dto/request"
	"truetimeshare/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PropertyService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *request.CreatePropertyRequest) (*response.PropertyResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.PropertyResponse, error)
	GetAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]response.PropertyResponse, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type propertyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPropertyService(repo *repository.Repository, log *zap.Logger) PropertyService {
	return &propertyService{repo: repo, log: log}
}

func (s *propertyService) Create(ctx context.Context, ownerID uuid.UUID, req *request.CreatePropertyRequest) (*response.PropertyResponse, error) {
	now := time.Now()
	property := &entity.Property{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		OwnerID:     ownerID,
		Name:        req.Name,
		Type:        entity.PropertyType(req.Type),
		Location:    req.Location,
		Price:       req.Price,
		Description: req.Description,
		Images:      req.Images,
		Checkin:     req.Checkin,
		Checkout:    req.Checkout,
		Additional:  req.Additional,
	}

	if err := s.repo.Property.Create(ctx, property); err != nil {
		return nil, err
	}

	s.log.Info("Property created",
		zap.String("property_id", property.ID.String()),
		zap.String("owner_id", ownerID.String()))

	return response.PropertyToResponse(property), nil
}

func (s *propertyService) GetByID(ctx context.Context, id uuid.UUID) (*response.PropertyResponse, error) {
	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrNotFound
	}

	return response.PropertyToResponse(property), nil
}

func (s *propertyService) GetAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]response.PropertyResponse, error) {
	properties, err := s.repo.Property.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]response.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		result = append(result, *response.PropertyToResponse(property))
	}

	return result, nil
}

func (s *propertyService) Update(ctx context.Context, ownerID, id uuid.UUID, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error) {
	property, err := s.ownedProperty(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Checkin != nil {
		property.Checkin = req.Checkin
	}
	if req.Checkout != nil {
		property.Checkout = req.Checkout
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.OpeningStatus != nil {
		property.OpeningStatus = req.OpeningStatus
	}
	if req.OpeningAdditional != nil {
		property.OpeningAdditional = req.OpeningAdditional
	}

	property.UpdatedAt = time.Now()
	if err := s.repo.Property.Update(ctx, property); err != nil {
		return nil, err
	}

	s.log.Info("Property updated", zap.String("property_id", id.String()))

	return response.PropertyToResponse(property), nil
}

func (s *propertyService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.ownedProperty(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.repo.Property.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Property deleted", zap.String("property_id", id.String()))
	return nil
}

func (s *propertyService) ownedProperty(ctx context.Context, ownerID, id uuid.UUID) (*entity.Property, error) {
	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrNotFound
	}
	if property.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	return property, nil
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"truetimeshare/internal/dto/request"
	"truetimeshare/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newPropertyService() usecase.PropertyService {
	repo, _, _, _ := newMockRepository()
	return usecase.NewPropertyService(repo, zap.NewNop())
}

func TestPropertyCreateAndGet(t *testing.T) {
	svc := newPropertyService()
	ctx := context.Background()
	ownerID := uuid.New()

	created, err := svc.Create(ctx, ownerID, &request.CreatePropertyRequest{
		Name:     "Seaside Villa",
		Type:     "rent",
		Location: "Alicante",
		Price:    250,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.OwnerID != ownerID.String() {
		t.Errorf("owner = %s, want %s", created.OwnerID, ownerID)
	}

	id, _ := uuid.Parse(created.ID)
	got, err := svc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Seaside Villa" {
		t.Errorf("name = %q", got.Name)
	}

	if _, err := svc.GetByID(ctx, uuid.New()); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("unknown id err = %v, want ErrNotFound", err)
	}
}

func TestPropertyUpdateEnforcesOwnership(t *testing.T) {
	svc := newPropertyService()
	ctx := context.Background()
	ownerID := uuid.New()

	created, err := svc.Create(ctx, ownerID, &request.CreatePropertyRequest{
		Name:     "Seaside Villa",
		Type:     "rent",
		Location: "Alicante",
		Price:    250,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id, _ := uuid.Parse(created.ID)

	newPrice := 300.0
	if _, err := svc.Update(ctx, uuid.New(), id, &request.UpdatePropertyRequest{Price: &newPrice}); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("stranger update err = %v, want ErrForbidden", err)
	}

	updated, err := svc.Update(ctx, ownerID, id, &request.UpdatePropertyRequest{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 300 {
		t.Errorf("price = %v, want 300", updated.Price)
	}

	if err := svc.Delete(ctx, uuid.New(), id); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("stranger delete err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, ownerID, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, id); !errors.Is(err, usecase.ErrNotFound) {
		t.Errorf("deleted property still found: %v", err)
	}
}

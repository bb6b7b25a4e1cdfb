package repository

import (
	"context"
	"fmt"

	"truetimeshare/internal/data/entity"
	"truetimeshare/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPropertyRepository(db database.PgxIface, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		db:  db,
		log: log.With(zap.String("repository", "property")),
	}
}

const propertyColumns = `id, owner_id, name, type, location, price, description, images,
	       checkin, checkout, additional, views, clicks,
	       opening_status, opening_additional, created_at, updated_at`

func scanProperty(row pgx.Row) (*entity.Property, error) {
	var p entity.Property
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Type,
		&p.Location,
		&p.Price,
		&p.Description,
		&p.Images,
		&p.Checkin,
		&p.Checkout,
		&p.Additional,
		&p.Views,
		&p.Clicks,
		&p.OpeningStatus,
		&p.OpeningAdditional,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (pr *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	query := `
		INSERT INTO properties (id, owner_id, name, type, location, price,
		                        description, images, checkin, checkout, additional,
		                        views, clicks, opening_status, opening_additional,
		                        created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := pr.db.Exec(ctx, query,
		property.ID,
		property.OwnerID,
		property.Name,
		property.Type,
		property.Location,
		property.Price,
		property.Description,
		property.Images,
		property.Checkin,
		property.Checkout,
		property.Additional,
		property.Views,
		property.Clicks,
		property.OpeningStatus,
		property.OpeningAdditional,
		property.CreatedAt,
		property.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create property",
			zap.Error(err),
			zap.String("owner_id", property.OwnerID.String()),
		)
		return fmt.Errorf("create property for owner %s: %w", property.OwnerID.String(), err)
	}

	return nil
}

func (pr *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	property, err := scanProperty(pr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find property by ID",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return nil, fmt.Errorf("find property by ID %s: %w", id.String(), err)
	}

	return property, nil
}

func (pr *propertyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := pr.db.Query(ctx, query, ownerID)
	if err != nil {
		pr.log.Error("Failed to find properties by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find properties for owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			pr.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate properties rows: %w", err)
	}

	return properties, nil
}

func (pr *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	query := `
		UPDATE properties
		SET checkin = $2, checkout = $3, price = $4,
		    opening_status = $5, opening_additional = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := pr.db.Exec(ctx, query,
		property.ID,
		property.Checkin,
		property.Checkout,
		property.Price,
		property.OpeningStatus,
		property.OpeningAdditional,
		property.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to update property",
			zap.Error(err),
			zap.String("property_id", property.ID.String()),
		)
		return fmt.Errorf("update property %s: %w", property.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", property.ID.String())
	}

	return nil
}

func (pr *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM properties WHERE id = $1`

	result, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		pr.log.Error("Failed to delete property",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return fmt.Errorf("delete property %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", id.String())
	}

	return nil
}

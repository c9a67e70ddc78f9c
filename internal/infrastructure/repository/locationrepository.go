package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/mappers"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
	"github.com/hsaberwal/serunner/internal/shared/db"
)

type LocationRepository struct {
	db     *gorm.DB
	mapper mappers.LocationMapper
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{
		db:     db,
		mapper: mappers.NewLocationMapper(),
	}
}

func (r *LocationRepository) Create(ctx context.Context, l *location.Location) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(l)).Error; err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id string) (*location.Location, error) {
	var model models.LocationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *LocationRepository) ListByUser(ctx context.Context, userID string) ([]*location.Location, error) {
	var ms []models.LocationModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	out := make([]*location.Location, 0, len(ms))
	for i := range ms {
		out = append(out, r.mapper.ToDomain(&ms[i]))
	}
	return out, nil
}

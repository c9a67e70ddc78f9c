package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/mappers"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
	"github.com/hsaberwal/serunner/internal/shared/db"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type SetupRepository struct {
	db     *gorm.DB
	mapper mappers.SetupMapper
	logger logger.Interface
}

func NewSetupRepository(db *gorm.DB, logger logger.Interface) *SetupRepository {
	return &SetupRepository{
		db:     db,
		mapper: mappers.NewSetupMapper(),
		logger: logger,
	}
}

func (r *SetupRepository) Create(ctx context.Context, s *setup.Setup) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create setup: %w", err)
	}
	return nil
}

// Update writes every mutable column, including zero values such as
// is_shared=false. Owner, location and created_at never change.
func (r *SetupRepository) Update(ctx context.Context, s *setup.Setup) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SetupModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "user_id", "location_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update setup: %w", result.Error)
	}
	return nil
}

// Delete removes the setup and its corrections.
func (r *SetupRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("setup_id = ?", id).Delete(&models.SetupCorrectionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete setup corrections: %w", err)
	}
	result := tx.Where("id = ?", id).Delete(&models.SetupModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete setup: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("setup not found")
	}
	return nil
}

func (r *SetupRepository) GetByID(ctx context.Context, id string) (*setup.Setup, error) {
	var model models.SetupModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get setup: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *SetupRepository) ListMatchCandidates(ctx context.Context, locationID, userID string, limit int) ([]*setup.Setup, error) {
	var ms []models.SetupModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("location_id = ?", locationID).
		Where("user_id = ? OR is_shared = ?", userID, true).
		Order("created_at DESC").
		Order("id ASC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list match candidates: %w", err)
	}
	return r.decodeAll(ms)
}

func (r *SetupRepository) ListPastSetups(ctx context.Context, locationID, userID string, minRating, limit int) ([]*setup.Setup, error) {
	var ms []models.SetupModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("location_id = ?", locationID).
		Where("user_id = ? OR is_shared = ?", userID, true).
		Where("rating >= ?", minRating).
		Order("rating DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list past setups: %w", err)
	}
	return r.decodeAll(ms)
}

func (r *SetupRepository) List(ctx context.Context, filter setup.ListFilter) ([]*setup.Setup, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SetupModel{})
	if filter.IncludeShared {
		query = query.Where("user_id = ? OR is_shared = ?", filter.UserID, true)
	} else {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.LocationID != "" {
		query = query.Where("location_id = ?", filter.LocationID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count setups: %w", err)
	}

	var ms []models.SetupModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&ms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list setups: %w", err)
	}

	setups, err := r.decodeAll(ms)
	if err != nil {
		return nil, 0, err
	}
	return setups, total, nil
}

// decodeAll skips rows whose stored JSON no longer decodes so one corrupt
// row cannot hide the rest of the history.
func (r *SetupRepository) decodeAll(ms []models.SetupModel) ([]*setup.Setup, error) {
	out := make([]*setup.Setup, 0, len(ms))
	for i := range ms {
		s, err := r.mapper.ToDomain(&ms[i])
		if err != nil {
			r.logger.Warnw("skipping undecodable setup", "setup_id", ms[i].ID, "error", err)
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/mappers"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
	"github.com/hsaberwal/serunner/internal/shared/db"
)

type InstrumentProfileRepository struct {
	db     *gorm.DB
	mapper mappers.InstrumentProfileMapper
}

func NewInstrumentProfileRepository(db *gorm.DB) *InstrumentProfileRepository {
	return &InstrumentProfileRepository{
		db:     db,
		mapper: mappers.NewInstrumentProfileMapper(),
	}
}

// Save upserts on (user_id, value_key) so relearning an instrument replaces it.
func (r *InstrumentProfileRepository) Save(ctx context.Context, p *instrument.Profile) error {
	result := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "value_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "display_name", "category", "description", "mic_recommendations",
			"eq_settings", "compression_settings", "fx_recommendations", "mixing_notes",
			"user_notes", "updated_at",
		}),
	}).Create(r.mapper.ToModel(p))
	if result.Error != nil {
		return fmt.Errorf("failed to save instrument profile: %w", result.Error)
	}
	return nil
}

func (r *InstrumentProfileRepository) ListByUser(ctx context.Context, userID string) ([]*instrument.Profile, error) {
	return r.find(db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID))
}

func (r *InstrumentProfileRepository) FindByValueKeys(ctx context.Context, userID string, keys []string) ([]*instrument.Profile, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	return r.find(db.GetTxFromContext(ctx, r.db).Where("user_id = ? AND value_key IN ?", userID, keys))
}

func (r *InstrumentProfileRepository) find(query *gorm.DB) ([]*instrument.Profile, error) {
	var ms []models.InstrumentProfileModel
	if err := query.Order("category ASC").Order("name ASC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list instrument profiles: %w", err)
	}
	out := make([]*instrument.Profile, 0, len(ms))
	for i := range ms {
		out = append(out, r.mapper.ToDomain(&ms[i]))
	}
	return out, nil
}

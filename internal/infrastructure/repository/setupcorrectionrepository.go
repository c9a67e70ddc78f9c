package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/mappers"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
	"github.com/hsaberwal/serunner/internal/shared/biztime"
	"github.com/hsaberwal/serunner/internal/shared/db"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type SetupCorrectionRepository struct {
	db     *gorm.DB
	mapper mappers.SetupMapper
	logger logger.Interface
}

func NewSetupCorrectionRepository(db *gorm.DB, logger logger.Interface) *SetupCorrectionRepository {
	return &SetupCorrectionRepository{
		db:     db,
		mapper: mappers.NewSetupMapper(),
		logger: logger,
	}
}

// Upsert replaces the whole entry for (setup_id, channel).
func (r *SetupCorrectionRepository) Upsert(ctx context.Context, c *setup.Correction) error {
	model, err := r.mapper.CorrectionToModel(c)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "setup_id"}, {Name: "channel"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"instrument",
			"instrument_key",
			"entry",
			"updated_by",
			"updated_at",
		}),
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert correction: %w", result.Error)
	}
	return nil
}

func (r *SetupCorrectionRepository) ListBySetup(ctx context.Context, setupID string) ([]*setup.Correction, error) {
	var ms []models.SetupCorrectionModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("setup_id = ?", setupID).
		Order("channel ASC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}

	out := make([]*setup.Correction, 0, len(ms))
	for i := range ms {
		c, err := r.mapper.CorrectionToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *SetupCorrectionRepository) DeleteBySetup(ctx context.Context, setupID string) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("setup_id = ?", setupID).
		Delete(&models.SetupCorrectionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete corrections: %w", err)
	}
	return nil
}

type learningRow struct {
	SetupID   string
	Channel   string
	Entry     datatypes.JSON
	UpdatedAt int64
	EventName string
	EventDate *string
}

// ListLearningContext joins corrections to the setups the requester can
// read at the location, most recently corrected first.
func (r *SetupCorrectionRepository) ListLearningContext(ctx context.Context, q setup.LearningContextQuery) ([]setup.LearningCorrection, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Table("setup_corrections AS c").
		Select("c.setup_id, c.channel, c.entry, c.updated_at, s.event_name, s.event_date").
		Joins("JOIN setups AS s ON s.id = c.setup_id").
		Where("s.location_id = ?", q.LocationID).
		Where("s.user_id = ? OR s.is_shared = ?", q.RequesterID, true)
	if q.InstrumentKey != "" {
		query = query.Where("c.instrument_key = ?", q.InstrumentKey)
	}

	var rows []learningRow
	if err := query.
		Order("c.updated_at DESC").
		Order("c.channel ASC").
		Limit(q.Limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list learning context: %w", err)
	}

	out := make([]setup.LearningCorrection, 0, len(rows))
	for _, row := range rows {
		var entry setup.CorrectionEntry
		if err := json.Unmarshal(row.Entry, &entry); err != nil {
			r.logger.Warnw("skipping undecodable correction", "setup_id", row.SetupID, "channel", row.Channel, "error", err)
			continue
		}
		lc := setup.LearningCorrection{
			SetupID:   row.SetupID,
			EventName: row.EventName,
			Channel:   row.Channel,
			Entry:     entry,
			UpdatedAt: time.UnixMilli(row.UpdatedAt).UTC(),
		}
		if row.EventDate != nil {
			if d, err := biztime.ParseDate(*row.EventDate); err == nil {
				lc.EventDate = &d
			}
		}
		out = append(out, lc)
	}
	return out, nil
}

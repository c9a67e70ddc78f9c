package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
	"github.com/hsaberwal/serunner/internal/shared/biztime"
)

// SetupMapper handles the conversion between Setup entities and persistence models.
type SetupMapper interface {
	ToModel(s *setup.Setup) (*models.SetupModel, error)
	ToDomain(model *models.SetupModel) (*setup.Setup, error)
	ToDomainList(ms []models.SetupModel) ([]*setup.Setup, error)

	CorrectionToModel(c *setup.Correction) (*models.SetupCorrectionModel, error)
	CorrectionToDomain(model *models.SetupCorrectionModel) (*setup.Correction, error)
}

type SetupMapperImpl struct{}

func NewSetupMapper() SetupMapper {
	return &SetupMapperImpl{}
}

func (m *SetupMapperImpl) ToModel(s *setup.Setup) (*models.SetupModel, error) {
	performers, err := json.Marshal(s.Performers())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal performers: %w", err)
	}

	cfg := s.Config()
	model := &models.SetupModel{
		ID:                  s.ID(),
		UserID:              s.UserID(),
		LocationID:          s.LocationID(),
		EventName:           s.EventName(),
		Performers:          datatypes.JSON(performers),
		ChannelConfig:       rawToJSON(cfg.ChannelConfig),
		EQSettings:          rawToJSON(cfg.EQSettings),
		CompressionSettings: rawToJSON(cfg.CompressionSettings),
		FXSettings:          rawToJSON(cfg.FXSettings),
		Instructions:        cfg.Instructions,
		Rating:              s.Rating(),
		Notes:               s.Notes(),
		IsShared:            s.IsShared(),
		SharedFullAccess:    s.SharedFullAccess(),
		CreatedAt:           s.CreatedAt().UnixMilli(),
		UpdatedAt:           s.UpdatedAt().UnixMilli(),
	}

	if s.EventDate() != nil {
		date := biztime.FormatDate(s.EventDate())
		model.EventDate = &date
	}

	if cfg.TroubleshootingTips != nil {
		tips, err := json.Marshal(cfg.TroubleshootingTips)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal troubleshooting tips: %w", err)
		}
		model.TroubleshootingTips = datatypes.JSON(tips)
	}

	return model, nil
}

func (m *SetupMapperImpl) ToDomain(model *models.SetupModel) (*setup.Setup, error) {
	if model == nil {
		return nil, nil
	}

	var performers []setup.PerformerSlot
	if err := json.Unmarshal(model.Performers, &performers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal performers of setup %s: %w", model.ID, err)
	}

	cfg := setup.GeneratedConfig{
		ChannelConfig:       jsonToRaw(model.ChannelConfig),
		EQSettings:          jsonToRaw(model.EQSettings),
		CompressionSettings: jsonToRaw(model.CompressionSettings),
		FXSettings:          jsonToRaw(model.FXSettings),
		Instructions:        model.Instructions,
	}
	if len(model.TroubleshootingTips) > 0 {
		if err := json.Unmarshal(model.TroubleshootingTips, &cfg.TroubleshootingTips); err != nil {
			return nil, fmt.Errorf("failed to unmarshal troubleshooting tips of setup %s: %w", model.ID, err)
		}
	}

	var eventDate *time.Time
	if model.EventDate != nil && *model.EventDate != "" {
		d, err := biztime.ParseDate(*model.EventDate)
		if err != nil {
			return nil, fmt.Errorf("invalid event date of setup %s: %w", model.ID, err)
		}
		eventDate = &d
	}

	return setup.ReconstructSetup(
		model.ID,
		model.UserID,
		model.LocationID,
		model.EventName,
		eventDate,
		performers,
		cfg,
		model.Rating,
		model.Notes,
		model.IsShared,
		model.SharedFullAccess,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	), nil
}

func (m *SetupMapperImpl) ToDomainList(ms []models.SetupModel) ([]*setup.Setup, error) {
	out := make([]*setup.Setup, 0, len(ms))
	for i := range ms {
		s, err := m.ToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *SetupMapperImpl) CorrectionToModel(c *setup.Correction) (*models.SetupCorrectionModel, error) {
	entry, err := json.Marshal(c.Entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal correction entry: %w", err)
	}
	return &models.SetupCorrectionModel{
		SetupID:       c.SetupID,
		Channel:       c.Channel,
		Instrument:    c.Entry.Instrument,
		InstrumentKey: c.InstrumentKey(),
		Entry:         datatypes.JSON(entry),
		UpdatedBy:     c.UpdatedBy,
		UpdatedAt:     c.UpdatedAt.UnixMilli(),
	}, nil
}

func (m *SetupMapperImpl) CorrectionToDomain(model *models.SetupCorrectionModel) (*setup.Correction, error) {
	var entry setup.CorrectionEntry
	if err := json.Unmarshal(model.Entry, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal correction %s/%s: %w", model.SetupID, model.Channel, err)
	}
	return &setup.Correction{
		SetupID:   model.SetupID,
		Channel:   model.Channel,
		Entry:     entry,
		UpdatedBy: model.UpdatedBy,
		UpdatedAt: time.UnixMilli(model.UpdatedAt).UTC(),
	}, nil
}

func rawToJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}

func jsonToRaw(j datatypes.JSON) json.RawMessage {
	if len(j) == 0 {
		return nil
	}
	return json.RawMessage(j)
}

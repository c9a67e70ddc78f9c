package mappers

import (
	"time"

	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
)

type InstrumentProfileMapper interface {
	ToModel(p *instrument.Profile) *models.InstrumentProfileModel
	ToDomain(model *models.InstrumentProfileModel) *instrument.Profile
}

type InstrumentProfileMapperImpl struct{}

func NewInstrumentProfileMapper() InstrumentProfileMapper {
	return &InstrumentProfileMapperImpl{}
}

func (m *InstrumentProfileMapperImpl) ToModel(p *instrument.Profile) *models.InstrumentProfileModel {
	learned := p.Learned()
	return &models.InstrumentProfileModel{
		ID:                  p.ID(),
		UserID:              p.UserID(),
		Name:                p.Name(),
		DisplayName:         learned.DisplayName,
		Category:            string(p.Category()),
		ValueKey:            p.ValueKey(),
		Description:         learned.Description,
		MicRecommendations:  rawToJSON(learned.MicRecommendations),
		EQSettings:          rawToJSON(learned.EQSettings),
		CompressionSettings: rawToJSON(learned.CompressionSettings),
		FXRecommendations:   rawToJSON(learned.FXRecommendations),
		MixingNotes:         learned.MixingNotes,
		UserNotes:           p.UserNotes(),
		CreatedAt:           p.CreatedAt().UnixMilli(),
		UpdatedAt:           p.UpdatedAt().UnixMilli(),
	}
}

func (m *InstrumentProfileMapperImpl) ToDomain(model *models.InstrumentProfileModel) *instrument.Profile {
	if model == nil {
		return nil
	}
	return instrument.ReconstructProfile(
		model.ID,
		model.UserID,
		model.Name,
		instrument.Category(model.Category),
		model.ValueKey,
		model.UserNotes,
		instrument.Learned{
			DisplayName:         model.DisplayName,
			Description:         model.Description,
			MicRecommendations:  jsonToRaw(model.MicRecommendations),
			EQSettings:          jsonToRaw(model.EQSettings),
			CompressionSettings: jsonToRaw(model.CompressionSettings),
			FXRecommendations:   jsonToRaw(model.FXRecommendations),
			MixingNotes:         model.MixingNotes,
		},
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

package mappers

import (
	"time"

	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
)

type LocationMapper interface {
	ToModel(l *location.Location) *models.LocationModel
	ToDomain(model *models.LocationModel) *location.Location
}

type LocationMapperImpl struct{}

func NewLocationMapper() LocationMapper {
	return &LocationMapperImpl{}
}

func (m *LocationMapperImpl) ToModel(l *location.Location) *models.LocationModel {
	return &models.LocationModel{
		ID:           l.ID(),
		UserID:       l.UserID(),
		Name:         l.Name(),
		VenueType:    l.VenueType(),
		Notes:        l.Notes(),
		SpeakerSetup: rawToJSON(l.SpeakerSetup()),
		IsTemporary:  l.IsTemporary(),
		CreatedAt:    l.CreatedAt().UnixMilli(),
	}
}

func (m *LocationMapperImpl) ToDomain(model *models.LocationModel) *location.Location {
	if model == nil {
		return nil
	}
	return location.ReconstructLocation(
		model.ID,
		model.UserID,
		model.Name,
		model.VenueType,
		model.Notes,
		jsonToRaw(model.SpeakerSetup),
		model.IsTemporary,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

package dto

import (
	"encoding/json"
	"time"

	"github.com/hsaberwal/serunner/internal/domain/instrument"
)

type LearnInstrumentRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Category string `json:"category" binding:"omitempty,oneof=vocals speech percussion wind strings keys other"`
	Notes    string `json:"notes" binding:"omitempty,max=2000"`
}

// InstrumentDTO is a learned instrument. Value is the performer type key
// clients submit in lineups.
type InstrumentDTO struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	DisplayName         string          `json:"display_name"`
	Value               string          `json:"value"`
	Category            string          `json:"category"`
	Description         string          `json:"description"`
	UserNotes           string          `json:"user_notes"`
	MicRecommendations  json.RawMessage `json:"mic_recommendations"`
	EQSettings          json.RawMessage `json:"eq_settings"`
	CompressionSettings json.RawMessage `json:"compression_settings"`
	FXRecommendations   json.RawMessage `json:"fx_recommendations"`
	MixingNotes         string          `json:"mixing_notes"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func ToInstrumentDTO(p *instrument.Profile) *InstrumentDTO {
	l := p.Learned()
	return &InstrumentDTO{
		ID:                  p.ID(),
		Name:                p.Name(),
		DisplayName:         p.DisplayName(),
		Value:               p.ValueKey(),
		Category:            string(p.Category()),
		Description:         l.Description,
		UserNotes:           p.UserNotes(),
		MicRecommendations:  rawOrNull(l.MicRecommendations),
		EQSettings:          rawOrNull(l.EQSettings),
		CompressionSettings: rawOrNull(l.CompressionSettings),
		FXRecommendations:   rawOrNull(l.FXRecommendations),
		MixingNotes:         l.MixingNotes,
		CreatedAt:           p.CreatedAt(),
		UpdatedAt:           p.UpdatedAt(),
	}
}

func ToInstrumentDTOs(ps []*instrument.Profile) []*InstrumentDTO {
	out := make([]*InstrumentDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToInstrumentDTO(p))
	}
	return out
}

func rawOrNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage(`null`)
	}
	return raw
}

package dto

import (
	"encoding/json"
	"time"

	"github.com/hsaberwal/serunner/internal/domain/location"
)

type CreateLocationRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	VenueType    string          `json:"venue_type" binding:"omitempty,max=50"`
	Notes        string          `json:"notes"`
	SpeakerSetup json.RawMessage `json:"speaker_setup"`
	IsTemporary  bool            `json:"is_temporary"`
}

type LocationDTO struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	VenueType    string          `json:"venue_type"`
	Notes        string          `json:"notes"`
	SpeakerSetup json.RawMessage `json:"speaker_setup"`
	IsTemporary  bool            `json:"is_temporary"`
	CreatedAt    time.Time       `json:"created_at"`
}

func ToLocationDTO(l *location.Location) *LocationDTO {
	if l == nil {
		return nil
	}
	speakers := l.SpeakerSetup()
	if len(speakers) == 0 {
		speakers = json.RawMessage(`null`)
	}
	return &LocationDTO{
		ID:           l.ID(),
		UserID:       l.UserID(),
		Name:         l.Name(),
		VenueType:    l.VenueType(),
		Notes:        l.Notes(),
		SpeakerSetup: speakers,
		IsTemporary:  l.IsTemporary(),
		CreatedAt:    l.CreatedAt(),
	}
}

func ToLocationDTOs(ls []*location.Location) []*LocationDTO {
	out := make([]*LocationDTO, 0, len(ls))
	for _, l := range ls {
		out = append(out, ToLocationDTO(l))
	}
	return out
}

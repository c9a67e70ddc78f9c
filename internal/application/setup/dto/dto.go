package dto

import (
	"encoding/json"
	"time"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/biztime"
)

type SetupDTO struct {
	ID                  string                           `json:"id"`
	UserID              string                           `json:"user_id"`
	LocationID          string                           `json:"location_id"`
	EventName           string                           `json:"event_name"`
	EventDate           *string                          `json:"event_date"`
	Performers          []setup.PerformerSlot            `json:"performers"`
	ChannelConfig       json.RawMessage                  `json:"channel_config"`
	EQSettings          json.RawMessage                  `json:"eq_settings"`
	CompressionSettings json.RawMessage                  `json:"compression_settings"`
	FXSettings          json.RawMessage                  `json:"fx_settings"`
	Instructions        string                           `json:"instructions"`
	TroubleshootingTips []string                         `json:"troubleshooting_tips"`
	Rating              *int                             `json:"rating"`
	Notes               string                           `json:"notes"`
	Corrections         map[string]setup.CorrectionEntry `json:"corrections"`
	IsShared            bool                             `json:"is_shared"`
	SharedFullAccess    bool                             `json:"shared_full_access"`
	IsOwner             bool                             `json:"is_owner"`
	CreatedAt           time.Time                        `json:"created_at"`
	UpdatedAt           time.Time                        `json:"updated_at"`
}

// SetupSummaryDTO is the list view of a setup.
type SetupSummaryDTO struct {
	ID               string                `json:"id"`
	LocationID       string                `json:"location_id"`
	EventName        string                `json:"event_name"`
	EventDate        *string               `json:"event_date"`
	Performers       []setup.PerformerSlot `json:"performers"`
	Rating           *int                  `json:"rating"`
	IsShared         bool                  `json:"is_shared"`
	SharedFullAccess bool                  `json:"shared_full_access"`
	IsOwner          bool                  `json:"is_owner"`
	CreatedAt        time.Time             `json:"created_at"`
}

type MatchRefDTO struct {
	SetupID   string    `json:"setup_id"`
	EventName string    `json:"event_name"`
	EventDate *string   `json:"event_date"`
	Rating    *int      `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type MatchResultDTO struct {
	HasMatch      bool         `json:"has_match"`
	MatchQuality  string       `json:"match_quality"`
	MatchingSetup *MatchRefDTO `json:"matching_setup"`
	Suggestion    string       `json:"suggestion"`
}

type CorrectionDTO struct {
	SetupID   string                `json:"setup_id"`
	Channel   string                `json:"channel"`
	Entry     setup.CorrectionEntry `json:"entry"`
	UpdatedBy string                `json:"updated_by"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type LearningCorrectionDTO struct {
	SetupID   string                `json:"setup_id"`
	EventName string                `json:"event_name"`
	EventDate *string               `json:"event_date"`
	Channel   string                `json:"channel"`
	Entry     setup.CorrectionEntry `json:"entry"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := biztime.FormatDate(t)
	return &s
}

func ToSetupDTO(s *setup.Setup, viewerID string) *SetupDTO {
	if s == nil {
		return nil
	}
	cfg := s.Config()
	tips := cfg.TroubleshootingTips
	if tips == nil {
		tips = []string{}
	}
	return &SetupDTO{
		ID:                  s.ID(),
		UserID:              s.UserID(),
		LocationID:          s.LocationID(),
		EventName:           s.EventName(),
		EventDate:           formatDate(s.EventDate()),
		Performers:          s.Performers(),
		ChannelConfig:       rawOrEmpty(cfg.ChannelConfig),
		EQSettings:          rawOrEmpty(cfg.EQSettings),
		CompressionSettings: rawOrEmpty(cfg.CompressionSettings),
		FXSettings:          rawOrEmpty(cfg.FXSettings),
		Instructions:        cfg.Instructions,
		TroubleshootingTips: tips,
		Rating:              s.Rating(),
		Notes:               s.Notes(),
		Corrections:         s.Corrections(),
		IsShared:            s.IsShared(),
		SharedFullAccess:    s.SharedFullAccess(),
		IsOwner:             s.IsOwnedBy(viewerID),
		CreatedAt:           s.CreatedAt(),
		UpdatedAt:           s.UpdatedAt(),
	}
}

func ToSetupSummaryDTOs(setups []*setup.Setup, viewerID string) []*SetupSummaryDTO {
	out := make([]*SetupSummaryDTO, 0, len(setups))
	for _, s := range setups {
		out = append(out, &SetupSummaryDTO{
			ID:               s.ID(),
			LocationID:       s.LocationID(),
			EventName:        s.EventName(),
			EventDate:        formatDate(s.EventDate()),
			Performers:       s.Performers(),
			Rating:           s.Rating(),
			IsShared:         s.IsShared(),
			SharedFullAccess: s.SharedFullAccess(),
			IsOwner:          s.IsOwnedBy(viewerID),
			CreatedAt:        s.CreatedAt(),
		})
	}
	return out
}

func ToMatchResultDTO(r setup.MatchResult) *MatchResultDTO {
	out := &MatchResultDTO{
		HasMatch:     r.HasMatch,
		MatchQuality: string(r.Quality),
		Suggestion:   r.Suggestion,
	}
	if r.Match != nil {
		out.MatchingSetup = &MatchRefDTO{
			SetupID:   r.Match.SetupID,
			EventName: r.Match.EventName,
			EventDate: formatDate(r.Match.EventDate),
			Rating:    r.Match.Rating,
			CreatedAt: r.Match.CreatedAt,
		}
	}
	return out
}

func ToCorrectionDTO(c *setup.Correction) *CorrectionDTO {
	return &CorrectionDTO{
		SetupID:   c.SetupID,
		Channel:   c.Channel,
		Entry:     c.Entry,
		UpdatedBy: c.UpdatedBy,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToLearningCorrectionDTOs(cs []setup.LearningCorrection) []*LearningCorrectionDTO {
	out := make([]*LearningCorrectionDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, &LearningCorrectionDTO{
			SetupID:   c.SetupID,
			EventName: c.EventName,
			EventDate: formatDate(c.EventDate),
			Channel:   c.Channel,
			Entry:     c.Entry,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return out
}

func rawOrEmpty(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage(`{}`)
	}
	return raw
}

package setup

import (
	"strings"
	"time"
)

// CorrectionEntry records what an operator changed on one channel during an event.
type CorrectionEntry struct {
	Instrument         string            `json:"instrument"`
	Mic                string            `json:"mic"`
	EQChanges          map[string]string `json:"eq_changes,omitempty"`
	CompressionChanges map[string]string `json:"compression_changes,omitempty"`
	GainChange         string            `json:"gain_change,omitempty"`
	Notes              string            `json:"notes,omitempty"`
}

// Correction is one ledger row: the latest entry for a (setup, channel).
type Correction struct {
	SetupID   string
	Channel   string
	Entry     CorrectionEntry
	UpdatedBy string
	UpdatedAt time.Time
}

// NewCorrection validates the channel identifier and stamps the write.
func NewCorrection(setupID, channel, updatedBy string, entry CorrectionEntry) (*Correction, error) {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return nil, ErrChannelRequired
	}
	if len(channel) > 50 {
		return nil, ErrChannelTooLong
	}
	return &Correction{
		SetupID:   setupID,
		Channel:   channel,
		Entry:     entry,
		UpdatedBy: updatedBy,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// InstrumentKey is the normalized instrument used for learning-context filters.
func (c *Correction) InstrumentKey() string {
	return NormalizeIdentifier(c.Entry.Instrument)
}

// LearningCorrection is a correction enriched with the event it came from.
type LearningCorrection struct {
	SetupID   string
	EventName string
	EventDate *time.Time
	Channel   string
	Entry     CorrectionEntry
	UpdatedAt time.Time
}

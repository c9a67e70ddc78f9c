package location

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired = errors.New("location name is required")
	ErrNameTooLong  = errors.New("location name exceeds maximum length of 200 characters")
	ErrOwnerMissing = errors.New("location owner is required")
)

// Location is a venue referenced by setups.
type Location struct {
	id           string
	userID       string
	name         string
	venueType    string
	notes        string
	speakerSetup json.RawMessage
	isTemporary  bool
	createdAt    time.Time
}

func NewLocation(userID, name, venueType, notes string, speakerSetup json.RawMessage, isTemporary bool) (*Location, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrOwnerMissing
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) > 200 {
		return nil, ErrNameTooLong
	}
	return &Location{
		id:           uuid.NewString(),
		userID:       userID,
		name:         name,
		venueType:    strings.TrimSpace(venueType),
		notes:        notes,
		speakerSetup: speakerSetup,
		isTemporary:  isTemporary,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructLocation(id, userID, name, venueType, notes string, speakerSetup json.RawMessage, isTemporary bool, createdAt time.Time) *Location {
	return &Location{
		id:           id,
		userID:       userID,
		name:         name,
		venueType:    venueType,
		notes:        notes,
		speakerSetup: speakerSetup,
		isTemporary:  isTemporary,
		createdAt:    createdAt,
	}
}

func (l *Location) ID() string { return l.id }
func (l *Location) UserID() string { return l.userID }
func (l *Location) Name() string { return l.name }
func (l *Location) VenueType() string { return l.venueType }
func (l *Location) Notes() string { return l.notes }
func (l *Location) SpeakerSetup() json.RawMessage { return l.speakerSetup }
func (l *Location) IsTemporary() bool { return l.isTemporary }
func (l *Location) CreatedAt() time.Time { return l.createdAt }

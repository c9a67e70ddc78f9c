package setup

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Setup is one event's mixer configuration at a location.
type Setup struct {
	id               string
	userID           string
	locationID       string
	eventName        string
	eventDate        *time.Time
	performers       []PerformerSlot
	config           GeneratedConfig
	rating           *int
	notes            string
	corrections      map[string]CorrectionEntry
	isShared         bool
	sharedFullAccess bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewSetup creates a setup owned by userID with a freshly generated config.
func NewSetup(
	userID string,
	locationID string,
	eventName string,
	eventDate *time.Time,
	performers []PerformerSlot,
	config GeneratedConfig,
) (*Setup, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrOwnerRequired
	}
	if strings.TrimSpace(locationID) == "" {
		return nil, ErrLocationRequired
	}
	eventName = strings.TrimSpace(eventName)
	if len(eventName) > 200 {
		return nil, ErrEventNameTooLong
	}
	if _, err := NormalizeLineup(performers); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Setup{
		id:          uuid.NewString(),
		userID:      userID,
		locationID:  locationID,
		eventName:   eventName,
		eventDate:   eventDate,
		performers:  clonePerformers(performers),
		config:      config.Clone(),
		corrections: map[string]CorrectionEntry{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewReusedSetup materializes a new event from a prior setup's configuration.
// Rating, notes, corrections and sharing start empty; the requester owns it.
func NewReusedSetup(
	source *Setup,
	userID string,
	locationID string,
	eventName string,
	eventDate *time.Time,
	performers []PerformerSlot,
) (*Setup, error) {
	return NewSetup(userID, locationID, eventName, eventDate, performers, source.config)
}

// ReconstructSetup rebuilds a setup from persistence.
func ReconstructSetup(
	id string,
	userID string,
	locationID string,
	eventName string,
	eventDate *time.Time,
	performers []PerformerSlot,
	config GeneratedConfig,
	rating *int,
	notes string,
	isShared bool,
	sharedFullAccess bool,
	createdAt, updatedAt time.Time,
) *Setup {
	return &Setup{
		id:               id,
		userID:           userID,
		locationID:       locationID,
		eventName:        eventName,
		eventDate:        eventDate,
		performers:       performers,
		config:           config,
		rating:           rating,
		notes:            notes,
		corrections:      map[string]CorrectionEntry{},
		isShared:         isShared,
		sharedFullAccess: isShared && sharedFullAccess,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s *Setup) ID() string { return s.id }
func (s *Setup) UserID() string { return s.userID }
func (s *Setup) LocationID() string { return s.locationID }
func (s *Setup) EventName() string { return s.eventName }
func (s *Setup) EventDate() *time.Time { return s.eventDate }
func (s *Setup) Performers() []PerformerSlot { return clonePerformers(s.performers) }
func (s *Setup) Config() GeneratedConfig { return s.config.Clone() }
func (s *Setup) Rating() *int { return s.rating }
func (s *Setup) Notes() string { return s.notes }
func (s *Setup) IsShared() bool { return s.isShared }
func (s *Setup) SharedFullAccess() bool { return s.sharedFullAccess }
func (s *Setup) CreatedAt() time.Time { return s.createdAt }
func (s *Setup) UpdatedAt() time.Time { return s.updatedAt }

// Corrections returns a copy of the per-channel corrections loaded on the setup.
func (s *Setup) Corrections() map[string]CorrectionEntry {
	out := make(map[string]CorrectionEntry, len(s.corrections))
	for ch, e := range s.corrections {
		out[ch] = e
	}
	return out
}

// Lineup is the leniently normalized lineup used when the setup is a match candidate.
func (s *Setup) Lineup() Lineup {
	return normalizeStored(s.performers)
}

func (s *Setup) IsOwnedBy(userID string) bool {
	return userID != "" && s.userID == userID
}

// ApplyGeneration replaces the config after a refresh. A non-nil performers
// slice replaces the lineup as well.
func (s *Setup) ApplyGeneration(config GeneratedConfig, performers []PerformerSlot) error {
	if performers != nil {
		if _, err := NormalizeLineup(performers); err != nil {
			return err
		}
		s.performers = clonePerformers(performers)
	}
	s.config = config.Clone()
	s.touch()
	return nil
}

func (s *Setup) SetRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	s.rating = &rating
	s.touch()
	return nil
}

func (s *Setup) SetNotes(notes string) {
	s.notes = notes
	s.touch()
}

// SetSharing updates visibility; full access requires sharing.
func (s *Setup) SetSharing(shared, fullAccess bool) {
	s.isShared = shared
	s.sharedFullAccess = shared && fullAccess
	s.touch()
}

// PutCorrection replaces the entry for a channel in the loaded view.
func (s *Setup) PutCorrection(channel string, entry CorrectionEntry) {
	if s.corrections == nil {
		s.corrections = map[string]CorrectionEntry{}
	}
	s.corrections[channel] = entry
}

// Touch marks the setup modified without changing any field.
func (s *Setup) Touch() {
	s.touch()
}

func (s *Setup) touch() {
	s.updatedAt = time.Now().UTC()
}

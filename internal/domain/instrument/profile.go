package instrument

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/hsaberwal/serunner/internal/domain/setup"
)

var (
	ErrNameRequired    = errors.New("instrument name is required")
	ErrNameTooLong     = errors.New("instrument name exceeds maximum length of 100 characters")
	ErrInvalidCategory = errors.New("invalid instrument category")
)

type Category string

const (
	CategoryVocals     Category = "vocals"
	CategorySpeech     Category = "speech"
	CategoryPercussion Category = "percussion"
	CategoryWind       Category = "wind"
	CategoryStrings    Category = "strings"
	CategoryKeys       Category = "keys"
	CategoryOther      Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryVocals, CategorySpeech, CategoryPercussion, CategoryWind,
		CategoryStrings, CategoryKeys, CategoryOther:
		return true
	}
	return false
}

// Learned is what the generator returns when researching an instrument.
type Learned struct {
	DisplayName         string          `json:"display_name"`
	Description         string          `json:"description"`
	MicRecommendations  json.RawMessage `json:"mic_recommendations"`
	EQSettings          json.RawMessage `json:"eq_settings"`
	CompressionSettings json.RawMessage `json:"compression_settings"`
	FXRecommendations   json.RawMessage `json:"fx_recommendations"`
	MixingNotes         string          `json:"mixing_notes"`
}

// Profile is a user's learned instrument, offered as a performer type and
// fed back into setup generation.
type Profile struct {
	id        string
	userID    string
	name      string
	category  Category
	valueKey  string
	userNotes string
	learned   Learned
	createdAt time.Time
	updatedAt time.Time
}

func NewProfile(userID, name string, category Category, userNotes string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) > 100 {
		return nil, ErrNameTooLong
	}
	if category == "" {
		category = CategoryOther
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	now := time.Now().UTC()
	return &Profile{
		id:        uuid.NewString(),
		userID:    userID,
		name:      name,
		category:  category,
		valueKey:  ValueKey(name),
		userNotes: userNotes,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProfile(id, userID, name string, category Category, valueKey, userNotes string, learned Learned, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		id:        id,
		userID:    userID,
		name:      name,
		category:  category,
		valueKey:  valueKey,
		userNotes: userNotes,
		learned:   learned,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ValueKey derives the performer-type key: normalized, with runs of
// non-alphanumerics collapsed to "_".
func ValueKey(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range setup.NormalizeIdentifier(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

func (p *Profile) ID() string { return p.id }
func (p *Profile) UserID() string { return p.userID }
func (p *Profile) Name() string { return p.name }
func (p *Profile) Category() Category { return p.category }
func (p *Profile) ValueKey() string { return p.valueKey }
func (p *Profile) UserNotes() string { return p.userNotes }
func (p *Profile) Learned() Learned { return p.learned }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// DisplayName falls back to the name when nothing was learned.
func (p *Profile) DisplayName() string {
	if p.learned.DisplayName != "" {
		return p.learned.DisplayName
	}
	return p.name
}

func (p *Profile) ApplyLearned(l Learned) {
	p.learned = l
	p.updatedAt = time.Now().UTC()
}

// PromptNote summarizes the profile for the setup generator.
func (p *Profile) PromptNote() setup.InstrumentNote {
	return setup.InstrumentNote{
		Name:        p.DisplayName(),
		Category:    string(p.category),
		MixingNotes: p.learned.MixingNotes,
		EQSettings:  p.learned.EQSettings,
	}
}

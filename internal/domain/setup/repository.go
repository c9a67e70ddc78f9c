package setup

import "context"

// Repository persists setups. GetByID returns (nil, nil) when the setup does not exist.
type Repository interface {
	Create(ctx context.Context, s *Setup) error
	Update(ctx context.Context, s *Setup) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Setup, error)
	// ListMatchCandidates returns setups at the location owned by userID or
	// shared, newest first, at most limit rows.
	ListMatchCandidates(ctx context.Context, locationID, userID string, limit int) ([]*Setup, error)
	// ListPastSetups returns readable setups at the location rated at least
	// minRating, best rated first.
	ListPastSetups(ctx context.Context, locationID, userID string, minRating, limit int) ([]*Setup, error)
	List(ctx context.Context, filter ListFilter) ([]*Setup, int64, error)
}

// ListFilter selects the setups visible to UserID.
type ListFilter struct {
	UserID        string
	LocationID    string
	IncludeShared bool
	Page          int
	PageSize      int
}

// CorrectionRepository is the per-channel correction ledger.
type CorrectionRepository interface {
	// Upsert replaces the entry for (setup, channel).
	Upsert(ctx context.Context, c *Correction) error
	ListBySetup(ctx context.Context, setupID string) ([]*Correction, error)
	DeleteBySetup(ctx context.Context, setupID string) error
	ListLearningContext(ctx context.Context, q LearningContextQuery) ([]LearningCorrection, error)
}

// LearningContextQuery selects corrections at a location from setups the
// requester can read. An empty InstrumentKey means all instruments.
type LearningContextQuery struct {
	LocationID    string
	RequesterID   string
	InstrumentKey string
	Limit         int
}

package instrument

import "context"

type Repository interface {
	// Save inserts or replaces the user's profile with the same value key.
	Save(ctx context.Context, p *Profile) error
	ListByUser(ctx context.Context, userID string) ([]*Profile, error)
	// FindByValueKeys returns the user's profiles whose value key is in keys.
	FindByValueKeys(ctx context.Context, userID string, keys []string) ([]*Profile, error)
}

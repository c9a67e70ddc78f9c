package location

import "context"

// Repository persists locations. GetByID returns (nil, nil) when missing.
type Repository interface {
	Create(ctx context.Context, l *Location) error
	GetByID(ctx context.Context, id string) (*Location, error)
	ListByUser(ctx context.Context, userID string) ([]*Location, error)
}

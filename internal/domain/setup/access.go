package setup

import "context"

// Action is an operation checked against a setup's sharing rules.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Actor is the authenticated caller.
type Actor struct {
	UserID string
	Role   string
}

// AccessPolicy decides whether an actor may read or write a setup. Owners
// may do both; is_shared grants read; is_shared with full access grants write.
type AccessPolicy interface {
	Can(ctx context.Context, actor Actor, s *Setup, action Action) (bool, error)
}

package setup

import "errors"

var (
	ErrEmptyLineup      = errors.New("at least one performer with a type is required")
	ErrInvalidCount     = errors.New("performer count must be at least 1")
	ErrLocationRequired = errors.New("location ID is required")
	ErrOwnerRequired    = errors.New("owner user ID is required")
	ErrEventNameTooLong = errors.New("event name exceeds maximum length of 200 characters")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrChannelRequired  = errors.New("correction channel is required")
	ErrChannelTooLong   = errors.New("correction channel exceeds maximum length of 50 characters")
)

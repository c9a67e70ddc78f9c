package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/location/dto"
	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

// CreateLocationUseCase registers a venue owned by the caller.
type CreateLocationUseCase struct {
	repo      location.Repository
	sanitizer TextSanitizer
	logger    logger.Interface
}

func NewCreateLocationUseCase(repo location.Repository, sanitizer TextSanitizer, logger logger.Interface) *CreateLocationUseCase {
	return &CreateLocationUseCase{
		repo:      repo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *CreateLocationUseCase) Execute(ctx context.Context, userID string, req dto.CreateLocationRequest) (*dto.LocationDTO, error) {
	loc, err := location.NewLocation(
		userID,
		uc.sanitizer.PlainText(req.Name),
		req.VenueType,
		uc.sanitizer.PlainText(req.Notes),
		req.SpeakerSetup,
		req.IsTemporary,
	)
	if err != nil {
		if stderrors.Is(err, location.ErrNameRequired) || stderrors.Is(err, location.ErrNameTooLong) {
			return nil, errors.NewValidationError(err.Error())
		}
		return nil, err
	}

	if err := uc.repo.Create(ctx, loc); err != nil {
		uc.logger.Errorw("failed to save location", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to save location: %w", err)
	}

	uc.logger.Infow("location created", "location_id", loc.ID(), "user_id", userID, "name", loc.Name())
	return dto.ToLocationDTO(loc), nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/location/dto"
	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

// GetLocationUseCase loads a venue. Venues are readable by any
// authenticated user so shared setups can be resolved.
type GetLocationUseCase struct {
	repo   location.Repository
	logger logger.Interface
}

func NewGetLocationUseCase(repo location.Repository, logger logger.Interface) *GetLocationUseCase {
	return &GetLocationUseCase{repo: repo, logger: logger}
}

func (uc *GetLocationUseCase) Execute(ctx context.Context, id string) (*dto.LocationDTO, error) {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get location", "error", err, "location_id", id)
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if loc == nil {
		return nil, errors.NewNotFoundError("location not found")
	}
	return dto.ToLocationDTO(loc), nil
}

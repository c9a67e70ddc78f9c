package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/location/dto"
	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type ListLocationsUseCase struct {
	repo   location.Repository
	logger logger.Interface
}

func NewListLocationsUseCase(repo location.Repository, logger logger.Interface) *ListLocationsUseCase {
	return &ListLocationsUseCase{repo: repo, logger: logger}
}

func (uc *ListLocationsUseCase) Execute(ctx context.Context, userID string) ([]*dto.LocationDTO, error) {
	locations, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list locations", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return dto.ToLocationDTOs(locations), nil
}

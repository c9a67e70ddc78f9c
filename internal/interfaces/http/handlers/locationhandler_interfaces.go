package handlers

import (
	"context"

	locdto "github.com/hsaberwal/serunner/internal/application/location/dto"
)

// Use case interfaces for LocationHandler

type createLocationUseCase interface {
	Execute(ctx context.Context, userID string, req locdto.CreateLocationRequest) (*locdto.LocationDTO, error)
}

type getLocationUseCase interface {
	Execute(ctx context.Context, id string) (*locdto.LocationDTO, error)
}

type listLocationsUseCase interface {
	Execute(ctx context.Context, userID string) ([]*locdto.LocationDTO, error)
}

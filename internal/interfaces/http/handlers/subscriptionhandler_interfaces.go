package handlers

import (
	"context"

	subdto "github.com/hsaberwal/serunner/internal/application/subscription/dto"
	"github.com/hsaberwal/serunner/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type getUsageUseCase interface {
	Execute(ctx context.Context, query usecases.GetUsageQuery) (*subdto.UsageDTO, error)
}

package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/instrument/dto"
	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type ListInstrumentsUseCase struct {
	repo   instrument.Repository
	logger logger.Interface
}

func NewListInstrumentsUseCase(repo instrument.Repository, logger logger.Interface) *ListInstrumentsUseCase {
	return &ListInstrumentsUseCase{repo: repo, logger: logger}
}

func (uc *ListInstrumentsUseCase) Execute(ctx context.Context, userID string) ([]*dto.InstrumentDTO, error) {
	profiles, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list instruments", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	return dto.ToInstrumentDTOs(profiles), nil
}

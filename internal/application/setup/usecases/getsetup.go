package usecases

import (
	"context"

	"github.com/hsaberwal/serunner/internal/application/setup/dto"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type GetSetupQuery struct {
	Actor   setup.Actor
	SetupID string
}

type GetSetupUseCase struct {
	setupRepo      setup.Repository
	correctionRepo setup.CorrectionRepository
	policy         setup.AccessPolicy
	logger         logger.Interface
}

func NewGetSetupUseCase(
	setupRepo setup.Repository,
	correctionRepo setup.CorrectionRepository,
	policy setup.AccessPolicy,
	logger logger.Interface,
) *GetSetupUseCase {
	return &GetSetupUseCase{
		setupRepo:      setupRepo,
		correctionRepo: correctionRepo,
		policy:         policy,
		logger:         logger,
	}
}

func (uc *GetSetupUseCase) Execute(ctx context.Context, query GetSetupQuery) (*dto.SetupDTO, error) {
	s, err := loadAuthorized(ctx, uc.setupRepo, uc.policy, query.Actor, query.SetupID, setup.ActionRead)
	if err != nil {
		return nil, err
	}
	if err := loadCorrections(ctx, uc.correctionRepo, s); err != nil {
		uc.logger.Errorw("failed to load corrections", "error", err, "setup_id", s.ID())
		return nil, err
	}
	return dto.ToSetupDTO(s, query.Actor.UserID), nil
}

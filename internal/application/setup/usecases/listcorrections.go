package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type ListCorrectionsQuery struct {
	Actor   setup.Actor
	SetupID string
}

type ListCorrectionsUseCase struct {
	setupRepo      setup.Repository
	correctionRepo setup.CorrectionRepository
	policy         setup.AccessPolicy
	logger         logger.Interface
}

func NewListCorrectionsUseCase(
	setupRepo setup.Repository,
	correctionRepo setup.CorrectionRepository,
	policy setup.AccessPolicy,
	logger logger.Interface,
) *ListCorrectionsUseCase {
	return &ListCorrectionsUseCase{
		setupRepo:      setupRepo,
		correctionRepo: correctionRepo,
		policy:         policy,
		logger:         logger,
	}
}

// Execute returns the setup's corrections keyed by channel.
func (uc *ListCorrectionsUseCase) Execute(ctx context.Context, query ListCorrectionsQuery) (map[string]setup.CorrectionEntry, error) {
	s, err := loadAuthorized(ctx, uc.setupRepo, uc.policy, query.Actor, query.SetupID, setup.ActionRead)
	if err != nil {
		return nil, err
	}

	corrections, err := uc.correctionRepo.ListBySetup(ctx, s.ID())
	if err != nil {
		uc.logger.Errorw("failed to list corrections", "error", err, "setup_id", s.ID())
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}

	out := make(map[string]setup.CorrectionEntry, len(corrections))
	for _, c := range corrections {
		out[c.Channel] = c.Entry
	}
	return out, nil
}

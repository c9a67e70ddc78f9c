package handlers

import (
	"context"

	"github.com/hsaberwal/serunner/internal/application/setup/dto"
	"github.com/hsaberwal/serunner/internal/application/setup/usecases"
	"github.com/hsaberwal/serunner/internal/domain/setup"
)

// Use case interfaces for SetupHandler

type checkMatchUseCase interface {
	Execute(ctx context.Context, cmd usecases.CheckMatchCommand) (*dto.MatchResultDTO, error)
}

type reuseSetupUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReuseSetupCommand) (*dto.SetupDTO, error)
}

type generateSetupUseCase interface {
	Execute(ctx context.Context, cmd usecases.GenerateSetupCommand) (*dto.SetupDTO, error)
}

type refreshSetupUseCase interface {
	Execute(ctx context.Context, cmd usecases.RefreshSetupCommand) (*dto.SetupDTO, error)
}

type updateSetupUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSetupCommand) (*dto.SetupDTO, error)
}

type recordCorrectionUseCase interface {
	Execute(ctx context.Context, cmd usecases.RecordCorrectionCommand) (*dto.CorrectionDTO, error)
}

type listCorrectionsUseCase interface {
	Execute(ctx context.Context, query usecases.ListCorrectionsQuery) (map[string]setup.CorrectionEntry, error)
}

type getSetupUseCase interface {
	Execute(ctx context.Context, query usecases.GetSetupQuery) (*dto.SetupDTO, error)
}

type listSetupsUseCase interface {
	Execute(ctx context.Context, query usecases.ListSetupsQuery) (*usecases.ListSetupsResult, error)
}

type deleteSetupUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteSetupCommand) error
}

type learningContextUseCase interface {
	Execute(ctx context.Context, query usecases.LearningContextQuery) ([]*dto.LearningCorrectionDTO, error)
}

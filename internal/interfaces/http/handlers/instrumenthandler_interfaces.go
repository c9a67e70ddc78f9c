package handlers

import (
	"context"

	instdto "github.com/hsaberwal/serunner/internal/application/instrument/dto"
	instusecases "github.com/hsaberwal/serunner/internal/application/instrument/usecases"
)

// Use case interfaces for InstrumentHandler

type learnInstrumentUseCase interface {
	Execute(ctx context.Context, cmd instusecases.LearnInstrumentCommand) (*instdto.InstrumentDTO, error)
}

type listInstrumentsUseCase interface {
	Execute(ctx context.Context, userID string) ([]*instdto.InstrumentDTO, error)
}

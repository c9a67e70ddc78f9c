package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/authorization"
	"github.com/hsaberwal/serunner/internal/shared/db"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type DeleteSetupCommand struct {
	Actor   setup.Actor
	SetupID string
}

// DeleteSetupUseCase removes a setup and its corrections. Only the owner or
// an admin may delete.
type DeleteSetupUseCase struct {
	setupRepo      setup.Repository
	correctionRepo setup.CorrectionRepository
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewDeleteSetupUseCase(
	setupRepo setup.Repository,
	correctionRepo setup.CorrectionRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteSetupUseCase {
	return &DeleteSetupUseCase{
		setupRepo:      setupRepo,
		correctionRepo: correctionRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *DeleteSetupUseCase) Execute(ctx context.Context, cmd DeleteSetupCommand) error {
	s, err := uc.setupRepo.GetByID(ctx, cmd.SetupID)
	if err != nil {
		return fmt.Errorf("failed to get setup: %w", err)
	}
	if s == nil {
		return errors.NewNotFoundError("setup not found")
	}
	if !s.IsOwnedBy(cmd.Actor.UserID) && !authorization.ParseUserRole(cmd.Actor.Role).IsAdmin() {
		return errors.NewForbiddenError("only the owner can delete this setup")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.correctionRepo.DeleteBySetup(txCtx, s.ID()); err != nil {
			return err
		}
		return uc.setupRepo.Delete(txCtx, s.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete setup", "error", err, "setup_id", s.ID())
		return fmt.Errorf("failed to delete setup: %w", err)
	}

	uc.logger.Infow("setup deleted", "setup_id", s.ID(), "user_id", cmd.Actor.UserID)
	return nil
}

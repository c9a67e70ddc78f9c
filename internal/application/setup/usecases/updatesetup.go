package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/setup/dto"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/db"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

// UpdateSetupCommand carries a partial edit. Nil fields are left untouched.
type UpdateSetupCommand struct {
	Actor            setup.Actor
	SetupID          string
	Rating           *int
	Notes            *string
	Corrections      map[string]setup.CorrectionEntry
	IsShared         *bool
	SharedFullAccess *bool
}

func (c UpdateSetupCommand) changesSharing() bool {
	return c.IsShared != nil || c.SharedFullAccess != nil
}

// UpdateSetupUseCase applies field-level edits. Concurrent edits are
// last-write-wins per field and per correction channel.
type UpdateSetupUseCase struct {
	setupRepo      setup.Repository
	correctionRepo setup.CorrectionRepository
	policy         setup.AccessPolicy
	sanitizer      TextSanitizer
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewUpdateSetupUseCase(
	setupRepo setup.Repository,
	correctionRepo setup.CorrectionRepository,
	policy setup.AccessPolicy,
	sanitizer TextSanitizer,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateSetupUseCase {
	return &UpdateSetupUseCase{
		setupRepo:      setupRepo,
		correctionRepo: correctionRepo,
		policy:         policy,
		sanitizer:      sanitizer,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *UpdateSetupUseCase) Execute(ctx context.Context, cmd UpdateSetupCommand) (*dto.SetupDTO, error) {
	s, err := loadAuthorized(ctx, uc.setupRepo, uc.policy, cmd.Actor, cmd.SetupID, setup.ActionWrite)
	if err != nil {
		return nil, err
	}
	if cmd.changesSharing() && !s.IsOwnedBy(cmd.Actor.UserID) {
		return nil, errors.NewForbiddenError("only the owner can change sharing")
	}

	if cmd.Rating != nil {
		if err := s.SetRating(*cmd.Rating); err != nil {
			return nil, asValidation(err)
		}
	}
	if cmd.Notes != nil {
		s.SetNotes(uc.sanitizer.PlainText(*cmd.Notes))
	}
	if cmd.changesSharing() {
		shared := s.IsShared()
		if cmd.IsShared != nil {
			shared = *cmd.IsShared
		}
		full := s.SharedFullAccess()
		if cmd.SharedFullAccess != nil {
			full = *cmd.SharedFullAccess
		}
		s.SetSharing(shared, full)
	}

	corrections := make([]*setup.Correction, 0, len(cmd.Corrections))
	for channel, entry := range cmd.Corrections {
		entry.Notes = uc.sanitizer.PlainText(entry.Notes)
		c, err := setup.NewCorrection(s.ID(), channel, cmd.Actor.UserID, entry)
		if err != nil {
			return nil, asValidation(err)
		}
		corrections = append(corrections, c)
	}
	if len(corrections) > 0 {
		s.Touch()
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.setupRepo.Update(txCtx, s); err != nil {
			return err
		}
		for _, c := range corrections {
			if err := uc.correctionRepo.Upsert(txCtx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update setup", "error", err, "setup_id", s.ID())
		return nil, fmt.Errorf("failed to update setup: %w", err)
	}

	if err := loadCorrections(ctx, uc.correctionRepo, s); err != nil {
		return nil, err
	}

	uc.logger.Infow("setup updated",
		"setup_id", s.ID(),
		"user_id", cmd.Actor.UserID,
		"corrections", len(corrections))

	return dto.ToSetupDTO(s, cmd.Actor.UserID), nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/setup/dto"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type RecordCorrectionCommand struct {
	Actor   setup.Actor
	SetupID string
	Channel string
	Entry   setup.CorrectionEntry
}

// RecordCorrectionUseCase replaces the ledger entry for one channel. The
// previous entry is overwritten, never merged.
type RecordCorrectionUseCase struct {
	setupRepo      setup.Repository
	correctionRepo setup.CorrectionRepository
	policy         setup.AccessPolicy
	sanitizer      TextSanitizer
	logger         logger.Interface
}

func NewRecordCorrectionUseCase(
	setupRepo setup.Repository,
	correctionRepo setup.CorrectionRepository,
	policy setup.AccessPolicy,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *RecordCorrectionUseCase {
	return &RecordCorrectionUseCase{
		setupRepo:      setupRepo,
		correctionRepo: correctionRepo,
		policy:         policy,
		sanitizer:      sanitizer,
		logger:         logger,
	}
}

func (uc *RecordCorrectionUseCase) Execute(ctx context.Context, cmd RecordCorrectionCommand) (*dto.CorrectionDTO, error) {
	entry := cmd.Entry
	entry.Notes = uc.sanitizer.PlainText(entry.Notes)

	c, err := setup.NewCorrection(cmd.SetupID, cmd.Channel, cmd.Actor.UserID, entry)
	if err != nil {
		return nil, asValidation(err)
	}

	s, err := loadAuthorized(ctx, uc.setupRepo, uc.policy, cmd.Actor, cmd.SetupID, setup.ActionWrite)
	if err != nil {
		return nil, err
	}

	if err := uc.correctionRepo.Upsert(ctx, c); err != nil {
		uc.logger.Errorw("failed to record correction", "error", err, "setup_id", s.ID(), "channel", c.Channel)
		return nil, fmt.Errorf("failed to record correction: %w", err)
	}

	uc.logger.Infow("correction recorded",
		"setup_id", s.ID(),
		"channel", c.Channel,
		"instrument", c.InstrumentKey(),
		"user_id", cmd.Actor.UserID)

	return dto.ToCorrectionDTO(c), nil
}

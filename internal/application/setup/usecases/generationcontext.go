package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

// contextBuilder gathers what the generator sees besides the lineup: past
// highly rated setups at the venue, corrections made there, and the
// requester's learned instruments for the lineup's types.
type contextBuilder struct {
	setupRepo      setup.Repository
	correctionRepo setup.CorrectionRepository
	instrumentRepo instrument.Repository
	settings       Settings
	logger         logger.Interface
}

func (b *contextBuilder) build(
	ctx context.Context,
	requesterID string,
	loc *location.Location,
	performers []setup.PerformerSlot,
	excludeSetupID string,
) (setup.GenerationRequest, error) {
	req := setup.GenerationRequest{
		Location: setup.VenueInfo{
			Name:         loc.Name(),
			VenueType:    loc.VenueType(),
			Notes:        loc.Notes(),
			SpeakerSetup: loc.SpeakerSetup(),
		},
		Performers: performers,
	}

	if b.settings.PastSetupsLimit > 0 {
		past, err := b.setupRepo.ListPastSetups(ctx, loc.ID(), requesterID, b.settings.PastSetupMinRating, b.settings.PastSetupsLimit+1)
		if err != nil {
			return req, fmt.Errorf("failed to list past setups: %w", err)
		}
		for _, s := range past {
			if s.ID() == excludeSetupID || len(req.PastSetups) == b.settings.PastSetupsLimit {
				continue
			}
			req.PastSetups = append(req.PastSetups, s)
		}
	}

	corrections, err := b.correctionRepo.ListLearningContext(ctx, setup.LearningContextQuery{
		LocationID:  loc.ID(),
		RequesterID: requesterID,
		Limit:       b.settings.LearningContextLimit,
	})
	if err != nil {
		return req, fmt.Errorf("failed to load learning context: %w", err)
	}
	req.PriorCorrections = corrections

	if b.instrumentRepo != nil {
		keys := make([]string, 0, len(performers))
		for _, p := range performers {
			if k := instrument.ValueKey(p.Type); k != "" {
				keys = append(keys, k)
			}
		}
		profiles, err := b.instrumentRepo.FindByValueKeys(ctx, requesterID, keys)
		if err != nil {
			// Instrument notes only enrich the prompt.
			b.logger.Warnw("failed to load instrument profiles", "error", err, "user_id", requesterID)
		}
		for _, p := range profiles {
			req.Instruments = append(req.Instruments, p.PromptNote())
		}
	}

	return req, nil
}

// Package generator produces mixer configurations and instrument profiles
// from the hosted language model.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/logger"
	"github.com/hsaberwal/serunner/internal/shared/services/markdown"
	"github.com/hsaberwal/serunner/internal/shared/utils/logutil"
)

// Completer sends one prompt exchange to the model.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Service struct {
	completer Completer
	knowledge *Knowledge
	markdown  markdown.MarkdownService
	logger    logger.Interface
}

func NewService(completer Completer, knowledge *Knowledge, md markdown.MarkdownService, log logger.Interface) *Service {
	return &Service{
		completer: completer,
		knowledge: knowledge,
		markdown:  md,
		logger:    log.With("component", "generator"),
	}
}

// Generate asks the model for a setup. Transport failures are returned; an
// unparsable reply is not an error and comes back as raw instructions.
func (s *Service) Generate(ctx context.Context, req setup.GenerationRequest) (setup.GeneratedConfig, error) {
	userPrompt := buildSetupPrompt(req)

	reply, err := s.completer.Complete(ctx, s.knowledge.SystemPrompt(), userPrompt)
	if err != nil {
		s.logger.Errorw("setup generation failed",
			"error", err,
			"performers", len(req.Performers),
			"past_setups", len(req.PastSetups),
			"corrections", len(req.PriorCorrections))
		return setup.GeneratedConfig{}, fmt.Errorf("generate setup: %w", err)
	}

	cfg, parsed := parseGeneratedConfig(s.markdown, reply)
	if !parsed {
		s.logger.Warnw("generator reply was not valid JSON, returning raw text",
			"reply_prefix", logutil.Truncate(reply, 200))
	}
	s.logger.Infow("setup generated",
		"prompt_chars", len(userPrompt),
		"reply_chars", len(reply),
		"parsed", parsed)
	return cfg, nil
}

// LearnInstrument researches mixing settings for a new performer type.
func (s *Service) LearnInstrument(ctx context.Context, name string, category instrument.Category, notes string) (instrument.Learned, error) {
	reply, err := s.completer.Complete(ctx, learnSystemPrompt, buildLearnPrompt(name, string(category), notes))
	if err != nil {
		s.logger.Errorw("instrument learning failed", "error", err, "instrument", name)
		return instrument.Learned{}, fmt.Errorf("learn instrument: %w", err)
	}

	payload, ok := extractJSON(s.markdown, reply)
	if !ok {
		s.logger.Warnw("failed to parse instrument learning reply", "reply_prefix", logutil.Truncate(reply, 200))
		return instrument.Learned{}, fmt.Errorf("learn instrument: reply held no JSON object")
	}

	var raw struct {
		DisplayName         json.RawMessage `json:"display_name"`
		Description         json.RawMessage `json:"description"`
		MicRecommendations  json.RawMessage `json:"mic_recommendations"`
		EQSettings          json.RawMessage `json:"eq_settings"`
		CompressionSettings json.RawMessage `json:"compression_settings"`
		FXRecommendations   json.RawMessage `json:"fx_recommendations"`
		MixingNotes         json.RawMessage `json:"mixing_notes"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return instrument.Learned{}, fmt.Errorf("learn instrument: decode reply: %w", err)
	}

	learned := instrument.Learned{
		DisplayName:         textOf(raw.DisplayName),
		Description:         textOf(raw.Description),
		MicRecommendations:  objectOrEmpty(raw.MicRecommendations),
		EQSettings:          objectOrEmpty(raw.EQSettings),
		CompressionSettings: objectOrEmpty(raw.CompressionSettings),
		FXRecommendations:   objectOrEmpty(raw.FXRecommendations),
		MixingNotes:         textOf(raw.MixingNotes),
	}
	if strings.TrimSpace(learned.DisplayName) == "" {
		learned.DisplayName = name
	}
	return learned, nil
}

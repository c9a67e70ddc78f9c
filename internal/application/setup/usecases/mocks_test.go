package usecases

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
)

type mockSetupRepository struct {
	CreateFunc              func(ctx context.Context, s *setup.Setup) error
	UpdateFunc              func(ctx context.Context, s *setup.Setup) error
	DeleteFunc              func(ctx context.Context, id string) error
	GetByIDFunc             func(ctx context.Context, id string) (*setup.Setup, error)
	ListMatchCandidatesFunc func(ctx context.Context, locationID, userID string, limit int) ([]*setup.Setup, error)
	ListPastSetupsFunc      func(ctx context.Context, locationID, userID string, minRating, limit int) ([]*setup.Setup, error)
	ListFunc                func(ctx context.Context, filter setup.ListFilter) ([]*setup.Setup, int64, error)
}

func (m *mockSetupRepository) Create(ctx context.Context, s *setup.Setup) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSetupRepository) Update(ctx context.Context, s *setup.Setup) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSetupRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSetupRepository) GetByID(ctx context.Context, id string) (*setup.Setup, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSetupRepository) ListMatchCandidates(ctx context.Context, locationID, userID string, limit int) ([]*setup.Setup, error) {
	if m.ListMatchCandidatesFunc != nil {
		return m.ListMatchCandidatesFunc(ctx, locationID, userID, limit)
	}
	return nil, nil
}

func (m *mockSetupRepository) ListPastSetups(ctx context.Context, locationID, userID string, minRating, limit int) ([]*setup.Setup, error) {
	if m.ListPastSetupsFunc != nil {
		return m.ListPastSetupsFunc(ctx, locationID, userID, minRating, limit)
	}
	return nil, nil
}

func (m *mockSetupRepository) List(ctx context.Context, filter setup.ListFilter) ([]*setup.Setup, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCorrectionRepository struct {
	UpsertFunc              func(ctx context.Context, c *setup.Correction) error
	ListBySetupFunc         func(ctx context.Context, setupID string) ([]*setup.Correction, error)
	DeleteBySetupFunc       func(ctx context.Context, setupID string) error
	ListLearningContextFunc func(ctx context.Context, q setup.LearningContextQuery) ([]setup.LearningCorrection, error)
}

func (m *mockCorrectionRepository) Upsert(ctx context.Context, c *setup.Correction) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, c)
	}
	return nil
}

func (m *mockCorrectionRepository) ListBySetup(ctx context.Context, setupID string) ([]*setup.Correction, error) {
	if m.ListBySetupFunc != nil {
		return m.ListBySetupFunc(ctx, setupID)
	}
	return nil, nil
}

func (m *mockCorrectionRepository) DeleteBySetup(ctx context.Context, setupID string) error {
	if m.DeleteBySetupFunc != nil {
		return m.DeleteBySetupFunc(ctx, setupID)
	}
	return nil
}

func (m *mockCorrectionRepository) ListLearningContext(ctx context.Context, q setup.LearningContextQuery) ([]setup.LearningCorrection, error) {
	if m.ListLearningContextFunc != nil {
		return m.ListLearningContextFunc(ctx, q)
	}
	return nil, nil
}

type mockLocationRepository struct {
	CreateFunc     func(ctx context.Context, l *location.Location) error
	GetByIDFunc    func(ctx context.Context, id string) (*location.Location, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*location.Location, error)
}

func (m *mockLocationRepository) Create(ctx context.Context, l *location.Location) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	return nil
}

func (m *mockLocationRepository) GetByID(ctx context.Context, id string) (*location.Location, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockLocationRepository) ListByUser(ctx context.Context, userID string) ([]*location.Location, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

type mockInstrumentRepository struct {
	SaveFunc            func(ctx context.Context, p *instrument.Profile) error
	ListByUserFunc      func(ctx context.Context, userID string) ([]*instrument.Profile, error)
	FindByValueKeysFunc func(ctx context.Context, userID string, keys []string) ([]*instrument.Profile, error)
}

func (m *mockInstrumentRepository) Save(ctx context.Context, p *instrument.Profile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockInstrumentRepository) ListByUser(ctx context.Context, userID string) ([]*instrument.Profile, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockInstrumentRepository) FindByValueKeys(ctx context.Context, userID string, keys []string) ([]*instrument.Profile, error) {
	if m.FindByValueKeysFunc != nil {
		return m.FindByValueKeysFunc(ctx, userID, keys)
	}
	return nil, nil
}

type mockQuotaGate struct {
	TryConsumeFunc func(ctx context.Context, userID, role string, kind subscription.Kind) (*subscription.Decision, error)
	calls          int
}

func (m *mockQuotaGate) TryConsume(ctx context.Context, userID, role string, kind subscription.Kind) (*subscription.Decision, error) {
	m.calls++
	if m.TryConsumeFunc != nil {
		return m.TryConsumeFunc(ctx, userID, role, kind)
	}
	return &subscription.Decision{Allowed: true, Kind: kind, Plan: subscription.PlanFree, Used: 1, Limit: 2}, nil
}

type mockGenerator struct {
	GenerateFunc func(ctx context.Context, req setup.GenerationRequest) (setup.GeneratedConfig, error)
	calls        int
}

func (m *mockGenerator) Generate(ctx context.Context, req setup.GenerationRequest) (setup.GeneratedConfig, error) {
	m.calls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return testConfig("generated"), nil
}

// ownerSharingPolicy mirrors the production rules without casbin.
type ownerSharingPolicy struct{}

func (ownerSharingPolicy) Can(_ context.Context, actor setup.Actor, s *setup.Setup, action setup.Action) (bool, error) {
	if s == nil || actor.UserID == "" {
		return false, nil
	}
	if s.IsOwnedBy(actor.UserID) || actor.Role == "admin" {
		return true, nil
	}
	if action == setup.ActionRead {
		return s.IsShared(), nil
	}
	return s.IsShared() && s.SharedFullAccess(), nil
}

type stripSanitizer struct{}

func (stripSanitizer) PlainText(input string) string {
	return strings.TrimSpace(strings.NewReplacer("<b>", "", "</b>", "").Replace(input))
}

// inlineTransactor runs fn directly on the caller's context.
type inlineTransactor struct{ calls int }

func (t *inlineTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

var (
	owner    = setup.Actor{UserID: "user-1", Role: "user"}
	stranger = setup.Actor{UserID: "user-2", Role: "user"}
	venueID  = "loc-1"
	eventDay = time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)
)

func testConfig(instructions string) setup.GeneratedConfig {
	return setup.GeneratedConfig{
		ChannelConfig:       json.RawMessage(`{"1":{"instrument":"vocal_female","mic":"beta_58a"}}`),
		EQSettings:          json.RawMessage(`{"1":{"hpf":"100Hz"}}`),
		CompressionSettings: json.RawMessage(`{"1":{"ratio":"3:1"}}`),
		FXSettings:          json.RawMessage(`{"fx1":"reverb"}`),
		Instructions:        instructions,
		TroubleshootingTips: []string{"watch for feedback"},
	}
}

func testVenue() *location.Location {
	return location.ReconstructLocation(venueID, owner.UserID, "Gurdwara Hall", "hall", "", nil, false, eventDay)
}

func vocalLineup(mic string) []setup.PerformerSlot {
	return []setup.PerformerSlot{{Type: "vocal_female", Count: 1, InputSource: mic}}
}

// storedSetup builds a persisted setup at the test venue.
func storedSetup(id, userID string, performers []setup.PerformerSlot, rating *int, shared, full bool, createdAt time.Time) *setup.Setup {
	return setup.ReconstructSetup(id, userID, venueID, "Kirtan "+id, &eventDay, performers,
		testConfig("stored "+id), rating, "", shared, full, createdAt, createdAt)
}

func intPtr(v int) *int { return &v }
func boolPtr(v bool) *bool { return &v }
func strPtr(v string) *string { return &v }

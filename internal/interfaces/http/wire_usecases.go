package http

import (
	instrumentUsecases "github.com/hsaberwal/serunner/internal/application/instrument/usecases"
	locationUsecases "github.com/hsaberwal/serunner/internal/application/location/usecases"
	setupUsecases "github.com/hsaberwal/serunner/internal/application/setup/usecases"
	subscriptionUsecases "github.com/hsaberwal/serunner/internal/application/subscription/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Subscription
	quotaGate  *subscriptionUsecases.QuotaGate
	getUsageUC *subscriptionUsecases.GetUsageUseCase
	setPlanUC  *subscriptionUsecases.SetPlanUseCase

	// Setup
	checkMatchUC       *setupUsecases.CheckMatchUseCase
	reuseSetupUC       *setupUsecases.ReuseSetupUseCase
	generateSetupUC    *setupUsecases.GenerateSetupUseCase
	refreshSetupUC     *setupUsecases.RefreshSetupUseCase
	updateSetupUC      *setupUsecases.UpdateSetupUseCase
	recordCorrectionUC *setupUsecases.RecordCorrectionUseCase
	listCorrectionsUC  *setupUsecases.ListCorrectionsUseCase
	learningContextUC  *setupUsecases.LearningContextUseCase
	getSetupUC         *setupUsecases.GetSetupUseCase
	listSetupsUC       *setupUsecases.ListSetupsUseCase
	deleteSetupUC      *setupUsecases.DeleteSetupUseCase

	// Location
	createLocationUC *locationUsecases.CreateLocationUseCase
	getLocationUC    *locationUsecases.GetLocationUseCase
	listLocationsUC  *locationUsecases.ListLocationsUseCase

	// Instrument
	learnInstrumentUC *instrumentUsecases.LearnInstrumentUseCase
	listInstrumentsUC *instrumentUsecases.ListInstrumentsUseCase
}

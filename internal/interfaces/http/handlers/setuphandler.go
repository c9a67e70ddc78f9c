package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hsaberwal/serunner/internal/application/setup/usecases"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/biztime"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
	"github.com/hsaberwal/serunner/internal/shared/utils"
)

// SetupHandler serves the matching, reuse, generation and correction endpoints.
type SetupHandler struct {
	checkMatchUC       checkMatchUseCase
	reuseUC            reuseSetupUseCase
	generateUC         generateSetupUseCase
	refreshUC          refreshSetupUseCase
	updateUC           updateSetupUseCase
	recordCorrectionUC recordCorrectionUseCase
	listCorrectionsUC  listCorrectionsUseCase
	getUC              getSetupUseCase
	listUC             listSetupsUseCase
	deleteUC           deleteSetupUseCase
	logger             logger.Interface
}

func NewSetupHandler(
	checkMatchUC checkMatchUseCase,
	reuseUC reuseSetupUseCase,
	generateUC generateSetupUseCase,
	refreshUC refreshSetupUseCase,
	updateUC updateSetupUseCase,
	recordCorrectionUC recordCorrectionUseCase,
	listCorrectionsUC listCorrectionsUseCase,
	getUC getSetupUseCase,
	listUC listSetupsUseCase,
	deleteUC deleteSetupUseCase,
	logger logger.Interface,
) *SetupHandler {
	return &SetupHandler{
		checkMatchUC:       checkMatchUC,
		reuseUC:            reuseUC,
		generateUC:         generateUC,
		refreshUC:          refreshUC,
		updateUC:           updateUC,
		recordCorrectionUC: recordCorrectionUC,
		listCorrectionsUC:  listCorrectionsUC,
		getUC:              getUC,
		listUC:             listUC,
		deleteUC:           deleteUC,
		logger:             logger,
	}
}

// PerformerRequest is one lineup slot as submitted by clients.
type PerformerRequest struct {
	Type        string `json:"type" binding:"max=100"`
	Count       int    `json:"count"`
	InputSource string `json:"input_source" binding:"max=100"`
	Notes       string `json:"notes" binding:"max=500"`
}

type CheckMatchRequest struct {
	LocationID string             `json:"location_id" binding:"required,uuid"`
	Performers []PerformerRequest `json:"performers" binding:"required,dive"`
}

// SetupEventRequest is the body of reuse and generate calls.
type SetupEventRequest struct {
	LocationID string             `json:"location_id" binding:"required,uuid"`
	EventName  string             `json:"event_name" binding:"max=200"`
	EventDate  string             `json:"event_date" binding:"omitempty,datetime=2006-01-02"`
	Performers []PerformerRequest `json:"performers" binding:"required,dive"`
}

type RefreshSetupRequest struct {
	Performers []PerformerRequest `json:"performers" binding:"omitempty,dive"`
}

type UpdateSetupRequest struct {
	Rating           *int                             `json:"rating" binding:"omitempty,min=1,max=5"`
	Notes            *string                          `json:"notes" binding:"omitempty,max=5000"`
	Corrections      map[string]setup.CorrectionEntry `json:"corrections"`
	IsShared         *bool                            `json:"is_shared"`
	SharedFullAccess *bool                            `json:"shared_full_access"`
}

func toPerformerSlots(in []PerformerRequest) []setup.PerformerSlot {
	if in == nil {
		return nil
	}
	out := make([]setup.PerformerSlot, 0, len(in))
	for _, p := range in {
		out = append(out, setup.PerformerSlot{
			Type:        p.Type,
			Count:       p.Count,
			InputSource: p.InputSource,
			Notes:       p.Notes,
		})
	}
	return out
}

func parseEventDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := biztime.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.NewValidationError("invalid event_date", err.Error())
	}
	return &d, nil
}

func currentActor(c *gin.Context) (setup.Actor, error) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		return setup.Actor{}, err
	}
	return setup.Actor{UserID: userID, Role: utils.GetUserRole(c)}, nil
}

// CheckMatch handles POST /setups/check-match
func (h *SetupHandler) CheckMatch(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CheckMatchRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for check match", "error", err, "user_id", actor.UserID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkMatchUC.Execute(c.Request.Context(), usecases.CheckMatchCommand{
		UserID:     actor.UserID,
		LocationID: req.LocationID,
		Performers: toPerformerSlots(req.Performers),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Reuse handles POST /setups/reuse/:id
func (h *SetupHandler) Reuse(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	matchedID, err := utils.ParseIDParam(c, "id", "setup")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetupEventRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reuseUC.Execute(c.Request.Context(), usecases.ReuseSetupCommand{
		Actor:          actor,
		MatchedSetupID: matchedID,
		LocationID:     req.LocationID,
		EventName:      req.EventName,
		EventDate:      eventDate,
		Performers:     toPerformerSlots(req.Performers),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Setup reused")
}

// Generate handles POST /setups/generate
func (h *SetupHandler) Generate(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetupEventRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateUC.Execute(c.Request.Context(), usecases.GenerateSetupCommand{
		Actor:      actor,
		LocationID: req.LocationID,
		EventName:  req.EventName,
		EventDate:  eventDate,
		Performers: toPerformerSlots(req.Performers),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Setup generated")
}

// Refresh handles POST /setups/:id/refresh. The body is optional.
func (h *SetupHandler) Refresh(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	setupID, err := utils.ParseIDParam(c, "id", "setup")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RefreshSetupRequest
	if c.Request.ContentLength != 0 {
		if err := utils.BindJSON(c, &req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshSetupCommand{
		Actor:      actor,
		SetupID:    setupID,
		Performers: toPerformerSlots(req.Performers),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setup refreshed", result)
}

// Update handles PUT /setups/:id
func (h *SetupHandler) Update(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	setupID, err := utils.ParseIDParam(c, "id", "setup")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSetupRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateSetupCommand{
		Actor:            actor,
		SetupID:          setupID,
		Rating:           req.Rating,
		Notes:            req.Notes,
		Corrections:      req.Corrections,
		IsShared:         req.IsShared,
		SharedFullAccess: req.SharedFullAccess,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setup updated", result)
}

// PutCorrection handles PUT /setups/:id/corrections/:channel
func (h *SetupHandler) PutCorrection(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	setupID, err := utils.ParseIDParam(c, "id", "setup")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var entry setup.CorrectionEntry
	if err := utils.BindJSON(c, &entry); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.recordCorrectionUC.Execute(c.Request.Context(), usecases.RecordCorrectionCommand{
		Actor:   actor,
		SetupID: setupID,
		Channel: c.Param("channel"),
		Entry:   entry,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Correction recorded", result)
}

// ListCorrections handles GET /setups/:id/corrections
func (h *SetupHandler) ListCorrections(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	setupID, err := utils.ParseIDParam(c, "id", "setup")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCorrectionsUC.Execute(c.Request.Context(), usecases.ListCorrectionsQuery{
		Actor:   actor,
		SetupID: setupID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Get handles GET /setups/:id
func (h *SetupHandler) Get(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	setupID, err := utils.ParseIDParam(c, "id", "setup")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetSetupQuery{Actor: actor, SetupID: setupID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// List handles GET /setups?location_id=&include_shared=&page=&page_size=
func (h *SetupHandler) List(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListSetupsQuery{
		UserID:        actor.UserID,
		LocationID:    c.Query("location_id"),
		IncludeShared: c.Query("include_shared") != "false",
		Page:          pagination.Page,
		PageSize:      pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Setups, result.Total, result.Page, result.Size)
}

// Delete handles DELETE /setups/:id
func (h *SetupHandler) Delete(c *gin.Context) {
	actor, err := currentActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	setupID, err := utils.ParseIDParam(c, "id", "setup")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteSetupCommand{Actor: actor, SetupID: setupID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

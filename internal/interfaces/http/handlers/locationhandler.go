package handlers

import (
	"github.com/gin-gonic/gin"

	locdto "github.com/hsaberwal/serunner/internal/application/location/dto"
	"github.com/hsaberwal/serunner/internal/application/setup/usecases"
	"github.com/hsaberwal/serunner/internal/shared/logger"
	"github.com/hsaberwal/serunner/internal/shared/utils"
)

// LocationHandler manages venues and exposes their correction history.
type LocationHandler struct {
	createUC          createLocationUseCase
	getUC             getLocationUseCase
	listUC            listLocationsUseCase
	learningContextUC learningContextUseCase
	logger            logger.Interface
}

func NewLocationHandler(
	createUC createLocationUseCase,
	getUC getLocationUseCase,
	listUC listLocationsUseCase,
	learningContextUC learningContextUseCase,
	logger logger.Interface,
) *LocationHandler {
	return &LocationHandler{
		createUC:          createUC,
		getUC:             getUC,
		listUC:            listUC,
		learningContextUC: learningContextUC,
		logger:            logger,
	}
}

// Create handles POST /locations
func (h *LocationHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req locdto.CreateLocationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Location created")
}

// List handles GET /locations
func (h *LocationHandler) List(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Get handles GET /locations/:id
func (h *LocationHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "location")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// LearningContext handles GET /locations/:id/learning-context?performer_type=
func (h *LocationHandler) LearningContext(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "location")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.learningContextUC.Execute(c.Request.Context(), usecases.LearningContextQuery{
		UserID:        userID,
		LocationID:    id,
		PerformerType: c.Query("performer_type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

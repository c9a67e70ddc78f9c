package handlers

import (
	"github.com/gin-gonic/gin"

	instdto "github.com/hsaberwal/serunner/internal/application/instrument/dto"
	instusecases "github.com/hsaberwal/serunner/internal/application/instrument/usecases"
	"github.com/hsaberwal/serunner/internal/shared/logger"
	"github.com/hsaberwal/serunner/internal/shared/utils"
)

// InstrumentHandler teaches the generator about instruments and lists learned ones.
type InstrumentHandler struct {
	learnUC learnInstrumentUseCase
	listUC  listInstrumentsUseCase
	logger  logger.Interface
}

func NewInstrumentHandler(learnUC learnInstrumentUseCase, listUC listInstrumentsUseCase, logger logger.Interface) *InstrumentHandler {
	return &InstrumentHandler{
		learnUC: learnUC,
		listUC:  listUC,
		logger:  logger,
	}
}

// Learn handles POST /instruments/learn
func (h *InstrumentHandler) Learn(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req instdto.LearnInstrumentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.learnUC.Execute(c.Request.Context(), instusecases.LearnInstrumentCommand{
		UserID:   userID,
		Role:     utils.GetUserRole(c),
		Name:     req.Name,
		Category: req.Category,
		Notes:    req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Instrument learned")
}

// List handles GET /instruments
func (h *InstrumentHandler) List(c *gin.Context) {
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

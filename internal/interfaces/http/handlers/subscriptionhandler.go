package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hsaberwal/serunner/internal/application/subscription/usecases"
	"github.com/hsaberwal/serunner/internal/shared/logger"
	"github.com/hsaberwal/serunner/internal/shared/utils"
)

// SubscriptionHandler reports the caller's plan and monthly usage.
type SubscriptionHandler struct {
	getUsageUseCase getUsageUseCase
	logger          logger.Interface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(getUsageUC getUsageUseCase, logger logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{
		getUsageUseCase: getUsageUC,
		logger:          logger,
	}
}

// Usage handles GET /subscription/usage
func (h *SubscriptionHandler) Usage(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUsageUseCase.Execute(c.Request.Context(), usecases.GetUsageQuery{
		UserID: userID,
		Role:   utils.GetUserRole(c),
	})
	if err != nil {
		h.logger.Errorw("failed to get usage", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

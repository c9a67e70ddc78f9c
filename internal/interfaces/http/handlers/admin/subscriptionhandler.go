// Package admin provides HTTP handlers for administrative operations.
package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	subdto "github.com/hsaberwal/serunner/internal/application/subscription/dto"
	"github.com/hsaberwal/serunner/internal/application/subscription/usecases"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
	"github.com/hsaberwal/serunner/internal/shared/utils"
)

type setPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetPlanCommand) (*subdto.UsageDTO, error)
}

// SubscriptionHandler applies billing changes on behalf of a payment backend or operator.
type SubscriptionHandler struct {
	setPlanUseCase setPlanUseCase
	logger         logger.Interface
}

// NewSubscriptionHandler creates a new admin subscription handler
func NewSubscriptionHandler(setPlanUC setPlanUseCase, logger logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{
		setPlanUseCase: setPlanUC,
		logger:         logger,
	}
}

// SetPlanRequest is the body of PUT /admin/subscriptions/:user_id
type SetPlanRequest struct {
	Plan   string `json:"plan" binding:"required,oneof=free basic pro admin"`
	Status string `json:"status" binding:"omitempty,oneof=active trialing past_due canceled"`
}

// SetPlan handles PUT /admin/subscriptions/:user_id
func (h *SubscriptionHandler) SetPlan(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user ID is required"))
		return
	}

	var req SetPlanRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid set plan request", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if req.Status == "" {
		req.Status = "active"
	}

	result, err := h.setPlanUseCase.Execute(c.Request.Context(), usecases.SetPlanCommand{
		UserID: userID,
		Plan:   req.Plan,
		Status: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("subscription plan changed", "user_id", userID, "plan", req.Plan, "status", req.Status)
	utils.SuccessResponse(c, http.StatusOK, "Subscription updated", result)
}

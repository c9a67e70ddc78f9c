package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/setup/dto"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/logger"
	"github.com/hsaberwal/serunner/internal/shared/utils"
)

type ListSetupsQuery struct {
	UserID        string
	LocationID    string
	IncludeShared bool
	Page          int
	PageSize      int
}

type ListSetupsResult struct {
	Setups []*dto.SetupSummaryDTO `json:"setups"`
	Total  int64                  `json:"total"`
	Page   int                    `json:"page"`
	Size   int                    `json:"page_size"`
}

type ListSetupsUseCase struct {
	setupRepo setup.Repository
	logger    logger.Interface
}

func NewListSetupsUseCase(setupRepo setup.Repository, logger logger.Interface) *ListSetupsUseCase {
	return &ListSetupsUseCase{setupRepo: setupRepo, logger: logger}
}

func (uc *ListSetupsUseCase) Execute(ctx context.Context, query ListSetupsQuery) (*ListSetupsResult, error) {
	page := utils.NewPagination(query.Page, query.PageSize)

	setups, total, err := uc.setupRepo.List(ctx, setup.ListFilter{
		UserID:        query.UserID,
		LocationID:    query.LocationID,
		IncludeShared: query.IncludeShared,
		Page:          page.Page,
		PageSize:      page.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list setups", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list setups: %w", err)
	}

	return &ListSetupsResult{
		Setups: dto.ToSetupSummaryDTOs(setups, query.UserID),
		Total:  total,
		Page:   page.Page,
		Size:   page.PageSize,
	}, nil
}

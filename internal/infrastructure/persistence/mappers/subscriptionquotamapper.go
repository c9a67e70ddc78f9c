package mappers

import (
	"time"

	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
)

type SubscriptionQuotaMapper interface {
	ToModel(q *subscription.Quota) *models.SubscriptionQuotaModel
	ToDomain(model *models.SubscriptionQuotaModel) *subscription.Quota
}

type SubscriptionQuotaMapperImpl struct{}

func NewSubscriptionQuotaMapper() SubscriptionQuotaMapper {
	return &SubscriptionQuotaMapperImpl{}
}

func (m *SubscriptionQuotaMapperImpl) ToModel(q *subscription.Quota) *models.SubscriptionQuotaModel {
	return &models.SubscriptionQuotaModel{
		ID:              q.ID(),
		UserID:          q.UserID(),
		Plan:            string(q.Plan()),
		Status:          string(q.Status()),
		PeriodStart:     q.PeriodStart().UnixMilli(),
		GenerationsUsed: q.GenerationsUsed(),
		GenerationLimit: q.GenerationLimit(),
		LearningUsed:    q.LearningUsed(),
		LearningLimit:   q.LearningLimit(),
		CreatedAt:       q.CreatedAt().UnixMilli(),
		UpdatedAt:       q.UpdatedAt().UnixMilli(),
	}
}

func (m *SubscriptionQuotaMapperImpl) ToDomain(model *models.SubscriptionQuotaModel) *subscription.Quota {
	if model == nil {
		return nil
	}
	return subscription.ReconstructQuota(
		model.ID,
		model.UserID,
		subscription.Plan(model.Plan),
		subscription.Status(model.Status),
		time.UnixMilli(model.PeriodStart).UTC(),
		model.GenerationsUsed,
		model.GenerationLimit,
		model.LearningUsed,
		model.LearningLimit,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

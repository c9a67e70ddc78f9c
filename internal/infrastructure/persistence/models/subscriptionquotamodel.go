package models

// SubscriptionQuotaModel holds one user's counters. PeriodStart is unix
// milliseconds of the billing period start so the conditional update can
// compare it portably.
type SubscriptionQuotaModel struct {
	ID              string `gorm:"primaryKey;size:36"`
	UserID          string `gorm:"size:64;not null;uniqueIndex"`
	Plan            string `gorm:"size:20;not null"`
	Status          string `gorm:"size:20;not null"`
	PeriodStart     int64  `gorm:"not null"`
	GenerationsUsed int    `gorm:"not null;default:0"`
	GenerationLimit int    `gorm:"not null"`
	LearningUsed    int    `gorm:"not null;default:0"`
	LearningLimit   int    `gorm:"not null"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"not null"`
}

func (SubscriptionQuotaModel) TableName() string {
	return "subscription_quotas"
}

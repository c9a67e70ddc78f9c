package models

import "gorm.io/datatypes"

type InstrumentProfileModel struct {
	ID                  string `gorm:"primaryKey;size:36"`
	UserID              string `gorm:"size:64;not null;uniqueIndex:uk_instrument_user_key,priority:1"`
	Name                string `gorm:"size:100;not null"`
	DisplayName         string `gorm:"size:150"`
	Category            string `gorm:"size:50;not null"`
	ValueKey            string `gorm:"size:100;not null;uniqueIndex:uk_instrument_user_key,priority:2"`
	Description         string `gorm:"type:text"`
	MicRecommendations  datatypes.JSON
	EQSettings          datatypes.JSON `gorm:"column:eq_settings"`
	CompressionSettings datatypes.JSON
	FXRecommendations   datatypes.JSON `gorm:"column:fx_recommendations"`
	MixingNotes         string         `gorm:"type:text"`
	UserNotes           string         `gorm:"type:text"`
	CreatedAt           int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (InstrumentProfileModel) TableName() string {
	return "instrument_profiles"
}

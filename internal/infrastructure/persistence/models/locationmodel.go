package models

import "gorm.io/datatypes"

type LocationModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserID       string `gorm:"size:64;not null;index"`
	Name         string `gorm:"size:200;not null"`
	VenueType    string `gorm:"size:50"`
	Notes        string `gorm:"type:text"`
	SpeakerSetup datatypes.JSON
	IsTemporary  bool  `gorm:"not null;default:false"`
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
}

func (LocationModel) TableName() string {
	return "locations"
}

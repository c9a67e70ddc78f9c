package models

import "gorm.io/datatypes"

// SetupModel stores one event configuration. The settings blobs are opaque
// JSON objects produced by the generator.
type SetupModel struct {
	ID                  string         `gorm:"primaryKey;size:36"`
	UserID              string         `gorm:"size:64;not null;index"`
	LocationID          string         `gorm:"size:36;not null;index:idx_setups_location_created,priority:1"`
	EventName           string         `gorm:"size:200"`
	EventDate           *string        `gorm:"size:10"`
	Performers          datatypes.JSON `gorm:"not null"`
	ChannelConfig       datatypes.JSON
	EQSettings          datatypes.JSON `gorm:"column:eq_settings"`
	CompressionSettings datatypes.JSON
	FXSettings          datatypes.JSON `gorm:"column:fx_settings"`
	Instructions        string         `gorm:"type:text"`
	TroubleshootingTips datatypes.JSON
	Rating              *int
	Notes               string `gorm:"type:text"`
	IsShared            bool   `gorm:"not null;default:false;index"`
	SharedFullAccess    bool   `gorm:"not null;default:false"`
	CreatedAt           int64  `gorm:"autoCreateTime:milli;not null;index:idx_setups_location_created,priority:2"`
	UpdatedAt           int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SetupModel) TableName() string {
	return "setups"
}

// SetupCorrectionModel is the latest correction for one (setup, channel).
type SetupCorrectionModel struct {
	SetupID       string         `gorm:"primaryKey;size:36"`
	Channel       string         `gorm:"primaryKey;size:50"`
	Instrument    string         `gorm:"size:100"`
	InstrumentKey string         `gorm:"size:100;index"`
	Entry         datatypes.JSON `gorm:"not null"`
	UpdatedBy     string         `gorm:"size:64;not null"`
	UpdatedAt     int64          `gorm:"not null;index"`
}

func (SetupCorrectionModel) TableName() string {
	return "setup_corrections"
}

package setup

import "encoding/json"

// GeneratedConfig is the mixer configuration produced by the generator.
// The four settings blobs are opaque JSON objects keyed by channel.
type GeneratedConfig struct {
	ChannelConfig       json.RawMessage `json:"channel_config"`
	EQSettings          json.RawMessage `json:"eq_settings"`
	CompressionSettings json.RawMessage `json:"compression_settings"`
	FXSettings          json.RawMessage `json:"fx_settings"`
	Instructions        string          `json:"instructions"`
	TroubleshootingTips []string        `json:"troubleshooting_tips"`
}

// Clone deep-copies the configuration so two setups never share buffers.
func (c GeneratedConfig) Clone() GeneratedConfig {
	out := GeneratedConfig{
		ChannelConfig:       cloneRaw(c.ChannelConfig),
		EQSettings:          cloneRaw(c.EQSettings),
		CompressionSettings: cloneRaw(c.CompressionSettings),
		FXSettings:          cloneRaw(c.FXSettings),
		Instructions:        c.Instructions,
	}
	if c.TroubleshootingTips != nil {
		out.TroubleshootingTips = append([]string(nil), c.TroubleshootingTips...)
	}
	return out
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

// GenerationRequest is everything the generator sees for one setup.
type GenerationRequest struct {
	Location         VenueInfo
	Performers       []PerformerSlot
	PastSetups       []*Setup
	PriorCorrections []LearningCorrection
	Instruments      []InstrumentNote
}

// VenueInfo is the slice of a location the generator needs.
type VenueInfo struct {
	Name         string
	VenueType    string
	Notes        string
	SpeakerSetup json.RawMessage
}

// InstrumentNote carries a learned instrument profile into the prompt.
type InstrumentNote struct {
	Name        string
	Category    string
	MixingNotes string
	EQSettings  json.RawMessage
}

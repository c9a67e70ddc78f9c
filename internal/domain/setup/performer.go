package setup

// PerformerSlot is one entry of an event lineup as submitted by the client.
// Notes are carried to the generator but never affect matching.
type PerformerSlot struct {
	Type        string `json:"type"`
	Count       int    `json:"count"`
	InputSource string `json:"input_source"`
	Notes       string `json:"notes,omitempty"`
}

func clonePerformers(in []PerformerSlot) []PerformerSlot {
	if in == nil {
		return nil
	}
	out := make([]PerformerSlot, len(in))
	copy(out, in)
	return out
}

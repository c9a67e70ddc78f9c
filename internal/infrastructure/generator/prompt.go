package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/biztime"
)

// buildSetupPrompt renders the user prompt: venue, lineup, past highly rated
// setups at the venue, corrections engineers made there, and learned
// instrument notes.
func buildSetupPrompt(req setup.GenerationRequest) string {
	var b strings.Builder

	b.WriteString("# Setup Request\n\n## Venue Information\n")
	fmt.Fprintf(&b, "- **Name**: %s\n", orDefault(req.Location.Name, "Unnamed venue"))
	fmt.Fprintf(&b, "- **Type**: %s\n", orDefault(req.Location.VenueType, "Not specified"))
	fmt.Fprintf(&b, "- **Notes**: %s\n", orDefault(req.Location.Notes, "None"))
	if len(req.Location.SpeakerSetup) > 0 && string(req.Location.SpeakerSetup) != "null" {
		fmt.Fprintf(&b, "\n**Speaker Setup**: %s\n", compactJSON(req.Location.SpeakerSetup))
	}

	b.WriteString("\n## Performer Lineup\n")
	for i, p := range req.Performers {
		fmt.Fprintf(&b, "%d. **%s** (count: %d)", i+1, p.Type, p.Count)
		if p.InputSource != "" {
			fmt.Fprintf(&b, " via %s", p.InputSource)
		}
		if p.Notes != "" {
			fmt.Fprintf(&b, " - %s", p.Notes)
		}
		b.WriteString("\n")
	}

	if len(req.PastSetups) > 0 {
		b.WriteString("\n## Past Successful Setups at This Venue\n")
		for i, s := range req.PastSetups {
			rating := 0
			if s.Rating() != nil {
				rating = *s.Rating()
			}
			fmt.Fprintf(&b, "\n### Setup %d (Rating: %d/5)\n", i+1, rating)
			performers, _ := json.Marshal(s.Performers())
			fmt.Fprintf(&b, "- **Performers**: %s\n", performers)
			if s.Notes() != "" {
				fmt.Fprintf(&b, "- **Notes**: %s\n", s.Notes())
			}
		}
	}

	if len(req.PriorCorrections) > 0 {
		b.WriteString("\n## Corrections Engineers Made at This Venue\n")
		b.WriteString("Apply these adjustments; they were made live after earlier generated setups.\n")
		for _, c := range req.PriorCorrections {
			fmt.Fprintf(&b, "\n### Channel %s", c.Channel)
			if c.Entry.Instrument != "" {
				fmt.Fprintf(&b, " (%s)", c.Entry.Instrument)
			}
			fmt.Fprintf(&b, " from %s", eventLabel(c))
			b.WriteString("\n")
			writeCorrection(&b, c.Entry)
		}
	}

	if len(req.Instruments) > 0 {
		b.WriteString("\n## Learned Instrument Notes\n")
		for _, inst := range req.Instruments {
			fmt.Fprintf(&b, "\n### %s (%s)\n", inst.Name, inst.Category)
			if inst.MixingNotes != "" {
				fmt.Fprintf(&b, "- **Mixing notes**: %s\n", inst.MixingNotes)
			}
			if len(inst.EQSettings) > 0 && string(inst.EQSettings) != "null" {
				fmt.Fprintf(&b, "- **EQ**: %s\n", compactJSON(inst.EQSettings))
			}
		}
	}

	b.WriteString("\n## Instructions\n")
	b.WriteString("Generate a complete mixer setup for this event. ")
	b.WriteString("Provide detailed channel assignments, EQ, compression, and FX settings. ")
	b.WriteString("Remind the engineer that FX Send and FX Return must both be up in LR view. ")
	b.WriteString("Return the response as a valid JSON object.")

	return b.String()
}

func writeCorrection(b *strings.Builder, e setup.CorrectionEntry) {
	if e.Mic != "" {
		fmt.Fprintf(b, "- Mic: %s\n", e.Mic)
	}
	if e.GainChange != "" {
		fmt.Fprintf(b, "- Gain: %s\n", e.GainChange)
	}
	writeChanges(b, "EQ", e.EQChanges)
	writeChanges(b, "Compression", e.CompressionChanges)
	if e.Notes != "" {
		fmt.Fprintf(b, "- Notes: %s\n", e.Notes)
	}
}

func writeChanges(b *strings.Builder, label string, changes map[string]string) {
	if len(changes) == 0 {
		return
	}
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+changes[k])
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(parts, ", "))
}

func eventLabel(c setup.LearningCorrection) string {
	name := orDefault(c.EventName, "Untitled event")
	if c.EventDate == nil {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, biztime.FormatDate(c.EventDate))
}

func buildLearnPrompt(name, category, notes string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Learn comprehensive live sound settings for: **%s**\n\nCategory: %s\n", name, category)
	if notes != "" {
		fmt.Fprintf(&b, "\nUser notes: %s\n", notes)
	}
	b.WriteString(`
Consider:
1. What mics work best for this instrument in a live setting?
2. What frequency problems are common and how to EQ them?
3. What compression approach keeps it musical but controlled?
4. What reverb or FX type gives it space without muddying the mix?
5. How does it interact with other instruments in a live band or devotional setting?

Return the JSON object with all settings.`)
	return b.String()
}

const learnSystemPrompt = `You are a professional live sound engineer with 20+ years of experience.
Provide comprehensive mixing knowledge for one instrument or performer type. The output is stored
and used to configure a digital mixer.

Return ONLY a JSON object with this structure:
{
  "display_name": "Instrument Name (Short Description)",
  "description": "1-2 sentences on the instrument and its sound",
  "mic_recommendations": {"primary": {...}, "alternative": {...}, "di_notes": "..."},
  "eq_settings": {"hpf": {...}, "band1": {...}, "band2": {...}, "band3": {...}, "band4": {...}},
  "compression_settings": {"attack_ms": 15, "release_ms": 100, "threshold_db": -10, "ratio": "3:1", "gain_db": 2.0, "soft_knee": true},
  "fx_recommendations": {"primary_fx": "plate|hall|room|none", "fx_engine": "FX1|FX2|FX3|none", "send_level_db": -10},
  "mixing_notes": "3-5 sentences on frequency range, common problems and gain staging"
}

EQ gains are negative for cuts and positive for boosts. Frequencies are in Hz.`

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func compactJSON(raw json.RawMessage) string {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

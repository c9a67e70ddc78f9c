package generator

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var defaultKnowledge []byte

// Knowledge is the mixer reference rendered into the system prompt.
type Knowledge struct {
	Mixer struct {
		Name     string   `yaml:"name"`
		Features []string `yaml:"features"`
	} `yaml:"mixer"`
	Microphones []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"microphones"`
	FXRouting   string               `yaml:"fx_routing"`
	Instruments []InstrumentPractice `yaml:"instruments"`
	Principles  []string             `yaml:"principles"`
}

type InstrumentPractice struct {
	Name        string   `yaml:"name"`
	EQ          []string `yaml:"eq"`
	Compression string   `yaml:"compression"`
	Reverb      string   `yaml:"reverb"`
}

// LoadKnowledge reads the knowledge pack at path, or the embedded default
// when path is empty.
func LoadKnowledge(path string) (*Knowledge, error) {
	data := defaultKnowledge
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read knowledge pack: %w", err)
		}
		data = b
	}

	var k Knowledge
	if err := yaml.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("parse knowledge pack: %w", err)
	}
	if k.Mixer.Name == "" {
		return nil, fmt.Errorf("parse knowledge pack: mixer.name is required")
	}
	return &k, nil
}

// SystemPrompt renders the setup-generation system prompt.
func (k *Knowledge) SystemPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert sound engineer specializing in %s mixers and live sound reinforcement for community events.\n\n", k.Mixer.Name)

	b.WriteString("## Your Equipment\n\n")
	fmt.Fprintf(&b, "### %s\n", k.Mixer.Name)
	for _, f := range k.Mixer.Features {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	if len(k.Microphones) > 0 {
		b.WriteString("\n### Available Microphones\n")
		for _, m := range k.Microphones {
			fmt.Fprintf(&b, "- **%s**: %s\n", m.Name, m.Description)
		}
	}
	if k.FXRouting != "" {
		fmt.Fprintf(&b, "\n## FX Routing\n%s\n", k.FXRouting)
	}
	if len(k.Instruments) > 0 {
		b.WriteString("\n## Proven Settings From Live Sessions\n")
		for _, inst := range k.Instruments {
			fmt.Fprintf(&b, "\n### %s\n", inst.Name)
			for _, eq := range inst.EQ {
				fmt.Fprintf(&b, "- %s\n", eq)
			}
			if inst.Compression != "" {
				fmt.Fprintf(&b, "- Compression: %s\n", inst.Compression)
			}
			if inst.Reverb != "" {
				fmt.Fprintf(&b, "- Reverb: %s\n", inst.Reverb)
			}
		}
	}
	if len(k.Principles) > 0 {
		b.WriteString("\n## Key Principles\n")
		for i, p := range k.Principles {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p)
		}
	}

	b.WriteString(`
## Your Task

Given a performer lineup and venue, provide channel assignments with mic selection,
step-by-step setup instructions, per-channel EQ (HPF plus 4-band PEQ), compression
(attack, release, threshold, ratio, makeup gain, soft knee), FX routing, and
troubleshooting tips for this lineup.

Return a JSON object with these keys:
- channel_config: object keyed by channel number, each {instrument, mic, notes}
- eq_settings: object keyed by channel number, each {hpf, band1, band2, band3, band4}
- compression_settings: object keyed by channel number
- fx_settings: FX engine assignments and send levels per channel
- instructions: string with the complete step-by-step guide
- troubleshooting_tips: array of strings
`)
	return b.String()
}

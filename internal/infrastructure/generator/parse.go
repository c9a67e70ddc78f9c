package generator

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/services/markdown"
)

const parseFailureTip = "Error parsing the generated response. See instructions for the full response."

// extractJSON finds the JSON object in a model reply: the whole reply, a
// fenced block (json-tagged first), or the outermost brace span.
func extractJSON(md markdown.MarkdownService, reply string) ([]byte, bool) {
	reply = strings.TrimSpace(reply)
	if json.Valid([]byte(reply)) {
		return []byte(reply), true
	}
	if block, ok := md.FencedBlock(reply, "json"); ok {
		block = strings.TrimSpace(block)
		if json.Valid([]byte(block)) {
			return []byte(block), true
		}
	}
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start >= 0 && end > start {
		candidate := reply[start : end+1]
		if json.Valid([]byte(candidate)) {
			return []byte(candidate), true
		}
	}
	return nil, false
}

type rawConfig struct {
	ChannelConfig       json.RawMessage `json:"channel_config"`
	EQSettings          json.RawMessage `json:"eq_settings"`
	CompressionSettings json.RawMessage `json:"compression_settings"`
	FXSettings          json.RawMessage `json:"fx_settings"`
	Instructions        json.RawMessage `json:"instructions"`
	TroubleshootingTips json.RawMessage `json:"troubleshooting_tips"`
}

// parseGeneratedConfig decodes a reply into a config. A reply that holds no
// usable JSON object yields empty settings with the raw reply as the
// instructions; ok reports which case happened.
func parseGeneratedConfig(md markdown.MarkdownService, reply string) (cfg setup.GeneratedConfig, ok bool) {
	payload, found := extractJSON(md, reply)
	var raw rawConfig
	if found {
		if err := json.Unmarshal(payload, &raw); err != nil {
			found = false
		}
	}
	if !found {
		return setup.GeneratedConfig{
			ChannelConfig:       emptyObject(),
			EQSettings:          emptyObject(),
			CompressionSettings: emptyObject(),
			FXSettings:          emptyObject(),
			Instructions:        strings.TrimSpace(reply),
			TroubleshootingTips: []string{parseFailureTip},
		}, false
	}

	return setup.GeneratedConfig{
		ChannelConfig:       objectOrEmpty(raw.ChannelConfig),
		EQSettings:          objectOrEmpty(raw.EQSettings),
		CompressionSettings: objectOrEmpty(raw.CompressionSettings),
		FXSettings:          objectOrEmpty(raw.FXSettings),
		Instructions:        textOf(raw.Instructions),
		TroubleshootingTips: tipsOf(raw.TroubleshootingTips),
	}, true
}

func emptyObject() json.RawMessage {
	return json.RawMessage(`{}`)
}

// objectOrEmpty keeps JSON objects and arrays as-is and replaces anything
// else with {}.
func objectOrEmpty(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return emptyObject()
	}
	return append(json.RawMessage(nil), trimmed...)
}

// textOf accepts a JSON string, or renders any other value as compact JSON.
func textOf(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		return ""
	}
	return compactJSON(raw)
}

// tipsOf accepts an array of strings or a single newline-separated string.
func tipsOf(raw json.RawMessage) []string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return cleanLines(list)
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return cleanLines(strings.Split(single, "\n"))
	}
	var mixed []interface{}
	if err := json.Unmarshal(raw, &mixed); err == nil {
		out := make([]string, 0, len(mixed))
		for _, item := range mixed {
			b, _ := json.Marshal(item)
			out = append(out, textOf(b))
		}
		return cleanLines(out)
	}
	return []string{}
}

func cleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

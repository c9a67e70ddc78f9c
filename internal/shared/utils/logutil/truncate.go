package logutil

// Truncate shortens s to at most maxRunes runes for log output, appending
// "..." when anything was cut. Rune-aware so generator text in any script
// stays valid UTF-8.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

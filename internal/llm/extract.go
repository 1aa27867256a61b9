package llm

import (
	"regexp"
	"strings"
)

// Models asked for "ONLY JSON" still wrap their output in markdown fences
// often enough that every call site needs the same unwrapping. ExtractJSON
// is that single shared step: it never fails, it only narrows the text to
// the most likely payload. Whether the result is valid JSON is the
// caller's problem (json.Unmarshal plus ValidatePayload).

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")
	bareFenceRe = regexp.MustCompile("(?s)```\\s*\\n(.*?)\\n\\s*```")
)

// ExtractJSON pulls a JSON payload out of free-form model output.
// A ```json fence wins over a bare fence; text without fences is returned
// as-is, trimmed.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.Contains(text, "```json") {
		if m := jsonFenceRe.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if strings.Contains(text, "```") {
		if m := bareFenceRe.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	return text
}

package usecase

import (
	"regexp"
	"strings"
)

var (
	// fencedJSONPattern matches a JSON object inside a markdown code fence.
	fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")
	// danglingCommaPattern matches a trailing comma before } or ].
	danglingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// extractJSON pulls a JSON object out of a model response. Models wrap JSON
// in code fences, add prose around it and leave trailing commas; all of
// that is tolerated. It returns "" when no object is present.
func extractJSON(content string) string {
	raw := ""
	if m := fencedJSONPattern.FindStringSubmatch(content); len(m) > 1 {
		raw = m[1]
	} else {
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start < 0 || end <= start {
			return ""
		}
		raw = content[start : end+1]
	}
	return danglingCommaPattern.ReplaceAllString(raw, "$1")
}

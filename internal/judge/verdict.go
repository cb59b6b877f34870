package judge

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Comparison is the model's note on one match
type Comparison struct {
	MatchName      string `json:"match_name"`
	SimilarityNote string `json:"similarity_note"`
}

// Verdict is the model's final classification
type Verdict struct {
	Status    string  `json:"status"`
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning,omitempty"`
}

// Judgment is the decoded judge payload. Error is set on degraded payloads.
type Judgment struct {
	Analysis   string       `json:"analysis,omitempty"`
	Comparison []Comparison `json:"comparison,omitempty"`
	Verdict    Verdict      `json:"verdict"`
	Error      string       `json:"error,omitempty"`
}

// ParseVerdict decodes a stored judge payload. Models sometimes wrap the object in a
// markdown fence or add prose around it; both are tolerated. Callers must be prepared
// for an error, the payload is not guaranteed to be JSON.
func ParseVerdict(text string) (*Judgment, error) {
	content := strings.TrimSpace(text)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	if start, end := strings.Index(content, "{"), strings.LastIndex(content, "}"); start >= 0 && end > start {
		content = content[start : end+1]
	}

	var j Judgment
	if err := json.Unmarshal([]byte(content), &j); err != nil {
		return nil, fmt.Errorf("parse judgment: %w", err)
	}
	return &j, nil
}

package meeting

import (
	"encoding/json"
	"strings"

	"github.com/lethanhdat/meeting-extractor/errors"
	"github.com/lethanhdat/meeting-extractor/internal/domain/entities"
)

// Parser handles cleanup and validation of Groq responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseExtraction parses the model output into an ExtractionResult.
//
// The model is prompted to return raw JSON but empirically sometimes wraps
// it in a fenced code block, so fences are stripped first. A parse failure
// is a malformed-response error; a parsed value with the wrong structure
// (missing key, wrong type for summary/decisions/actionItems) is a
// shape-validation error. Field contents beyond that are trusted.
func (p *Parser) ParseExtraction(content string) (*entities.ExtractionResult, error) {
	content = extractJSON(content)

	var raw interface{}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, errors.ErrMalformedAIResponse(err)
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.ErrInvalidAIResponseShape("top-level value is not an object")
	}

	summary, ok := obj["summary"].(string)
	if !ok || summary == "" {
		return nil, errors.ErrInvalidAIResponseShape("summary missing or not a non-empty string")
	}
	if _, ok := obj["decisions"].([]interface{}); !ok {
		return nil, errors.ErrInvalidAIResponseShape("decisions missing or not an array")
	}
	if _, ok := obj["actionItems"].([]interface{}); !ok {
		return nil, errors.ErrInvalidAIResponseShape("actionItems missing or not an array")
	}

	// Shape is valid; decode into the typed result. Element-level type
	// mismatches surface here rather than crossing the boundary untyped.
	var result entities.ExtractionResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, errors.ErrInvalidAIResponseShape(err.Error())
	}
	if result.Decisions == nil {
		result.Decisions = make([]string, 0)
	}
	if result.ActionItems == nil {
		result.ActionItems = make([]entities.ActionItem, 0)
	}

	return &result, nil
}

// extractJSON strips a markdown code fence, with or without a language tag,
// from around the model output.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

package entities

// ExtractionResult represents the structured output from the Groq LLM
// extraction. All three fields must be present in the model response;
// a missing or mistyped field is a shape-validation failure, never a
// partial result.
type ExtractionResult struct {
	Summary     string       `json:"summary"`
	Decisions   []string     `json:"decisions"`
	ActionItems []ActionItem `json:"actionItems"`
}

// ActionItem is a single follow-up extracted from the notes. Owner and Due
// are nil when the source text does not state them; the keys are always
// serialized (as null) so callers can rely on their presence.
type ActionItem struct {
	Task  string  `json:"task"`
	Owner *string `json:"owner"`
	Due   *string `json:"due"`
}

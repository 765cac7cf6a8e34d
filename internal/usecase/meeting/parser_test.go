package meeting

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/lethanhdat/meeting-extractor/errors"
)

const sampleExtraction = `{
  "summary": "The team agreed on the product launch and onboarding preparation.",
  "decisions": ["Launch the new product on June 10."],
  "actionItems": [
    {"task": "Prepare onboarding docs", "owner": "Ravi", "due": "June 5"}
  ]
}`

func TestParseExtraction_Plain(t *testing.T) {
	p := NewParser()
	result, err := p.ParseExtraction(sampleExtraction)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary == "" {
		t.Fatal("summary is empty")
	}
	if len(result.Decisions) != 1 {
		t.Fatalf("expected 1 decision, got %d", len(result.Decisions))
	}
	if result.ActionItems[0].Owner == nil || *result.ActionItems[0].Owner != "Ravi" {
		t.Fatalf("unexpected owner: %v", result.ActionItems[0].Owner)
	}
}

// Fenced and unfenced forms of the same JSON must parse to the same result.
func TestParseExtraction_FenceRoundTrip(t *testing.T) {
	p := NewParser()
	plain, err := p.ParseExtraction(sampleExtraction)
	if err != nil {
		t.Fatalf("plain parse failed: %v", err)
	}

	for name, wrapped := range map[string]string{
		"json tag": "```json\n" + sampleExtraction + "\n```",
		"no tag":   "```\n" + sampleExtraction + "\n```",
		"padded":   "  \n```json\n" + sampleExtraction + "\n```\n  ",
	} {
		fenced, err := p.ParseExtraction(wrapped)
		if err != nil {
			t.Fatalf("%s: fenced parse failed: %v", name, err)
		}
		if !reflect.DeepEqual(plain, fenced) {
			t.Fatalf("%s: fenced result differs from plain", name)
		}
	}
}

func TestParseExtraction_NullOwnerAndDue(t *testing.T) {
	p := NewParser()
	result, err := p.ParseExtraction(`{
		"summary": "s",
		"decisions": [],
		"actionItems": [{"task": "follow up", "owner": null, "due": null}]
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := result.ActionItems[0]
	if item.Owner != nil || item.Due != nil {
		t.Fatalf("expected nil owner and due, got %v / %v", item.Owner, item.Due)
	}
}

func TestParseExtraction_MalformedJSON(t *testing.T) {
	p := NewParser()
	_, err := p.ParseExtraction("```json\n{not json at all\n```")
	var appErr errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrorCode_MALFORMED_AI_RESPONSE {
		t.Fatalf("expected MALFORMED_AI_RESPONSE, got %v", err)
	}
}

func TestParseExtraction_ShapeViolations(t *testing.T) {
	cases := map[string]string{
		"missing summary":      `{"decisions": [], "actionItems": []}`,
		"empty summary":        `{"summary": "", "decisions": [], "actionItems": []}`,
		"summary not string":   `{"summary": 42, "decisions": [], "actionItems": []}`,
		"missing decisions":    `{"summary": "s", "actionItems": []}`,
		"decisions not array":  `{"summary": "s", "decisions": "none", "actionItems": []}`,
		"missing action items": `{"summary": "s", "decisions": []}`,
		"items not array":      `{"summary": "s", "decisions": [], "actionItems": {}}`,
		"top level array":      `[1, 2, 3]`,
	}

	p := NewParser()
	for name, payload := range cases {
		_, err := p.ParseExtraction(payload)
		var appErr errors.AppError
		if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrorCode_INVALID_AI_RESPONSE_SHAPE {
			t.Fatalf("%s: expected INVALID_AI_RESPONSE_SHAPE, got %v", name, err)
		}
	}
}

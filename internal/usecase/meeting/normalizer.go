package meeting

import (
	"strings"

	"github.com/lethanhdat/meeting-extractor/errors"
	"github.com/lethanhdat/meeting-extractor/internal/domain/entities"
)

// MaxInputChars is the maximum accepted meeting-notes length. The limit is
// measured after trimming, so surrounding whitespace never pushes otherwise
// valid notes over the edge.
const MaxInputChars = 50000

// Normalize resolves the two possible input sources into one canonical
// payload. An uploaded file wins over an inline text field when both are
// present. Pure and deterministic; no side effects.
func Normalize(text string, file []byte) (*entities.MeetingInput, error) {
	if text == "" && file == nil {
		return nil, errors.ErrMissingInput()
	}

	source := entities.SourceRawText
	if file != nil {
		text = string(file)
		source = entities.SourceUploadedFile
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.ErrEmptyInput()
	}

	if n := len([]rune(text)); n > MaxInputChars {
		return nil, errors.ErrInputTooLarge(n, MaxInputChars)
	}

	return &entities.MeetingInput{Text: text, Source: source}, nil
}

package meeting

import (
	"time"

	"github.com/lethanhdat/meeting-extractor/internal/domain/entities"
)

// Metadata describes how the input was processed. Field names are camelCase
// because they are part of the public wire contract.
type Metadata struct {
	ProcessedAt time.Time `json:"processedAt"`
	InputLength int       `json:"inputLength"`
	InputType   string    `json:"inputType"`
}

// ProcessMeetingResponse is the success envelope for POST /process-meeting.
type ProcessMeetingResponse struct {
	Success  bool                       `json:"success"`
	Data     *entities.ExtractionResult `json:"data"`
	Metadata Metadata                   `json:"metadata"`
}

// ErrorResponse is the body of every failure response: a short
// machine-usable label plus a human-readable message. Details carries the
// underlying cause and is only populated outside production mode.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ServiceInfo is returned by the informational root endpoint.
type ServiceInfo struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

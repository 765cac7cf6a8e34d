package entities

// SourceKind identifies where the meeting notes came from.
type SourceKind string

const (
	SourceRawText      SourceKind = "text"
	SourceUploadedFile SourceKind = "file"
)

// MeetingInput is the canonical, request-scoped payload produced by the
// input normalizer. Exactly one source supplies Text.
type MeetingInput struct {
	Text   string
	Source SourceKind
}

// Length returns the number of characters in the normalized text.
func (m *MeetingInput) Length() int {
	return len([]rune(m.Text))
}

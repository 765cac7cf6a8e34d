package meeting

// ProcessMeetingRequest is the JSON body accepted by POST /process-meeting
// when no file is uploaded.
type ProcessMeetingRequest struct {
	Text string `json:"text" form:"text"`
}

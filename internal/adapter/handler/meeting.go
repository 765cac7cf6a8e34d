package handler

import (
	stdErrors "errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lethanhdat/meeting-extractor/errors"
	dtomeeting "github.com/lethanhdat/meeting-extractor/internal/adapter/dto/meeting"
	meetinguse "github.com/lethanhdat/meeting-extractor/internal/usecase/meeting"
	"github.com/lethanhdat/meeting-extractor/pkg/config"
)

// MaxUploadBytes is the upload limit for the multipart file field.
const MaxUploadBytes = 10 << 20 // 10MB

// MeetingController handles the meeting-notes extraction endpoint
type MeetingController struct {
	svc     meetinguse.Service
	logger  *zap.Logger
	verbose bool
}

// NewMeetingController creates a new meeting controller
func NewMeetingController(svc meetinguse.Service, logger *zap.Logger, cfg *config.Config) *MeetingController {
	return &MeetingController{
		svc:     svc,
		logger:  logger,
		verbose: cfg == nil || !cfg.IsProduction(),
	}
}

// ProcessMeeting extracts a summary, decisions and action items from notes
// @Summary      Process meeting notes
// @Description  Sends user-submitted meeting notes to the AI service and returns the structured extraction
// @Tags         Meetings
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        text  body      object{text=string}  false  "Inline meeting notes"
// @Param        file  formData  file                 false  "Plain text file with meeting notes (max 10MB)"
// @Success      200   {object}  dtomeeting.ProcessMeetingResponse
// @Failure      400   {object}  dtomeeting.ErrorResponse  "Missing, empty or oversized input"
// @Failure      401   {object}  dtomeeting.ErrorResponse  "Upstream rejected the API key"
// @Failure      429   {object}  dtomeeting.ErrorResponse  "Upstream quota or rate limit"
// @Failure      504   {object}  dtomeeting.ErrorResponse  "Upstream timeout"
// @Failure      500   {object}  dtomeeting.ErrorResponse  "Processing failed"
// @Router       /process-meeting [post]
func (mc *MeetingController) ProcessMeeting(c echo.Context) error {
	text, file, err := mc.readInput(c)
	if err != nil {
		return HandleError(mc.logger, c, err, mc.verbose)
	}

	input, err := meetinguse.Normalize(text, file)
	if err != nil {
		return HandleError(mc.logger, c, err, mc.verbose)
	}

	result, err := mc.svc.ProcessMeeting(c.Request().Context(), input)
	if err != nil {
		return HandleError(mc.logger, c, err, mc.verbose)
	}

	if mc.logger != nil {
		mc.logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("input_type", string(input.Source)),
			zap.Int("input_length", input.Length()),
		)
	}

	return c.JSON(http.StatusOK, dtomeeting.ProcessMeetingResponse{
		Success: true,
		Data:    result,
		Metadata: dtomeeting.Metadata{
			ProcessedAt: time.Now().UTC(),
			InputLength: input.Length(),
			InputType:   string(input.Source),
		},
	})
}

// readInput resolves the two transport forms into the normalizer's inputs:
// a multipart upload (file returned non-nil, size and MIME checked here,
// before anything reaches the pipeline) or an inline text field.
func (mc *MeetingController) readInput(c echo.Context) (string, []byte, error) {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		var req dtomeeting.ProcessMeetingRequest
		if err := c.Bind(&req); err != nil {
			return "", nil, errors.ErrInvalidPayload(err)
		}
		return req.Text, nil, nil
	}

	fh, err := c.FormFile("file")
	if err != nil {
		if stdErrors.Is(err, http.ErrMissingFile) {
			return c.FormValue("text"), nil, nil
		}
		return "", nil, errors.ErrInvalidPayload(err)
	}

	if fh.Size > MaxUploadBytes {
		return "", nil, errors.ErrFileTooLarge(fh.Size, MaxUploadBytes)
	}
	if ct := fh.Header.Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/plain") {
		return "", nil, errors.ErrInvalidFileType(ct)
	}

	src, err := fh.Open()
	if err != nil {
		return "", nil, errors.ErrInternal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxUploadBytes+1))
	if err != nil {
		return "", nil, errors.ErrInternal(err)
	}
	if int64(len(data)) > MaxUploadBytes {
		return "", nil, errors.ErrFileTooLarge(int64(len(data)), MaxUploadBytes)
	}

	return "", data, nil
}

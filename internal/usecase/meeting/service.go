package meeting

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/lethanhdat/meeting-extractor/errors"
	"github.com/lethanhdat/meeting-extractor/internal/domain/entities"
	pkgai "github.com/lethanhdat/meeting-extractor/pkg/ai"
	"github.com/lethanhdat/meeting-extractor/pkg/config"
)

// ChatClient is the upstream AI service as the pipeline sees it: text in,
// text out. The Groq client implements it; tests substitute a stub.
type ChatClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service defines the extraction pipeline
type Service interface {
	ProcessMeeting(ctx context.Context, input *entities.MeetingInput) (*entities.ExtractionResult, error)
}

type service struct {
	client ChatClient
	parser *Parser
	cfg    *config.Config
	logger *zap.Logger
}

// NewService constructs the extraction pipeline around an injected client.
func NewService(client ChatClient, cfg *config.Config, logger *zap.Logger) Service {
	return &service{
		client: client,
		parser: NewParser(),
		cfg:    cfg,
		logger: logger,
	}
}

const extractionPrompt = `You are an assistant that extracts structured information from meeting notes.

Analyze the meeting notes below and return ONLY a JSON object, with no surrounding text or markdown, in exactly this shape:

{
  "summary": "a concise summary of the meeting",
  "decisions": ["each decision that was made"],
  "actionItems": [
    {
      "task": "what needs to be done",
      "owner": "who is responsible, or null if not stated",
      "due": "the due date as stated, or null if not stated"
    }
  ]
}

Use null for owner and due when the notes do not state them. Do not invent information that is not in the notes.

Meeting notes:

%s`

// ProcessMeeting runs the extraction pipeline: build the prompt, call the
// upstream model, strip any code fence, parse and shape-validate the JSON.
// Errors from the upstream transport are classified at the boundary.
func (s *service) ProcessMeeting(ctx context.Context, input *entities.MeetingInput) (*entities.ExtractionResult, error) {
	prompt := fmt.Sprintf(extractionPrompt, input.Text)

	start := time.Now()
	content, err := s.complete(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("upstream extraction call failed",
				zap.Int("input_length", input.Length()),
				zap.String("input_type", string(input.Source)),
				zap.Error(err),
			)
		}
		return nil, errors.ClassifyUpstream(err)
	}

	result, err := s.parser.ParseExtraction(content)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("extraction response rejected",
				zap.Int("raw_length", len(content)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("extraction completed",
			zap.Int("input_length", input.Length()),
			zap.String("input_type", string(input.Source)),
			zap.Int("decisions", len(result.Decisions)),
			zap.Int("action_items", len(result.ActionItems)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	return result, nil
}

// complete invokes the upstream exactly once unless GROQ_MAX_RETRIES is set;
// with retries enabled, only transient transport failures (network errors,
// upstream 5xx) are retried. Client-caused 4xx failures are permanent.
func (s *service) complete(ctx context.Context, prompt string) (string, error) {
	maxRetries := 0
	if s.cfg != nil {
		maxRetries = s.cfg.Groq.MaxRetries
	}

	if maxRetries <= 0 {
		return s.client.Complete(ctx, prompt)
	}

	var content string
	op := func() error {
		var err error
		content, err = s.client.Complete(ctx, prompt)
		if err == nil {
			return nil
		}
		var statusErr *pkgai.StatusError
		if stderrors.As(err, &statusErr) && statusErr.StatusCode < 500 {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(maxRetries)), ctx))
	return content, err
}

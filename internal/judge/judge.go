// Package judge asks an OpenAI-compatible chat model whether a new proposal duplicates
// its nearest prior projects.
package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/logger"
	"project-intake-backend/internal/vectorindex"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/time/rate"
)

//go:generate mockgen -source=judge.go -destination=../mocks/judge_mocks.go -package=mocks

const (
	defaultBaseURL   = "https://openrouter.ai/api/v1"
	defaultModel     = "xiaomi/mimo-v2-flash:free"
	defaultReferer   = "http://localhost:3000"
	defaultRateLimit = 2.0
	defaultBurst     = 4
	defaultTimeout   = 60 * time.Second
)

// NewProject is the proposal under review
type NewProject struct {
	Title    string
	Synopsis string
}

// JudgeInterface returns the judgment text for a proposal and its nearest matches.
// The text is JSON on success and an error object otherwise; it is never empty.
type JudgeInterface interface {
	Judge(ctx context.Context, project NewProject, matches []vectorindex.SimilarityMatch) string
}

// Config configures the chat completion endpoint
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	Referer   string
	RateLimit float64
	Burst     int
	// HTTPClient overrides the transport; the Referer header is added on top of it.
	HTTPClient *http.Client
}

// Client is the langchaingo-backed judge
type Client struct {
	llm     llms.Model
	limiter *rate.Limiter
	initErr error
	log     *logger.Logger
}

var _ JudgeInterface = (*Client)(nil)

// New builds a judge client. Construction never fails: a misconfigured client returns the
// error payload from every Judge call so the submission flow keeps working.
func New(cfg Config) *Client {
	c := &Client{log: logger.WithComponent("judge")}

	rateLimit := cfg.RateLimit
	if rateLimit <= 0 {
		rateLimit = defaultRateLimit
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	c.limiter = rate.NewLimiter(rate.Limit(rateLimit), burst)

	if cfg.APIKey == "" {
		c.initErr = apperrors.ErrJudgeAPIKeyMissing
		c.log.Warn("judge API key not set; similarity verdicts will be reported as errors")
		return c
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	referer := cfg.Referer
	if referer == "" {
		referer = defaultReferer
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	withHeaders := *httpClient
	withHeaders.Transport = &refererTransport{base: base, referer: referer}

	llm, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
		openai.WithHTTPClient(&withHeaders),
		openai.WithResponseFormat(openai.ResponseFormatJSON),
	)
	if err != nil {
		c.initErr = fmt.Errorf("creating chat client: %w", err)
		return c
	}
	c.llm = llm
	return c
}

// Judge never returns an empty string and never panics on transport failures.
func (c *Client) Judge(ctx context.Context, project NewProject, matches []vectorindex.SimilarityMatch) string {
	if c.initErr != nil {
		return ErrorPayload(c.initErr)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return ErrorPayload(fmt.Errorf("rate limiter: %w", err))
	}

	start := time.Now()
	resp, err := c.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, BuildPrompt(project, matches)),
	}, llms.WithTemperature(0.2))
	if err != nil {
		logger.WithContext(ctx).WithField("component", "judge").WithError(err).Warn("judge request failed")
		return ErrorPayload(err)
	}
	if len(resp.Choices) == 0 {
		return ErrorPayload(errors.New("empty response from model"))
	}

	content := strings.TrimSpace(Sanitize(resp.Choices[0].Content))
	if content == "" {
		return ErrorPayload(errors.New("empty response from model"))
	}

	c.log.WithFields(map[string]interface{}{
		"matches": len(matches),
		"took_ms": time.Since(start).Milliseconds(),
	}).Debug("judge verdict received")
	return content
}

type errorVerdict struct {
	Status string `json:"status"`
	Score  int    `json:"score"`
}

type errorBody struct {
	Error   string       `json:"error"`
	Verdict errorVerdict `json:"verdict"`
}

// ErrorPayload renders a failed judge call as the degraded judgment object.
func ErrorPayload(err error) string {
	return FailurePayload("AI Check Failed: " + err.Error())
}

// FailurePayload renders message as a degraded judgment object with an Error verdict.
func FailurePayload(message string) string {
	body, _ := json.Marshal(errorBody{
		Error:   Sanitize(message),
		Verdict: errorVerdict{Status: "Error", Score: 0},
	})
	return string(body)
}

// Sanitize drops non-ASCII runes and control characters other than newline,
// carriage return, and tab.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteRune(r)
		case r < 0x20 || r >= 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

type refererTransport struct {
	base    http.RoundTripper
	referer string
}

func (t *refererTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", t.referer)
	return t.base.RoundTrip(req)
}

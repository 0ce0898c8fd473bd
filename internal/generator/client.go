// Package generator is the HTTP client for the content generation service.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rshade/contentbatch/internal/content"
	"github.com/rshade/contentbatch/internal/logging"
	"github.com/rshade/contentbatch/pkg/version"
)

const (
	defaultTimeout = 60 * time.Second

	// maxErrorBody bounds how much of a failed response is kept in StatusError.
	maxErrorBody = 512

	headerRequestID = "X-Request-ID"
)

var (
	// ErrGenerationFailed is returned when the service answers success=false.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrMalformedResponse is returned when the response cannot be decoded or
	// carries no content.
	ErrMalformedResponse = errors.New("malformed generation response")

	// ErrNoEndpoint is returned by New when no endpoint is configured.
	ErrNoEndpoint = errors.New("generator endpoint is required")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
	RequestID  string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("generation service returned status %d", e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Options configures a Client.
type Options struct {
	Endpoint      string
	Timeout       time.Duration
	APIToken      string
	UseSupervisor bool

	// HTTPClient overrides the default client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client calls the generation endpoint once per task.
type Client struct {
	endpoint      string
	apiToken      string
	useSupervisor bool
	http          *http.Client
	userAgent     string
}

// New creates a Client.
func New(opts Options) (*Client, error) {
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		endpoint:      endpoint,
		apiToken:      opts.APIToken,
		useSupervisor: opts.UseSupervisor,
		http:          httpClient,
		userAgent:     "contentbatch/" + version.GetVersion(),
	}, nil
}

// Request is the JSON body sent for each task.
type Request struct {
	Topic          string   `json:"topic"`
	Keywords       []string `json:"keywords"`
	ContentType    string   `json:"contentType"`
	TargetAudience string   `json:"targetAudience"`
	UseSupervisor  bool     `json:"useSupervisor"`
}

type response struct {
	Success bool           `json:"success"`
	Content *content.Draft `json:"content"`
	Error   string         `json:"error"`
}

// NewRequest builds the request body for task.
func (c *Client) NewRequest(task content.Task) Request {
	keywords := task.Topic.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return Request{
		Topic:          task.Topic.Name,
		Keywords:       keywords,
		ContentType:    task.Type.WireName(),
		TargetAudience: task.TargetAudience,
		UseSupervisor:  c.useSupervisor,
	}
}

// Generate requests one draft for task. It matches batch.RequestFunc.
func (c *Client) Generate(ctx context.Context, task content.Task) (content.Draft, error) {
	log := logging.ComponentLogger(*logging.FromContext(ctx), "generator")
	requestID := uuid.NewString()

	body, err := json.Marshal(c.NewRequest(task))
	if err != nil {
		return content.Draft{}, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return content.Draft{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(headerRequestID, requestID)
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	log.Debug().
		Ctx(ctx).
		Str("request_id", requestID).
		Str("topic", task.Topic.ID).
		Str("content_type", task.Type.WireName()).
		Msg("sending generation request")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return content.Draft{}, fmt.Errorf("calling generation service: %w", err)
	}
	defer resp.Body.Close()

	log.Debug().
		Ctx(ctx).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("generation response received")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return content.Draft{}, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
			RequestID:  requestID,
		}
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return content.Draft{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if !out.Success {
		if out.Error != "" {
			return content.Draft{}, fmt.Errorf("%w: %s", ErrGenerationFailed, out.Error)
		}
		return content.Draft{}, ErrGenerationFailed
	}
	if out.Content == nil {
		return content.Draft{}, fmt.Errorf("%w: missing content", ErrMalformedResponse)
	}

	return fillDraft(*out.Content, task), nil
}

// fillDraft completes fields the service may leave empty.
func fillDraft(d content.Draft, task content.Task) content.Draft {
	if d.Type == "" {
		d.Type = task.Type.WireName()
	}
	if d.Metadata.TopicPillar == "" {
		d.Metadata.TopicPillar = task.Topic.Name
	}
	if len(d.Metadata.Keywords) == 0 && len(task.Topic.Keywords) > 0 {
		d.Metadata.Keywords = append([]string(nil), task.Topic.Keywords...)
	}
	return d
}

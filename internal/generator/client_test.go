package generator_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/contentbatch/internal/content"
	"github.com/rshade/contentbatch/internal/generator"
)

func testTask() content.Task {
	return content.Task{
		Topic: content.Topic{
			ID:       "pillar_002",
			Name:     "SEO Best Practices",
			Keywords: []string{"SEO optimization", "organic traffic"},
		},
		Type:           content.ContentTypeShortVideo,
		TargetAudience: "digital marketers and content creators",
	}
}

func newClient(t *testing.T, handler http.HandlerFunc, token string) *generator.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := generator.New(generator.Options{
		Endpoint:      srv.URL + "/api/generate",
		Timeout:       5 * time.Second,
		APIToken:      token,
		UseSupervisor: true,
	})
	require.NoError(t, err)
	return c
}

func TestGenerate_Success(t *testing.T) {
	var got generator.Request
	var headers http.Header
	var path string

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		headers = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"content":{"title":"Rank Higher","content":"script",` +
			`"metadata":{"seoScore":87,"hashtags":["#seo"]}}}`))
	}, "secret")

	draft, err := c.Generate(context.Background(), testTask())
	require.NoError(t, err)

	assert.Equal(t, "/api/generate", path)
	assert.Equal(t, "SEO Best Practices", got.Topic)
	assert.Equal(t, []string{"SEO optimization", "organic traffic"}, got.Keywords)
	assert.Equal(t, "youtube-short", got.ContentType)
	assert.Equal(t, "digital marketers and content creators", got.TargetAudience)
	assert.True(t, got.UseSupervisor)

	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, "Bearer secret", headers.Get("Authorization"))
	assert.NotEmpty(t, headers.Get("X-Request-ID"))
	assert.Contains(t, headers.Get("User-Agent"), "contentbatch/")

	assert.Equal(t, "Rank Higher", draft.Title)
	assert.Equal(t, 87, draft.Metadata.SEOScore)
	assert.Equal(t, "youtube-short", draft.Type, "type is filled from the task")
	assert.Equal(t, "SEO Best Practices", draft.Metadata.TopicPillar)
	assert.Equal(t, []string{"SEO optimization", "organic traffic"}, draft.Metadata.Keywords)
}

func TestGenerate_NoTokenNoAuthHeader(t *testing.T) {
	var auth string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"content":{"title":"t","type":"blog","content":"c"}}`))
	}, "")

	draft, err := c.Generate(context.Background(), testTask())
	require.NoError(t, err)
	assert.Empty(t, auth)
	assert.Equal(t, "blog", draft.Type, "service type wins")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "success false", status: http.StatusOK, body: `{"success":false,"error":"quota exceeded"}`,
			wantErr: generator.ErrGenerationFailed},
		{name: "success false no message", status: http.StatusOK, body: `{"success":false}`,
			wantErr: generator.ErrGenerationFailed},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: generator.ErrMalformedResponse},
		{name: "missing content", status: http.StatusOK, body: `{"success":true}`,
			wantErr: generator.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			_, err := c.Generate(context.Background(), testTask())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerate_StatusError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream model overloaded", http.StatusServiceUnavailable)
	}, "")

	_, err := c.Generate(context.Background(), testTask())

	var statusErr *generator.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "upstream model overloaded", statusErr.Body)
	assert.NotEmpty(t, statusErr.RequestID)
	assert.Contains(t, err.Error(), "503")
}

func TestGenerate_ContextCancelled(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"content":{}}`))
	}, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Generate(ctx, testTask())
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew_RequiresEndpoint(t *testing.T) {
	_, err := generator.New(generator.Options{Endpoint: "  "})
	require.ErrorIs(t, err, generator.ErrNoEndpoint)
}

func TestNewRequest_NilKeywords(t *testing.T) {
	c, err := generator.New(generator.Options{Endpoint: "http://example.invalid"})
	require.NoError(t, err)

	req := c.NewRequest(content.Task{Topic: content.Topic{Name: "x"}, Type: content.ContentTypeBlog})
	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"keywords":[]`)
	assert.Contains(t, string(body), `"useSupervisor":false`)
}

package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"beauty-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T, status int, body string, capture *GeminiChatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("failed to decode request payload: %v", err)
			}
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestGenerateReturnsFirstCandidate(t *testing.T) {
	var captured GeminiChatRequest
	srv := newTestServer(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"Why did the chicken cross the road?"}]}}]}`,
		&captured,
	)
	defer srv.Close()

	p := NewGeminiProvider("test-key", "").WithBaseURL(srv.URL)
	got, err := p.Generate(context.Background(), "tell me a joke")

	assert.NoError(t, err)
	assert.Equal(t, "Why did the chicken cross the road?", got)

	// Wire format: one content with one text part holding the raw prompt.
	assert.Len(t, captured.Contents, 1)
	assert.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "tell me a joke", captured.Contents[0].Parts[0].Text)
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"candidates":[]}`, nil)
	defer srv.Close()

	p := NewGeminiProvider("test-key", "").WithBaseURL(srv.URL)
	_, err := p.Generate(context.Background(), "anything")

	assert.True(t, errors.Is(err, llm.ErrNoCandidates))
}

func TestGenerateHTTPError(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `boom`, nil)
	defer srv.Close()

	p := NewGeminiProvider("test-key", "").WithBaseURL(srv.URL)
	_, err := p.Generate(context.Background(), "anything")

	assert.Error(t, err)
	assert.False(t, errors.Is(err, llm.ErrNoCandidates))
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{}`, nil)
	srv.Close() // connection refused from here on

	p := NewGeminiProvider("test-key", "").WithBaseURL(srv.URL)
	_, err := p.Generate(context.Background(), "anything")

	assert.Error(t, err)
}

package openai

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

	"github.com/akozadaev/lunch_solution_center/internal/apperr"
)

func newServer(t *testing.T, status int, body string, check func(r *http.Request)) string {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("", "", "", time.Second, nil)

	var cfgErr *apperr.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "OPENAI_API_KEY", cfgErr.Key)
}

func TestComplete(t *testing.T) {
	url := newServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"국밥, 해장국"}}]}`, func(r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, 0.3, req.Temperature)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "prompt", req.Messages[0].Content)
	})
	c, err := NewClient("sk-test", url, "", time.Second, nil)
	require.NoError(t, err)

	got, err := c.Complete(context.Background(), "prompt", 0.3)

	require.NoError(t, err)
	assert.Equal(t, "국밥, 해장국", got)
}

func TestCompleteUpstreamError(t *testing.T) {
	url := newServer(t, http.StatusTooManyRequests, `{"error":{"message":"rate limited"}}`, nil)
	c, err := NewClient("sk-test", url, "", time.Second, nil)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "prompt", 0)

	var upstream *apperr.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
}

func TestCompleteNoChoices(t *testing.T) {
	url := newServer(t, http.StatusOK, `{"choices":[]}`, nil)
	c, err := NewClient("sk-test", url, "", time.Second, nil)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "prompt", 0)

	assert.EqualError(t, err, "no response from OpenAI")
}

package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		assert.Equal(t, "hr", r.Header.Get("X-Title"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "m1", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "levels?", req.Messages[1].Content)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{}"}}]}`))
	}))
	defer srv.Close()

	c := New("k", srv.URL+"/api/", "m1", "hr", "", WithHTTPClient(srv.Client()))
	got, err := c.Ask(context.Background(), "sys", "levels?")
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
	assert.Equal(t, "m1", c.Model())
}

func TestAskErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer limited":
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		default:
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}
	}))
	defer srv.Close()

	_, err := New("", srv.URL, "", "", "").Ask(context.Background(), "", "")
	assert.ErrorContains(t, err, "api key is empty")

	_, err = New("limited", srv.URL, "", "", "").Ask(context.Background(), "", "")
	assert.ErrorContains(t, err, "429: rate limited")

	_, err = New("k", srv.URL, "", "", "").Ask(context.Background(), "", "")
	assert.ErrorContains(t, err, "no choices")

	assert.Equal(t, DefaultModel, New("k", "", "", "", "").Model())
}

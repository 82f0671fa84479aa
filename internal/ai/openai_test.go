package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, status int, body interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func choices(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
}

func TestOpenAIComplete(t *testing.T) {
	srv := completionServer(t, http.StatusOK, choices("  Spray neem oil weekly.  "))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	reply, err := c.Complete(context.Background(), "How to handle stem borer?")
	require.NoError(t, err)
	assert.Equal(t, "Spray neem oil weekly.", reply)
}

func TestOpenAICompleteNoChoices(t *testing.T) {
	srv := completionServer(t, http.StatusOK, map[string]interface{}{"choices": []interface{}{}})
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	_, err := c.Complete(context.Background(), "hello")
	assert.Error(t, err)
}

func TestOpenAICompleteEmptyContent(t *testing.T) {
	srv := completionServer(t, http.StatusOK, choices("   "))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	_, err := c.Complete(context.Background(), "hello")
	assert.Error(t, err)
}

func TestOpenAICompleteServerError(t *testing.T) {
	srv := completionServer(t, http.StatusBadGateway, map[string]string{"error": "upstream"})
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	_, err := c.Complete(context.Background(), "hello")
	assert.Error(t, err)
}

func TestOpenAICompleteUnreachable(t *testing.T) {
	c := NewOpenAI("http://127.0.0.1:1", "test-key", "test-model")
	_, err := c.Complete(context.Background(), "hello")
	assert.Error(t, err)
}

func TestMockAlwaysAnswers(t *testing.T) {
	m := NewMock()
	for _, q := range []string{"leaf blight on banana", "pest on brinjal", "എന്റെ നെല്ല് വാടുന്നു"} {
		reply, err := m.Complete(context.Background(), q)
		require.NoError(t, err)
		assert.NotEmpty(t, reply)
	}
}

package exa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	const upstreamBody = `{"autopromptString":"x","results":[{"id":"a","title":"A","url":"https://a.test"},{"id":"b","title":"B","url":"https://b.test"}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))

		var payload SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, SearchRequest{Query: "learn Go tutorial", NumResults: 2, Type: SearchTypeNeural, UseAutoprompt: true}, payload)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-agent/1.0", 5*time.Second, logrus.New())

	resp, err := client.Search(context.Background(), SearchRequest{
		Query:         "learn Go tutorial",
		NumResults:    2,
		Type:          SearchTypeNeural,
		UseAutoprompt: true,
	})
	require.NoError(t, err)
	assert.Equal(t, upstreamBody, string(resp.Raw))
	assert.Equal(t, []string{"a", "b"}, resp.IDs())
}

func TestClient_SearchOmitsAutopromptForKeyword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "keyword", payload["type"])
		assert.NotContains(t, payload, "useAutoprompt")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "", 5*time.Second, logrus.New())

	resp, err := client.Search(context.Background(), SearchRequest{Query: "q", NumResults: 2, Type: SearchTypeKeyword})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestClient_Contents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contents", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []interface{}{"a", "b"}, payload["ids"])
		text := payload["text"].(map[string]interface{})
		assert.Equal(t, float64(2000), text["maxCharacters"])
		assert.Equal(t, false, text["includeHtmlTags"])

		w.Write([]byte(`{"results":[{"id":"a","text":"X"},{"id":"b","text":"Y"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "", 5*time.Second, logrus.New())

	resp, err := client.Contents(context.Background(), ContentsRequest{
		IDs:  []string{"a", "b"},
		Text: &TextOptions{MaxCharacters: 2000},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "X", resp.Results[0].Text)
	assert.Equal(t, "b", resp.Results[1].ID)
}

func TestClient_ContentsMissingResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"requestId":"r1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "", 5*time.Second, logrus.New())

	resp, err := client.Contents(context.Background(), ContentsRequest{IDs: []string{"a"}})
	require.NoError(t, err)
	assert.Nil(t, resp.Results)
}

func TestClient_ErrorHandling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Invalid API key"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "", 5*time.Second, logrus.New())

	_, err := client.Search(context.Background(), SearchRequest{Query: "q", NumResults: 2, Type: SearchTypeNeural})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "", 5*time.Second, logrus.New())

	_, err := client.Search(context.Background(), SearchRequest{Query: "q", NumResults: 2, Type: SearchTypeNeural})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

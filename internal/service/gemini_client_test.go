package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripcraft/tripcraft-api/internal/config"
	"go.uber.org/zap"
)

func newTestGeminiClient(url string) *GeminiClient {
	return NewGeminiClient(config.GeminiConfig{APIURL: url, APIKey: "test-key"}, zap.NewNop())
}

func geminiEnvelope(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
}

func TestGeminiGenerateParsesFencedJSON(t *testing.T) {
	catalogJSON := `{"spots":[{"name":"Louvre","category":"art"}],"hotels":[{"name":"Hotel B","stayType":"Stay"}]}`

	var gotRequest geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		json.NewEncoder(w).Encode(geminiEnvelope("```json\n" + catalogJSON + "\n```"))
	}))
	defer server.Close()

	client := newTestGeminiClient(server.URL)

	catalog, err := client.Generate(context.Background(), "Paris")
	require.NoError(t, err)
	require.Len(t, catalog.Spots, 1)
	assert.Equal(t, "Louvre", catalog.Spots[0].Name)
	require.Len(t, catalog.Hotels, 1)
	assert.Equal(t, "Stay", catalog.Hotels[0].StayType)

	// The outgoing prompt names the destination.
	require.NotEmpty(t, gotRequest.Contents)
	require.NotEmpty(t, gotRequest.Contents[0].Parts)
	assert.Contains(t, gotRequest.Contents[0].Parts[0].Text, `"destination": "Paris"`)
}

func TestGeminiGenerateParsesBareJSON(t *testing.T) {
	catalogJSON := `{"spots":[{"name":"Louvre"}],"hotels":[]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiEnvelope(catalogJSON))
	}))
	defer server.Close()

	catalog, err := newTestGeminiClient(server.URL).Generate(context.Background(), "Paris")
	require.NoError(t, err)
	require.Len(t, catalog.Spots, 1)
	assert.Equal(t, "Louvre", catalog.Spots[0].Name)
}

func TestGeminiGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestGeminiClient(server.URL).Generate(context.Background(), "Paris")
	assert.ErrorIs(t, err, ErrEnrichmentUnavailable)
}

func TestGeminiGenerateUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestGeminiClient(server.URL).Generate(context.Background(), "Paris")
	assert.ErrorIs(t, err, ErrEnrichmentUnavailable)
}

func TestGeminiGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	_, err := newTestGeminiClient(server.URL).Generate(context.Background(), "Paris")
	assert.ErrorIs(t, err, ErrEnrichmentParse)
}

func TestGeminiGenerateGarbageText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiEnvelope("I'm sorry, I cannot generate that."))
	}))
	defer server.Close()

	_, err := newTestGeminiClient(server.URL).Generate(context.Background(), "Paris")
	assert.ErrorIs(t, err, ErrEnrichmentParse)
}

func TestStripMarkdownFences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripMarkdownFences(tc.input))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	client := newTestGeminiClient("http://unused")

	prompt := client.BuildPrompt("Kyoto")
	assert.Contains(t, prompt, `"destination": "Kyoto"`)
	assert.Contains(t, prompt, "exactly 25 unique and diverse tourist spots")
	assert.Contains(t, prompt, "exactly 30 unique hotels")
	assert.Contains(t, prompt, `15 hotels with stayType "Stay"`)
	assert.Contains(t, prompt, `15 hotels with stayType "Lunch"`)
}

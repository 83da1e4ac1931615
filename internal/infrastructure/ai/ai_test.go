package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fk219/Send-My-Invoice/internal/infrastructure/ai"
)

func geminiServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{"parts": []any{map[string]any{"text": text}}},
				"groundingMetadata": map[string]any{
					"groundingChunks": []any{map[string]any{"web": map[string]any{"uri": "https://acme.studio"}}},
				},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGemini_SinAPIKeyDevuelveErrNotConfigured(t *testing.T) {
	_, err := ai.NewGeminiService("", "gemini-2.5-flash").EnhanceDescription(context.Background(), "x")
	assert.ErrorIs(t, err, ai.ErrNotConfigured)
}

func TestGemini_EnhanceDescriptionLimpiaComillas(t *testing.T) {
	srv := geminiServer(t, "  \"Brand identity consultation\"\n")
	svc := ai.NewGeminiService("k", "m").WithBaseURL(srv.URL + "/models/%s:generateContent?key=%s")

	out, err := svc.EnhanceDescription(context.Background(), "logo stuff")
	require.NoError(t, err)
	assert.Equal(t, "Brand identity consultation", out)
}

func TestGemini_AnalyzeBrandExtraeJSONDelTexto(t *testing.T) {
	srv := geminiServer(t, "Here you go:\n```json\n{\"color\":\"#4F46E5\",\"logo\":\"https://acme.studio/logo.png\",\"font\":\"Serif\"}\n```")
	svc := ai.NewGeminiService("k", "m").WithBaseURL(srv.URL + "/models/%s:generateContent?key=%s")

	out, err := svc.AnalyzeBrand(context.Background(), "https://acme.studio")
	require.NoError(t, err)
	assert.Equal(t, "#4F46E5", out.Color)
	assert.Equal(t, "serif", out.Font)
	assert.Equal(t, "https://acme.studio/logo.png", out.LogoURL)
	assert.Equal(t, "https://acme.studio", out.SourceURL)
}

func TestGemini_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"bad key"}}`))
	}))
	defer srv.Close()
	svc := ai.NewGeminiService("k", "m").WithBaseURL(srv.URL + "/models/%s:generateContent?key=%s")

	_, err := svc.EnhanceDescription(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestOpenAI_EnhanceDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Website redesign"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("k")
	cfg.BaseURL = srv.URL + "/v1"
	out, err := ai.NewOpenAIServiceWithConfig(cfg, "gpt-4o-mini").EnhanceDescription(context.Background(), "web redo")
	require.NoError(t, err)
	assert.Equal(t, "Website redesign", out)
}

func TestOpenAI_SinAPIKey(t *testing.T) {
	_, err := ai.NewOpenAIService("", "gpt-4o-mini").AnalyzeBrand(context.Background(), "https://x.io")
	assert.ErrorIs(t, err, ai.ErrNotConfigured)
}

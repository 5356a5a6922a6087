package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMessages = []Message{
	{Role: RoleSystem, Content: "You are a fake news detection expert."},
	{Role: RoleUser, Content: "Analyze this news text for potential misinformation: aliens built the pyramids"},
}

func TestCompletionChat(t *testing.T) {
	var calls int
	var got struct {
		Messages []Message `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"completion":"{\"credibilityScore\":12}"}`))
	}))
	defer srv.Close()

	c := NewCompletion(srv.URL, "", 0)
	out, err := c.Chat(context.Background(), testMessages)
	require.NoError(t, err)
	assert.Equal(t, `{"credibilityScore":12}`, out)
	assert.Equal(t, 1, calls)
	assert.Equal(t, testMessages, got.Messages)
}

func TestCompletionChatErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"completion":"x"}`},
		{name: "not found", status: http.StatusNotFound, body: `not here`},
		{name: "not json", status: http.StatusOK, body: `<html>oops</html>`},
		{name: "missing completion", status: http.StatusOK, body: `{"text":"hi"}`},
		{name: "empty completion", status: http.StatusOK, body: `{"completion":""}`},
		{name: "null completion", status: http.StatusOK, body: `{"completion":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewCompletion(srv.URL, "", 0).Chat(context.Background(), testMessages)
			assert.Error(t, err)
		})
	}
}

func TestCompletionChatNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewCompletion(url, "", 0).Chat(context.Background(), testMessages)
	assert.Error(t, err)
}

func TestCompletionSendsBearerWhenKeySet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"completion":"ok"}`))
	}))
	defer srv.Close()

	_, err := NewCompletion(srv.URL, "secret", 0).Chat(context.Background(), testMessages)
	require.NoError(t, err)
}

func TestCompletionDefaultEndpoint(t *testing.T) {
	assert.Equal(t, DefaultCompletionEndpoint, NewCompletion("", "", 0).Endpoint())
}

func TestClaudeChatMovesSystemPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		var body struct {
			System   string    `json:"system"`
			Messages []Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, testMessages[0].Content, body.System)
		require.Len(t, body.Messages, 1)
		assert.Equal(t, RoleUser, body.Messages[0].Role)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{}"}]}`))
	}))
	defer srv.Close()

	l, err := NewFactory().CreateLLM(context.Background(), ProviderClaude, Options{APIKey: "key", Endpoint: srv.URL})
	require.NoError(t, err)
	out, err := l.Chat(context.Background(), testMessages)
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
	assert.Equal(t, defaultClaudeModel, ModelName(l))
}

func TestOpenAIChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		var body struct {
			Model    string    `json:"model"`
			Messages []Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body.Model)
		assert.Equal(t, testMessages, body.Messages)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"analysis\":\"ok\"}"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	l, err := NewFactory().CreateLLM(context.Background(), ProviderOpenAI, Options{APIKey: "key", Model: "gpt-4o-mini", Endpoint: srv.URL})
	require.NoError(t, err)
	out, err := l.Chat(context.Background(), testMessages)
	require.NoError(t, err)
	assert.Equal(t, `{"analysis":"ok"}`, out)
}

func TestOpenAIChatNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIWithConfig("key", "", srv.URL, 0).Chat(context.Background(), testMessages)
	assert.Error(t, err)
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		in      string
		want    Provider
		wantErr bool
	}{
		{in: "", want: ProviderCompletion},
		{in: "completion", want: ProviderCompletion},
		{in: "Claude", want: ProviderClaude},
		{in: "anthropic", want: ProviderClaude},
		{in: " openai ", want: ProviderOpenAI},
		{in: "gemini", want: ProviderGemini},
		{in: "llama", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProvider(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateLLMRequiresKeys(t *testing.T) {
	f := NewFactory()
	for _, p := range []Provider{ProviderClaude, ProviderOpenAI, ProviderGemini} {
		_, err := f.CreateLLM(context.Background(), p, Options{})
		assert.Error(t, err, "provider %s", p)
	}

	l, err := f.CreateLLM(context.Background(), ProviderCompletion, Options{})
	require.NoError(t, err)
	assert.IsType(t, &Completion{}, l)

	_, err = f.CreateLLM(context.Background(), Provider("bogus"), Options{})
	assert.Error(t, err)
	assert.Len(t, f.GetAvailableProviders(), 4)
}

func TestSplitSystem(t *testing.T) {
	system, rest := splitSystem([]Message{
		{Role: RoleSystem, Content: "a"},
		{Role: RoleUser, Content: "u"},
		{Role: RoleSystem, Content: "b"},
	})
	assert.Equal(t, "a\n\nb", system)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "u"}}, rest)
}

func TestGeminiChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		var body struct {
			SystemInstruction struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"systemInstruction"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotEmpty(t, body.SystemInstruction.Parts)
		assert.Equal(t, testMessages[0].Content, body.SystemInstruction.Parts[0].Text)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"credibilityScore\":3}"}]}}]}`))
	}))
	defer srv.Close()

	l, err := NewFactory().CreateLLM(context.Background(), ProviderGemini, Options{APIKey: "key", Endpoint: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, defaultGeminiModel, ModelName(l))

	out, err := l.Chat(context.Background(), testMessages)
	require.NoError(t, err)
	assert.Equal(t, `{"credibilityScore":3}`, out)
}

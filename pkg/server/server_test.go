package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/helmcode/news-analyzer/pkg/analyzer"
	"github.com/helmcode/news-analyzer/pkg/llm"
	"github.com/helmcode/news-analyzer/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type stubLLM struct {
	calls    int
	response string
	err      error
}

func (s *stubLLM) Chat(context.Context, []llm.Message) (string, error) {
	s.calls++
	return s.response, s.err
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestAnalyzeSuccess(t *testing.T) {
	stub := &stubLLM{response: `{"credibilityScore":85,"analysis":"Looks factual","redFlags":[],"recommendations":["Verify source"]}`}
	h := NewRouter(analyzer.NewWithLLM(stub), zap.NewNop())

	rec := post(t, h, `{"text":"The city council approved the new budget on Tuesday."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	body := decodeBody(t, rec)
	assert.Equal(t, 85.0, body["credibilityScore"])
	assert.Equal(t, "good", body["band"])
	assert.Equal(t, []interface{}{"Verify source"}, body["recommendations"])
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyzeValidation(t *testing.T) {
	stub := &stubLLM{}
	h := NewRouter(analyzer.NewWithLLM(stub), nil)

	rec := post(t, h, `{"text":"   short   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please enter a longer text to analyze", decodeBody(t, rec)["error"])
	assert.Zero(t, stub.calls)
}

func TestAnalyzeRequestFailures(t *testing.T) {
	tests := []struct {
		name string
		stub *stubLLM
	}{
		{name: "network", stub: &stubLLM{err: errors.New("connection reset")}},
		{name: "not json", stub: &stubLLM{response: "nope"}},
		{name: "missing fields", stub: &stubLLM{response: `{"analysis":"x"}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRouter(analyzer.NewWithLLM(tt.stub), zap.NewNop())
			rec := post(t, h, `{"text":"Aliens have landed in the town square, officials say."}`)

			assert.Equal(t, http.StatusBadGateway, rec.Code)
			assert.Equal(t, "Error analyzing text. Please try again.", decodeBody(t, rec)["error"])
		})
	}
}

func TestAnalyzeBadBody(t *testing.T) {
	h := NewRouter(analyzer.NewWithLLM(&stubLLM{}), zap.NewNop())

	for _, body := range []string{`not json`, `{"text": 12}`, `{}`} {
		rec := post(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

type erroringAnalyzer struct{}

func (erroringAnalyzer) Analyze(context.Context, string) (*model.AnalysisResult, error) {
	return nil, errors.New("unclassified")
}

func TestAnalyzeUnclassifiedError(t *testing.T) {
	rec := post(t, NewRouter(erroringAnalyzer{}, zap.NewNop()), `{"text":"anything"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHealthz(t *testing.T) {
	h := NewRouter(analyzer.NewWithLLM(&stubLLM{}), zap.NewNop())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	h := NewRouter(analyzer.NewWithLLM(&stubLLM{}), zap.NewNop())
	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, "127.0.0.1:0", http.NotFoundHandler(), zap.NewNop())
	assert.NoError(t, err)
}

func TestRunListenError(t *testing.T) {
	err := Run(context.Background(), "127.0.0.1:-1", http.NotFoundHandler(), zap.NewNop())
	assert.Error(t, err)
}

package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nlpd/internal/nlp"
	"nlpd/pkg/types"
)

type mockService struct {
	spans    []types.Span
	entities int
	err     error
	ready   bool
	gotText string
}

func (m *mockService) Ready() bool { return m.ready }
func (m *mockService) Extract(ctx context.Context, text string) (types.Extraction, error) {
	m.gotText = text
	if m.err != nil {
		return types.Extraction{}, m.err
	}
	return types.Extraction{Spans: m.spans, Entities: m.entities}, nil
}

type mockHTTPError struct{ msg string; code int }
func (e mockHTTPError) Error() string { return e.msg }
func (e mockHTTPError) StatusCode() int { return e.code }

func postNER(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ner", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health-check", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	if w.Body.String() != "OK" { t.Fatalf("body=%q", w.Body.String()) }
}

func TestNER_ReturnsSpansInOrder(t *testing.T) {
	spans := []types.Span{{Text: "Apple", Label: "ORG"}, {Text: "Apple", Label: "PROPN"}}
	svc := &mockService{spans: spans}
	w := postNER(t, NewMux(svc), `{"text":"Apple was founded by Steve Jobs."}`)
	if w.Code != http.StatusOK { t.Fatalf("status=%d body=%s", w.Code, w.Body.String()) }
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") { t.Fatalf("content-type=%s", ct) }
	if svc.gotText != "Apple was founded by Steve Jobs." { t.Fatalf("text=%q", svc.gotText) }
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil { t.Fatalf("json: %v", err) }
	if len(got) != 2 { t.Fatalf("len=%d", len(got)) }
	for i, m := range got {
		if len(m) != 2 || m["text"] != spans[i].Text || m["label"] != spans[i].Label {
			t.Fatalf("span %d = %v", i, m)
		}
	}
}

func TestNER_EmptyResultIsArray(t *testing.T) {
	w := postNER(t, NewMux(&mockService{}), `{"text":""}`)
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	if strings.TrimSpace(w.Body.String()) != "[]" { t.Fatalf("body=%q", w.Body.String()) }
}

func TestNER_InvalidInput(t *testing.T) {
	cases := map[string]string{
		"missing text": `{"content":"x"}`,
		"null text":    `{"text":null}`,
		"number text":  `{"text":42}`,
		"not json":     `not-json`,
		"array":        `["x"]`,
		"null body":    `null`,
	}
	for name, body := range cases {
		svc := &mockService{}
		w := postNER(t, NewMux(svc), body)
		if w.Code != http.StatusBadRequest { t.Fatalf("%s: status=%d", name, w.Code) }
		var er types.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil || er.Code != http.StatusBadRequest {
			t.Fatalf("%s: error body=%s", name, w.Body.String())
		}
		if svc.gotText != "" { t.Fatalf("%s: service called", name) }
	}
}

func TestNER_RequiresJSONContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/ner", bytes.NewBufferString(`{"text":"x"}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	NewMux(&mockService{}).ServeHTTP(w, req)
	if w.Code != http.StatusUnsupportedMediaType { t.Fatalf("status=%d", w.Code) }
}

func TestNER_BodyTooLarge(t *testing.T) {
	SetMaxBodyBytes(16)
	defer SetMaxBodyBytes(0)
	w := postNER(t, NewMux(&mockService{}), `{"text":"`+strings.Repeat("a", 64)+`"}`)
	if w.Code != http.StatusBadRequest { t.Fatalf("status=%d", w.Code) }
}

func TestNER_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nlp.ErrInvalidInput("text is not valid UTF-8"), http.StatusBadRequest},
		{mockHTTPError{msg: "too busy", code: http.StatusTooManyRequests}, http.StatusTooManyRequests},
		{mockHTTPError{msg: "unavailable", code: http.StatusServiceUnavailable}, http.StatusServiceUnavailable},
		{errors.New("encoding failure"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		w := postNER(t, NewMux(&mockService{err: c.err}), `{"text":"hi"}`)
		if w.Code != c.want { t.Fatalf("%v: status=%d want %d", c.err, w.Code, c.want) }
		if !strings.Contains(w.Body.String(), c.err.Error()) { t.Fatalf("body=%s", w.Body.String()) }
	}
}

func TestNER_CanceledRequestWritesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/ner", bytes.NewBufferString(`{"text":"hi"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	NewMux(&mockService{err: context.Canceled}).ServeHTTP(w, req)
	if w.Body.Len() != 0 { t.Fatalf("expected empty body, got %q", w.Body.String()) }
}

func TestReadyz(t *testing.T) {
	w := httptest.NewRecorder()
	NewMux(&mockService{ready: true}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }

	w = httptest.NewRecorder()
	NewMux(&mockService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable { t.Fatalf("status=%d", w.Code) }
	if !strings.Contains(w.Body.String(), "draining") { t.Fatalf("body=%q", w.Body.String()) }
}

func TestCORS_AnyOrigin(t *testing.T) {
	r := NewMux(&mockService{})
	req := httptest.NewRequest(http.MethodOptions, "/ner", nil)
	req.Header.Set("Origin", "https://chat.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin=%q status=%d", got, w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/health-check", nil)
	req.Header.Set("Origin", "https://chat.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin on simple request=%q", got)
	}
}

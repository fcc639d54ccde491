package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"nlpd/internal/httpapi"
	"nlpd/internal/nlp"
	"nlpd/pkg/types"
)

var (
	hostOnce sync.Once
	host     *nlp.Host
	hostErr  error
)

// sharedHost loads the built-in model once for the whole package.
func sharedHost(t *testing.T) *nlp.Host {
	t.Helper()
	hostOnce.Do(func() { host, hostErr = nlp.New(nlp.Config{}) })
	if hostErr != nil {
		t.Fatalf("load model: %v", hostErr)
	}
	return host
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(httpapi.NewMux(sharedHost(t)))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}

func postNER(t *testing.T, srv *httptest.Server, text string) []types.Span {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"text": text})
	resp, b := postJSON(t, srv.URL+"/ner", string(body))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, b)
	}
	var spans []types.Span
	if err := json.Unmarshal(b, &spans); err != nil {
		t.Fatalf("json: %v body=%s", err, b)
	}
	return spans
}

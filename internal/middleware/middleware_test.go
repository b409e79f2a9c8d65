package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/session"
)

// captureLogs routes the default slog logger into a JSON buffer for one test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// sessionHandler issues the session cookie the way /set_model does.
func sessionHandler(store *session.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := store.Ensure(w, r)
		store.Save(id, session.Data{Provider: "deepseek", APIKey: "sk-provider"})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"Model updated"}`))
	})
}

func TestCORSMiddleware(t *testing.T) {
	var reached bool
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("adds CORS headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate_challenges", nil))

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin: got %q, want %q", got, "*")
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "X-API-Key") {
			t.Errorf("Allow-Headers: got %q, want to contain X-API-Key", got)
		}
		if !reached {
			t.Error("POST did not reach the handler")
		}
	})

	t.Run("preflight answered without reaching the handler", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/generate_plan", nil))

		if w.Code != http.StatusNoContent {
			t.Errorf("status: got %d, want %d", w.Code, http.StatusNoContent)
		}
		if reached {
			t.Error("preflight reached the handler")
		}
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen []string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, RequestIDFromContext(r.Context()))
	}))

	var headers []string
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/get", nil))
		headers = append(headers, w.Header().Get("X-Request-ID"))
	}

	for i, id := range headers {
		if len(id) != 32 || strings.Contains(id, "-") {
			t.Errorf("request %d: id %q, want 32 hex chars", i, id)
		}
		if seen[i] != id {
			t.Errorf("request %d: context id %q != header id %q", i, seen[i], id)
		}
	}
	if headers[0] == headers[1] {
		t.Error("request ids repeat across requests")
	}
	if got := RequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()); got != "" {
		t.Errorf("id outside middleware: got %q, want empty", got)
	}
}

func TestChainKeepsSessionCookie(t *testing.T) {
	store := session.NewStore(time.Hour)
	h := Chain(sessionHandler(store), nil, "")

	req := httptest.NewRequest(http.MethodPost, "/set_model", strings.NewReader("model=deepseek"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID missing")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header missing")
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("session cookie dropped by the chain")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie not HttpOnly")
	}
	if strings.Contains(cookie.Value, "sk-provider") {
		t.Error("provider key leaked into the cookie")
	}
	if d, ok := store.Get(cookie.Value); !ok || d.Provider != "deepseek" {
		t.Errorf("stored session: got %+v, %v", d, ok)
	}

	// A second request with the cookie keeps the same session.
	req = httptest.NewRequest(http.MethodPost, "/set_model", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if n := store.Len(); n != 1 {
		t.Errorf("sessions: got %d, want 1", n)
	}
}

func TestChainPreflightSkipsAuth(t *testing.T) {
	h := Chain(http.NotFoundHandler(), nil, "server-key")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/generate_challenges", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestChainRateLimitedResponseIsTagged(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), NewRateLimiter(1, time.Minute), "")

	var last *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		last = httptest.NewRecorder()
		h.ServeHTTP(last, httptest.NewRequest(http.MethodPost, "/generate_plan", nil))
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("status: got %d, want %d", last.Code, http.StatusTooManyRequests)
	}
	if last.Header().Get("X-Request-ID") == "" || last.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("429 missing request id or CORS headers")
	}
}

func TestLoggingMiddleware(t *testing.T) {
	buf := captureLogs(t)

	handler := RequestID(Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"upstream"}`))
	})))

	req := httptest.NewRequest(http.MethodPost, "/generate_challenges", strings.NewReader("goal=x&api_key=sk-secret"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("log line not JSON: %v (%q)", err, buf.String())
	}

	if rec["level"] != "WARN" {
		t.Errorf("level: got %v, want WARN for 5xx", rec["level"])
	}
	if rec["path"] != "/generate_challenges" || rec["method"] != "POST" {
		t.Errorf("path/method: got %v %v", rec["method"], rec["path"])
	}
	if rec["status"] != float64(http.StatusBadGateway) {
		t.Errorf("status: got %v", rec["status"])
	}
	if rec["bytes"] != float64(len(`{"error":"upstream"}`)) {
		t.Errorf("bytes: got %v", rec["bytes"])
	}
	if rec["request_id"] != w.Header().Get("X-Request-ID") {
		t.Errorf("request_id: got %v, want %q", rec["request_id"], w.Header().Get("X-Request-ID"))
	}
	if strings.Contains(buf.String(), "sk-secret") {
		t.Error("provider key written to the access log")
	}
}

func TestStatusWriter(t *testing.T) {
	sw := &statusWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	sw.WriteHeader(http.StatusNotFound)
	sw.Write([]byte("hello"))
	sw.Write([]byte(" world"))

	if sw.status != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", sw.status, http.StatusNotFound)
	}
	if sw.bytes != 11 {
		t.Errorf("bytes: got %d, want 11", sw.bytes)
	}
}

func TestMaxBytesMiddleware(t *testing.T) {
	handler := MaxBytes(64)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name string
		body string
		want int
	}{
		{"short goal", "goal=learn+piano", http.StatusOK},
		{"oversized goal", "goal=" + strings.Repeat("x", 100), http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/generate_challenges", strings.NewReader(tt.body)))
			if w.Code != tt.want {
				t.Errorf("status: got %d, want %d", w.Code, tt.want)
			}
		})
	}
}

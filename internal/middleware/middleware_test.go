package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Wisofer/GlowNic-sub000/internal/requestid"
)

func init() { gin.SetMode(gin.TestMode) }

func corsRouter(allowed []string) *gin.Engine {
	r := gin.New()
	r.Use(CORSMiddleware(allowed))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestCORS_AllowList(t *testing.T) {
	r := corsRouter([]string{"https://glownic.app"})

	cases := []struct {
		origin string
		want   string
	}{
		{"https://glownic.app", "https://glownic.app"},
		{"https://evil.example", ""},
		{"", ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("origin %q: status = %d", tc.origin, w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
			t.Fatalf("origin %q: Allow-Origin = %q, want %q", tc.origin, got, tc.want)
		}
	}
}

func TestCORS_WildcardAndPreflight(t *testing.T) {
	r := corsRouter([]string{"*"})

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://qualquer.app")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://qualquer.app" {
		t.Fatalf("Allow-Origin = %q", got)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Expose-Headers"), requestid.Header) {
		t.Fatalf("request id not exposed: %q", w.Header().Get("Access-Control-Expose-Headers"))
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, requestid.From(c.Request.Context()))
	})

	// reaproveita o do cliente
	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(requestid.Header, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc-123" || w.Header().Get(requestid.Header) != "abc-123" {
		t.Fatalf("body = %q header = %q", w.Body.String(), w.Header().Get(requestid.Header))
	}

	// longo demais: gera outro
	req = httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(requestid.Header, strings.Repeat("x", 65))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	got := w.Header().Get(requestid.Header)
	if got == "" || len(got) > 64 || got != w.Body.String() {
		t.Fatalf("generated id = %q body = %q", got, w.Body.String())
	}
}

package http

import (
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"natalchart/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func TestAdaptChiRoutes(t *testing.T) {
	m := chi.NewRouter()
	r := AdaptChi(m)

	r.Get("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	r.Route("/api", func(sub Router) {
		sub.Post("/echo", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusCreated)
		})
		sub.Group(func(g Router) {
			g.Delete("/gone", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
				w.WriteHeader(stdhttp.StatusNoContent)
			})
		})
	})

	srv := httptest.NewServer(r.Mux())
	defer srv.Close()

	resp, err := stdhttp.Get(srv.URL + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" {
		t.Fatalf("body = %q", body)
	}

	resp2, err := stdhttp.Post(srv.URL+"/api/echo", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	_ = resp2.Body.Close()
	if resp2.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("post status = %d", resp2.StatusCode)
	}

	req, _ := stdhttp.NewRequest(stdhttp.MethodDelete, srv.URL+"/api/gone", nil)
	resp3, err := stdhttp.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	_ = resp3.Body.Close()
	if resp3.StatusCode != stdhttp.StatusNoContent {
		t.Fatalf("delete status = %d", resp3.StatusCode)
	}
}

func TestNewServerDefaults(t *testing.T) {
	s := NewServer(config.New().Prefix("TEST_ROUTER_"))
	if s.Addr() != ":4000" {
		t.Fatalf("default addr = %q", s.Addr())
	}
	if s.Router() == nil {
		t.Fatalf("router should not be nil")
	}
}

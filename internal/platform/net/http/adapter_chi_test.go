package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func header(name string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set(name, "1")
			next.ServeHTTP(w, req)
		})
	}
}

func TestAdaptChi_RootGroupRouteAndMux(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(header("X-Root"))

	r.Get("/root", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte("root")) })
	r.Handle("/std", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		_, _ = w.Write([]byte("std"))
	}))

	r.Group(func(g Router) {
		g.Use(header("X-Group"))
		g.Post("/g/post", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(201) })
		g.Group(func(n Router) {
			n.Get("/g/nested", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte("nested")) })
		})
	})

	r.Route("/api", func(sr Router) {
		sr.Use(header("X-Route"))
		sr.Route("/roboShopItems", func(nr Router) {
			nr.Get("/get/{id}", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				_, _ = w.Write([]byte(chi.URLParam(req, "id")))
			})
		})
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(method, path, nil))
		return rr
	}

	cases := []struct {
		method, path string
		code         int
		body         string
		headers      []string
	}{
		{stdhttp.MethodGet, "/root", 200, "root", []string{"X-Root"}},
		{stdhttp.MethodGet, "/std", 200, "std", []string{"X-Root"}},
		{stdhttp.MethodPost, "/g/post", 201, "", []string{"X-Root", "X-Group"}},
		{stdhttp.MethodGet, "/g/nested", 200, "nested", []string{"X-Root", "X-Group"}},
		{stdhttp.MethodGet, "/api/roboShopItems/get/42", 200, "42", []string{"X-Root", "X-Route"}},
	}
	for _, tc := range cases {
		rr := do(tc.method, tc.path)
		if rr.Code != tc.code || rr.Body.String() != tc.body {
			t.Fatalf("%s %s => code=%d body=%q", tc.method, tc.path, rr.Code, rr.Body.String())
		}
		for _, h := range tc.headers {
			if rr.Header().Get(h) != "1" {
				t.Fatalf("%s %s: missing %s", tc.method, tc.path, h)
			}
		}
	}

	if rr := do(stdhttp.MethodGet, "/root/missing"); rr.Code != 404 {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if rr := do(stdhttp.MethodGet, "/root"); rr.Header().Get("X-Group") != "" {
		t.Fatalf("group middleware leaked to root route")
	}
}

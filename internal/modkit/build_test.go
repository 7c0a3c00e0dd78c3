package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"libfj/internal/modkit/httpkit"
	phttp "libfj/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}
	var r httpkit.Router
	if r2 := b.Subrouter(r); r2 != r {
		t.Fatalf("default Subrouter should be identity")
	}
	b.Register(r)
}

func TestBuild_CopiesMiddleware(t *testing.T) {
	t.Parallel()

	calls := 0
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			next.ServeHTTP(w, r)
		})
	}
	src := []func(http.Handler) http.Handler{mw}
	b := Build(WithName("factory"), WithPrefix("/api"), WithMiddlewares(src...), WithPorts(42))
	src[0] = nil

	if b.Name != "factory" || b.Prefix != "/api" || b.Ports.(int) != 42 {
		t.Fatalf("options not applied %+v", b)
	}
	if len(b.Mw) != 1 || b.Mw[0] == nil {
		t.Fatalf("middleware slice not copied")
	}
}

func TestBuilt_MountUnderPrefixAndInPlace(t *testing.T) {
	t.Parallel()

	hit := 0
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit++
			next.ServeHTTP(w, r)
		})
	}
	reg := func(r httpkit.Router) {
		httpkit.Get(r, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	}

	for _, prefix := range []string{"/api", ""} {
		hit = 0
		root := phttp.AdaptChi(chi.NewRouter())
		Build(WithPrefix(prefix), WithMiddlewares(mw), WithRegister(reg)).Mount(root)

		rr := httptest.NewRecorder()
		root.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, prefix+"/ping", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("prefix %q: status %d", prefix, rr.Code)
		}
		if hit != 1 {
			t.Fatalf("prefix %q: middleware ran %d times", prefix, hit)
		}
	}
}

// Package http provides the Factory shaped transport for the mock server
package http

import (
	stdhttp "net/http"
	"strconv"

	"libfj/internal/adapters/factory"
	"libfj/internal/modkit/httpkit"
	perr "libfj/internal/platform/errors"
	svc "libfj/internal/services/mockfactory/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts the roboShopItems endpoints on r
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[factory.Payload](r, "/roboShopItems/list", h.list)
	httpkit.Get(r, "/roboShopItems/get/{id}", h.get)
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request, in factory.Payload) (any, error) {
	return h.svc.List(r.Context(), in)
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return nil, perr.WithField(perr.InvalidArgf("bad robot id %q", raw), "id")
	}
	return h.svc.Get(r.Context(), id)
}

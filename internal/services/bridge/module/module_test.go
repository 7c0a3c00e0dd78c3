package module

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"libfj/internal/core/foreign"
	modkit "libfj/internal/modkit"
	"libfj/internal/platform/config"
	phttp "libfj/internal/platform/net/http"
	mfmodule "libfj/internal/services/mockfactory/module"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockFactory(t *testing.T) string {
	t.Helper()
	m, err := mfmodule.New(context.Background(), modkit.Deps{Cfg: config.New()}, "")
	require.NoError(t, err)
	r := phttp.AdaptChi(chi.NewRouter())
	modkit.Mount(r, m)
	srv := httptest.NewServer(r.Mux())
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestFromConfig_Defaults(t *testing.T) {
	t.Setenv("LIBFJ_FACTORY_BASE_URL", "")
	t.Setenv("LIBFJ_FACTORY_TIMEOUT", "")
	opts := FromConfig(config.New())
	assert.Equal(t, "https://factory.robocraftgame.com", opts.BaseURL)
	assert.Equal(t, 30*time.Second, opts.Timeout)
	assert.Equal(t, "libfj", opts.UserAgent)
}

func TestModule_EndToEnd(t *testing.T) {
	t.Setenv("LIBFJ_FACTORY_BASE_URL", mockFactory(t))
	a := foreign.NewHeapAllocator()
	m := New(config.New(), a)
	assert.Equal(t, "bridge", m.Name())

	out := make([]foreign.ListRecord, 10)
	n, err := m.Service().FrontPage(out)
	require.NoError(t, err)
	require.Equal(t, uint32(4), n)
	assert.Equal(t, uint32(101), out[0].ItemID)
	assert.Equal(t, "Tiny Tank", foreign.GoString(out[0].ItemName))
	for i := range out[:n] {
		foreign.FreeList(a, &out[i])
	}

	var rec foreign.DetailRecord
	require.NoError(t, m.Service().Robot(101, &rec))
	assert.False(t, rec.IsSentinel())

	cells := make([]foreign.Cube, 8)
	cn, err := m.Service().RobotCubes(cells, &rec)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), cn)
	assert.Equal(t, uint32(227), cells[0].ID)
	foreign.FreeDetail(a, &rec)

	require.Error(t, m.Service().Robot(4242, &rec))
	assert.True(t, rec.IsSentinel())
	foreign.FreeDetail(a, &rec)

	assert.Zero(t, a.Live())
}

func TestModule_ReadsConfigPerCall(t *testing.T) {
	t.Setenv("LIBFJ_FACTORY_BASE_URL", "http://127.0.0.1:1")
	t.Setenv("LIBFJ_FACTORY_TIMEOUT", "200ms")
	a := foreign.NewHeapAllocator()
	m := New(config.New(), a)

	out := make([]foreign.ListRecord, 2)
	n, err := m.Service().FrontPage(out)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, out[0].IsSentinel())
	foreign.FreeList(a, &out[0])

	t.Setenv("LIBFJ_FACTORY_BASE_URL", mockFactory(t))
	n, err = m.Service().FrontPage(out)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)
	for i := range out[:n] {
		foreign.FreeList(a, &out[i])
	}
	assert.Zero(t, a.Live())
}

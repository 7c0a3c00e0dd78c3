package foreign

import (
	"testing"

	"libfj/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
)

func TestListSentinel(t *testing.T) {
	a := NewHeapAllocator()
	r := ListSentinel(a, "factory status 503", "https://factory.example/api")

	assert.True(t, r.IsSentinel())
	assert.EqualValues(t, MaxItemID, r.ItemID)
	assert.Equal(t, "factory status 503", GoString(r.ItemName))
	assert.Equal(t, "https://factory.example/api", GoString(r.Thumbnail))
	assert.Equal(t, "ERROR", GoString(r.AddedBy))
	assert.Equal(t, "ERROR", GoString(r.AddedByDisplayName))
	assert.Equal(t, "", GoString(r.ItemDescription))
	assert.Equal(t, "", GoString(r.CubeAmounts))
	assert.Zero(t, r.CPU)
	assert.False(t, r.Buyable)
	for i, f := range r.TextFields() {
		assert.NotNil(t, *f, "text field %d", i)
	}

	FreeList(a, &r)
	assert.Zero(t, a.Live(), "every field is allocated exactly once")
	assert.Zero(t, a.BadFrees())
}

func TestDetailSentinel_StripsNUL(t *testing.T) {
	a := NewHeapAllocator()
	var r DetailRecord
	testkit.MustNotPanic(t, func() { r = DetailSentinel(a, "bad\x00message", "u\x00rl") })

	assert.True(t, r.IsSentinel())
	assert.Equal(t, "badmessage", GoString(r.ItemName))
	assert.Equal(t, "url", GoString(r.Thumbnail))
	assert.Equal(t, "", GoString(r.CubeData))
	assert.Equal(t, "", GoString(r.ColourData))
	for i, f := range r.TextFields() {
		assert.NotNil(t, *f, "text field %d", i)
	}
	FreeDetail(a, &r)
	assert.Zero(t, a.Live())
}

func TestSentinel_PanicsOnlyWhenAllocatorIsExhausted(t *testing.T) {
	a := &limitAlloc{HeapAllocator: NewHeapAllocator(), left: 3}
	testkit.MustPanic(t, func() { _ = ListSentinel(a, "m", "u") })
}

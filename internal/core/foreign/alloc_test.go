package foreign

import (
	"testing"

	perr "libfj/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cstr builds a caller-owned C string on the Go heap
func cstr(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

// limitAlloc fails once its budget is spent
type limitAlloc struct {
	*HeapAllocator
	left int
}

func (l *limitAlloc) Alloc(n int) []byte {
	if l.left == 0 {
		return nil
	}
	l.left--
	return l.HeapAllocator.Alloc(n)
}

func TestOwnedString_RoundTrip(t *testing.T) {
	a := NewHeapAllocator()
	for _, s := range []string{"", "robot", "ünïcødé ✓", "with\nnewline"} {
		p, err := OwnedString(a, s)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, s, GoString(p))
		FreeString(a, p)
	}
	assert.Zero(t, a.Live())
	assert.Zero(t, a.BadFrees())
}

func TestOwnedString_InteriorNUL(t *testing.T) {
	a := NewHeapAllocator()
	p, err := OwnedString(a, "bad\x00banner")
	assert.Nil(t, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInteriorNUL)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
	assert.Zero(t, a.Allocs(), "nothing may be allocated")
}

func TestOwnedString_AllocFailure(t *testing.T) {
	a := &limitAlloc{HeapAllocator: NewHeapAllocator()}
	p, err := OwnedString(a, "x")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrAlloc)
}

func TestGoString_Nil(t *testing.T) {
	assert.Equal(t, "", GoString(nil))
	s, ok := BorrowedString(nil)
	assert.Equal(t, "", s)
	assert.True(t, ok)
}

func TestBorrowedString_InvalidUTF8(t *testing.T) {
	s, ok := BorrowedString(cstr("ok\xff"))
	assert.False(t, ok)
	assert.Equal(t, "ok\xff", s)
}

func TestHeapAllocator_CountsBadFrees(t *testing.T) {
	a := NewHeapAllocator()
	p, err := OwnedString(a, "x")
	require.NoError(t, err)
	a.Free(p)
	a.Free(p)
	assert.Equal(t, 1, a.BadFrees())
	assert.Zero(t, a.Live())
}

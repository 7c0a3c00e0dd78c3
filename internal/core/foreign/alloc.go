package foreign

import (
	"strings"
	"sync"
	"unicode/utf8"
	"unsafe"

	perr "libfj/internal/platform/errors"
)

// Allocator hands out memory that lives outside Go's managed lifetime.
// Alloc returns exactly n bytes, or nil when memory is exhausted.
// Free releases a pointer previously returned as &Alloc(n)[0]
type Allocator interface {
	Alloc(n int) []byte
	Free(p *byte)
}

var (
	// ErrInteriorNUL means a string cannot be represented NUL-terminated
	ErrInteriorNUL = perr.New(perr.ErrorCodeInvalidArgument, "interior NUL byte")

	// ErrAlloc means the allocator returned no memory
	ErrAlloc = perr.New(perr.ErrorCodeUnknown, "allocation failed")

	// ErrNilOutput means a caller passed no buffer where one is required
	ErrNilOutput = perr.New(perr.ErrorCodeInvalidArgument, "nil output buffer")
)

// OwnedString copies s into a fresh NUL-terminated buffer from a. Ownership of
// the buffer moves to the caller. Nothing is allocated when s has an interior NUL
func OwnedString(a Allocator, s string) (*byte, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, perr.Wrapf(ErrInteriorNUL, perr.ErrorCodeInvalidArgument, "NUL at offset %d of %d", i, len(s))
	}
	buf := a.Alloc(len(s) + 1)
	if len(buf) != len(s)+1 {
		return nil, perr.Wrapf(ErrAlloc, perr.ErrorCodeUnknown, "alloc %d bytes", len(s)+1)
	}
	copy(buf, s)
	buf[len(s)] = 0
	return &buf[0], nil
}

// FreeString releases p; nil is a no-op
func FreeString(a Allocator, p *byte) {
	if p != nil {
		a.Free(p)
	}
}

// GoString copies the NUL-terminated text at p into a Go string. nil reads as ""
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// BorrowedString reads caller-owned text without taking ownership.
// ok is false when the bytes are not valid UTF-8
func BorrowedString(p *byte) (s string, ok bool) {
	s = GoString(p)
	return s, utf8.ValidString(s)
}

// HeapAllocator allocates from the Go heap and tracks live buffers.
// Tests use it in place of the C allocator
type HeapAllocator struct {
	mu     sync.Mutex
	live   map[*byte]int
	allocs int
	bad    int
}

// NewHeapAllocator returns an empty tracking allocator
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{live: map[*byte]int{}}
}

// Alloc implements Allocator
func (h *HeapAllocator) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	h.mu.Lock()
	h.live[&buf[0]] = n
	h.allocs++
	h.mu.Unlock()
	return buf
}

// Free implements Allocator. Unknown pointers and double frees are counted, not fatal
func (h *HeapAllocator) Free(p *byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.live[p]; !ok {
		h.bad++
		return
	}
	delete(h.live, p)
}

// Live is the number of buffers not yet freed
func (h *HeapAllocator) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live)
}

// Allocs is the total number of successful allocations
func (h *HeapAllocator) Allocs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.allocs
}

// BadFrees counts frees of pointers that were not live
func (h *HeapAllocator) BadFrees() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bad
}

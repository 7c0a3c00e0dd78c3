package main

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// cAllocator hands out malloc memory so hosts can free it with the C runtime
type cAllocator struct{}

func (cAllocator) Alloc(n int) []byte {
	p := C.malloc(C.size_t(n))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

func (cAllocator) Free(p *byte) { C.free(unsafe.Pointer(p)) }

package foreign

import "unsafe"

// View exposes a caller buffer of n elements at p as a slice. It returns nil
// for n == 0 or a nil p so that no element is ever touched
func View[T any](p *T, n uint32) []T {
	if n == 0 || p == nil {
		return nil
	}
	return unsafe.Slice(p, int(n))
}

// Fill converts the first min(len(out), len(src)) items of src into out, in
// order, and returns how many were written. Slots past the count are not
// touched. An item whose conversion fails takes the record built by onBad,
// so positions stay aligned with src
func Fill[D, F any](out []F, src []D, conv func(D) (F, error), onBad func(D, error) F) uint32 {
	if len(out) == 0 {
		return 0
	}
	n := min(len(out), len(src))
	for i := range n {
		f, err := conv(src[i])
		if err != nil {
			f = onBad(src[i], err)
		}
		out[i] = f
	}
	return uint32(n)
}

// Fail reports a failed call through out: slot 0 receives sentinel() unless
// out is empty. The count is always 0
func Fail[F any](out []F, sentinel func() F) uint32 {
	if len(out) > 0 {
		out[0] = sentinel()
	}
	return 0
}

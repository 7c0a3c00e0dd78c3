package foreign

import (
	pstrings "libfj/internal/platform/strings"
)

const errorAuthor = "ERROR"

// must is only reached on allocator exhaustion; the export boundary recovers it
func must(a Allocator, s string) *byte {
	p, err := OwnedString(a, pstrings.StripNUL(s))
	if err != nil {
		panic(err)
	}
	return p
}

// ListSentinel builds a record that signals failure: ItemID is MaxItemID, the
// author fields read ERROR, ItemName carries msg and Thumbnail carries url.
// Every other text field is "". NUL bytes in msg and url are dropped
func ListSentinel(a Allocator, msg, url string) ListRecord {
	r := ListRecord{
		ItemID:             MaxItemID,
		ItemName:           must(a, msg),
		Thumbnail:          must(a, url),
		AddedBy:            must(a, errorAuthor),
		AddedByDisplayName: must(a, errorAuthor),
	}
	fillEmpty(a, r.TextFields())
	return r
}

// DetailSentinel is ListSentinel for the detail shape
func DetailSentinel(a Allocator, msg, url string) DetailRecord {
	r := DetailRecord{
		ItemID:             MaxItemID,
		ItemName:           must(a, msg),
		Thumbnail:          must(a, url),
		AddedBy:            must(a, errorAuthor),
		AddedByDisplayName: must(a, errorAuthor),
	}
	fillEmpty(a, r.TextFields())
	return r
}

// fillEmpty points every still-nil field at a fresh ""
func fillEmpty(a Allocator, fields []**byte) {
	for _, f := range fields {
		if *f == nil {
			*f = must(a, "")
		}
	}
}

package foreign

import (
	"libfj/internal/adapters/factory"
	"libfj/internal/core/cubes"
	perr "libfj/internal/platform/errors"
	pstrings "libfj/internal/platform/strings"
)

// batch allocates the strings of one record and can roll them all back
type batch struct {
	a    Allocator
	ptrs []*byte
	err  error
}

func (b *batch) str(field, s string) *byte {
	if b.err != nil {
		return nil
	}
	p, err := OwnedString(b.a, s)
	if err != nil {
		b.err = perr.WithField(err, field)
		return nil
	}
	b.ptrs = append(b.ptrs, p)
	return p
}

func (b *batch) rollback() {
	for _, p := range b.ptrs {
		b.a.Free(p)
	}
	b.ptrs = nil
}

// Integer fields narrow with a plain conversion: values outside uint32 wrap
func listFields(b *batch, r factory.RobotListInfo) ListRecord {
	return ListRecord{
		ItemID:             uint32(r.ItemID),
		ItemName:           b.str("item_name", r.ItemName),
		ItemDescription:    b.str("item_description", r.ItemDescription),
		Thumbnail:          b.str("thumbnail", r.Thumbnail),
		AddedBy:            b.str("added_by", r.AddedBy),
		AddedByDisplayName: b.str("added_by_display_name", r.AddedByDisplayName),
		AddedDate:          b.str("added_date", r.AddedDate),
		ExpiryDate:         b.str("expiry_date", r.ExpiryDate),
		CPU:                uint32(r.CPU),
		TotalRobotRanking:  uint32(r.TotalRobotRanking),
		RentCount:          uint32(r.RentCount),
		BuyCount:           uint32(r.BuyCount),
		Buyable:            r.Buyable,
		RemovedDate:        b.str("removed_date", pstrings.Deref(r.RemovedDate)),
		BanDate:            b.str("ban_date", pstrings.Deref(r.BanDate)),
		Featured:           r.Featured,
		BannerMessage:      b.str("banner_message", pstrings.Deref(r.BannerMessage)),
		CombatRating:       r.CombatRating,
		CosmeticRating:     r.CosmeticRating,
		CubeAmounts:        b.str("cube_amounts", r.CubeAmounts),
	}
}

// ConvertList lowers one listing row. On error nothing stays allocated
func ConvertList(a Allocator, r factory.RobotListInfo) (ListRecord, error) {
	b := batch{a: a}
	rec := listFields(&b, r)
	if b.err != nil {
		b.rollback()
		return ListRecord{}, b.err
	}
	return rec, nil
}

// ConvertDetail lowers one robot detail; geometry stays base64 text
func ConvertDetail(a Allocator, r factory.RobotInfo) (DetailRecord, error) {
	b := batch{a: a}
	l := listFields(&b, r.RobotListInfo)
	rec := detailOf(l, b.str("cube_data", r.CubeData), b.str("colour_data", r.ColourData))
	if b.err != nil {
		b.rollback()
		return DetailRecord{}, b.err
	}
	return rec, nil
}

func detailOf(l ListRecord, cubeData, colourData *byte) DetailRecord {
	return DetailRecord{
		ItemID:             l.ItemID,
		ItemName:           l.ItemName,
		ItemDescription:    l.ItemDescription,
		Thumbnail:          l.Thumbnail,
		AddedBy:            l.AddedBy,
		AddedByDisplayName: l.AddedByDisplayName,
		AddedDate:          l.AddedDate,
		ExpiryDate:         l.ExpiryDate,
		CPU:                l.CPU,
		TotalRobotRanking:  l.TotalRobotRanking,
		RentCount:          l.RentCount,
		BuyCount:           l.BuyCount,
		Buyable:            l.Buyable,
		RemovedDate:        l.RemovedDate,
		BanDate:            l.BanDate,
		Featured:           l.Featured,
		BannerMessage:      l.BannerMessage,
		CombatRating:       l.CombatRating,
		CosmeticRating:     l.CosmeticRating,
		CubeData:           cubeData,
		ColourData:         colourData,
		CubeAmounts:        l.CubeAmounts,
	}
}

// ConvertCube copies a decoded cube
func ConvertCube(c cubes.Cube) Cube {
	return Cube{ID: c.ID, X: c.X, Y: c.Y, Z: c.Z, Orientation: c.Orientation, Colour: c.Colour}
}

// FreeList releases every string of r and zeroes it
func FreeList(a Allocator, r *ListRecord) {
	if r == nil {
		return
	}
	for _, f := range r.TextFields() {
		FreeString(a, *f)
	}
	*r = ListRecord{}
}

// FreeDetail releases every string of r and zeroes it
func FreeDetail(a Allocator, r *DetailRecord) {
	if r == nil {
		return
	}
	for _, f := range r.TextFields() {
		FreeString(a, *f)
	}
	*r = DetailRecord{}
}

// Package foreign holds the C-compatible records handed across the libfj boundary
// and the conversions that produce them.
//
// Every struct here mirrors a C typedef in cmd/libfj field for field; the field
// order is part of the ABI. Text fields point at NUL-terminated buffers obtained
// from an Allocator and owned by the caller once returned
package foreign

import "math"

// MaxItemID marks an error sentinel record
const MaxItemID = math.MaxUint32

// ListRecord is FactoryRobotListInfo
type ListRecord struct {
	ItemID             uint32
	ItemName           *byte
	ItemDescription    *byte
	Thumbnail          *byte // url
	AddedBy            *byte
	AddedByDisplayName *byte
	AddedDate          *byte // ISO date
	ExpiryDate         *byte // ISO date
	CPU                uint32
	TotalRobotRanking  uint32
	RentCount          uint32
	BuyCount           uint32
	Buyable            bool
	RemovedDate        *byte
	BanDate            *byte
	Featured           bool
	BannerMessage      *byte
	CombatRating       float32
	CosmeticRating     float32
	CubeAmounts        *byte // JSON as text
}

// DetailRecord is FactoryRobotGetInfo
type DetailRecord struct {
	ItemID             uint32
	ItemName           *byte
	ItemDescription    *byte
	Thumbnail          *byte
	AddedBy            *byte
	AddedByDisplayName *byte
	AddedDate          *byte
	ExpiryDate         *byte
	CPU                uint32
	TotalRobotRanking  uint32
	RentCount          uint32
	BuyCount           uint32
	Buyable            bool
	RemovedDate        *byte
	BanDate            *byte
	Featured           bool
	BannerMessage      *byte
	CombatRating       float32
	CosmeticRating     float32
	CubeData           *byte // base64
	ColourData         *byte // base64
	CubeAmounts        *byte
}

// Cube is CubeData
type Cube struct {
	ID          uint32
	X           uint8
	Y           uint8
	Z           uint8
	Orientation uint8
	Colour      uint8
}

// QuerySpec is FactorySearchQuery. A nil field means "keep the default".
// Booleans travel as uint32 (0 false, anything else true)
type QuerySpec struct {
	Page            *int32
	ItemsPerPage    *int32
	Order           *int32
	MovementFilter  *byte // CSV of movement codes
	WeaponFilter    *byte // CSV of weapon codes
	MinimumCPU      *int32
	MaximumCPU      *int32
	TextFilter      *byte
	TextSearchField *int32
	Buyable         *uint32
	PrependFeatured *uint32
	FeaturedOnly    *uint32
	DefaultPage     *uint32
}

// TextFields returns the address of every text field in ABI order
func (r *ListRecord) TextFields() []**byte {
	return []**byte{
		&r.ItemName, &r.ItemDescription, &r.Thumbnail, &r.AddedBy, &r.AddedByDisplayName,
		&r.AddedDate, &r.ExpiryDate, &r.RemovedDate, &r.BanDate, &r.BannerMessage,
		&r.CubeAmounts,
	}
}

// TextFields returns the address of every text field in ABI order
func (r *DetailRecord) TextFields() []**byte {
	return []**byte{
		&r.ItemName, &r.ItemDescription, &r.Thumbnail, &r.AddedBy, &r.AddedByDisplayName,
		&r.AddedDate, &r.ExpiryDate, &r.RemovedDate, &r.BanDate, &r.BannerMessage,
		&r.CubeData, &r.ColourData, &r.CubeAmounts,
	}
}

// IsSentinel reports whether r encodes a failure instead of data
func (r *ListRecord) IsSentinel() bool { return r.ItemID == MaxItemID }

// IsSentinel reports whether r encodes a failure instead of data
func (r *DetailRecord) IsSentinel() bool { return r.ItemID == MaxItemID }

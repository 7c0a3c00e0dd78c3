package factory

import (
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Payload is the JSON body of a listing request
type Payload struct {
	Page                   int32          `json:"page" validate:"min=1"`
	PageSize               int32          `json:"pageSize" validate:"min=1,max=100"`
	Order                  OrderType      `json:"order"`
	PlayerFilter           bool           `json:"playerFilter"`
	MovementFilter         string         `json:"movementFilter" validate:"comma_ints"`
	MovementCategoryFilter string         `json:"movementCategoryFilter" validate:"comma_ints"`
	WeaponFilter           string         `json:"weaponFilter" validate:"comma_ints"`
	WeaponCategoryFilter   string         `json:"weaponCategoryFilter" validate:"comma_ints"`
	MinimumCPU             int32          `json:"minimumCpu" validate:"min=-1"`
	MaximumCPU             int32          `json:"maximumCpu" validate:"min=-1"`
	TextFilter             string         `json:"textFilter"`
	TextSearchField        TextSearchType `json:"textSearchField"`
	Buyable                bool           `json:"buyable"`
	PrependFeaturedRobot   bool           `json:"prependFeaturedRobot"`
	FeaturedOnly           bool           `json:"featuredOnly"`
	DefaultPage            bool           `json:"defaultPage"`
}

// DefaultPayload is what the Factory front page asks for
func DefaultPayload() Payload {
	return Payload{
		Page:                   1,
		PageSize:               100,
		Order:                  OrderSuggested,
		MovementFilter:         DefaultMovementFilter,
		MovementCategoryFilter: DefaultMovementFilter,
		WeaponFilter:           DefaultWeaponFilter,
		WeaponCategoryFilter:   DefaultWeaponFilter,
		MinimumCPU:             -1,
		MaximumCPU:             -1,
		TextSearchField:        TextSearchAll,
		Buyable:                true,
		DefaultPage:            true,
	}
}

// SearchBuilder accumulates listing filters. It performs no I/O; hand it to Client.Search
type SearchBuilder struct {
	p Payload
}

// NewSearch returns a builder seeded with the front page defaults
func NewSearch() *SearchBuilder { return &SearchBuilder{p: DefaultPayload()} }

// Payload returns a copy of the request body the builder would send
func (b *SearchBuilder) Payload() Payload { return b.p }

// Page sets the 1-based page
func (b *SearchBuilder) Page(n int32) *SearchBuilder { b.p.Page = n; return b }

// ItemsPerPage sets the page size
func (b *SearchBuilder) ItemsPerPage(n int32) *SearchBuilder { b.p.PageSize = n; return b }

// Order sets the listing order
func (b *SearchBuilder) Order(o OrderType) *SearchBuilder { b.p.Order = o; return b }

// MovementRaw sets the movement filter from a CSV of movement codes
func (b *SearchBuilder) MovementRaw(csv string) *SearchBuilder {
	b.p.MovementFilter = csv
	b.p.MovementCategoryFilter = csv
	return b
}

// WeaponRaw sets the weapon filter from a CSV of weapon codes
func (b *SearchBuilder) WeaponRaw(csv string) *SearchBuilder {
	b.p.WeaponFilter = csv
	b.p.WeaponCategoryFilter = csv
	return b
}

// MinCPU sets the minimum CPU, -1 for no bound
func (b *SearchBuilder) MinCPU(n int32) *SearchBuilder { b.p.MinimumCPU = n; return b }

// MaxCPU sets the maximum CPU, -1 for no bound
func (b *SearchBuilder) MaxCPU(n int32) *SearchBuilder { b.p.MaximumCPU = n; return b }

// Text sets the free text filter after NFC normalization and control character removal
func (b *SearchBuilder) Text(s string) *SearchBuilder { b.p.TextFilter = cleanText(s); return b }

// TextSearchType selects the field the text filter applies to
func (b *SearchBuilder) TextSearchType(t TextSearchType) *SearchBuilder {
	b.p.TextSearchField = t
	return b
}

// Buyable restricts results to buyable robots
func (b *SearchBuilder) Buyable(v bool) *SearchBuilder { b.p.Buyable = v; return b }

// PrependFeatured asks the Factory to put the featured robot first
func (b *SearchBuilder) PrependFeatured(v bool) *SearchBuilder { b.p.PrependFeaturedRobot = v; return b }

// FeaturedOnly restricts results to featured robots
func (b *SearchBuilder) FeaturedOnly(v bool) *SearchBuilder { b.p.FeaturedOnly = v; return b }

// DefaultPage marks the request as the default front page
func (b *SearchBuilder) DefaultPage(v bool) *SearchBuilder { b.p.DefaultPage = v; return b }

var textChain = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Cc)))
	},
}

// cleanText normalizes user supplied search text
func cleanText(s string) string {
	if s == "" {
		return s
	}
	tr := textChain.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	textChain.Put(tr)
	if err != nil {
		return s
	}
	return out
}

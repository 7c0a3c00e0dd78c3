package foreign

import (
	"testing"

	"libfj/internal/adapters/factory"
	"libfj/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
)

type diagLog map[string]string

func (d diagLog) fn(field, msg string) { d[field] = msg }

func i32(v int32) *int32 { return &v }
func u32(v uint32) *uint32 { return &v }

func TestDecodeQuery_NilIsDefault(t *testing.T) {
	d := diagLog{}
	got := DecodeQuery(nil, d.fn).Apply(factory.NewSearch()).Payload()
	assert.Equal(t, factory.DefaultPayload(), got)

	got = DecodeQuery(&QuerySpec{}, d.fn).Apply(factory.NewSearch()).Payload()
	assert.Equal(t, factory.DefaultPayload(), got)
	assert.Empty(t, d)
}

func TestDecodeQuery_AllFields(t *testing.T) {
	d := diagLog{}
	q := &QuerySpec{
		Page:            i32(3),
		ItemsPerPage:    i32(20),
		Order:           i32(int32(factory.OrderCPU)),
		MovementFilter:  cstr("100000,200000"),
		WeaponFilter:    cstr("10000000"),
		MinimumCPU:      i32(100),
		MaximumCPU:      i32(2000),
		TextFilter:      cstr("tank"),
		TextSearchField: i32(int32(factory.TextSearchPlayer)),
		Buyable:         u32(0),
		PrependFeatured: u32(7),
		FeaturedOnly:    u32(1),
		DefaultPage:     u32(0),
	}
	p := DecodeQuery(q, d.fn).Apply(factory.NewSearch()).Payload()

	assert.EqualValues(t, 3, p.Page)
	assert.EqualValues(t, 20, p.PageSize)
	assert.Equal(t, factory.OrderCPU, p.Order)
	assert.Equal(t, "100000,200000", p.MovementFilter)
	assert.Equal(t, "100000,200000", p.MovementCategoryFilter)
	assert.Equal(t, "10000000", p.WeaponFilter)
	assert.EqualValues(t, 100, p.MinimumCPU)
	assert.EqualValues(t, 2000, p.MaximumCPU)
	assert.Equal(t, "tank", p.TextFilter)
	assert.Equal(t, factory.TextSearchPlayer, p.TextSearchField)
	assert.False(t, p.Buyable)
	assert.True(t, p.PrependFeaturedRobot)
	assert.True(t, p.FeaturedOnly)
	assert.False(t, p.DefaultPage)
	assert.Empty(t, d)
}

func TestDecodeQuery_PrependFeaturedReadsItsOwnField(t *testing.T) {
	q := &QuerySpec{Buyable: u32(1), PrependFeatured: u32(0)}
	p := DecodeQuery(q, diagLog{}.fn).Apply(factory.NewSearch()).Payload()
	assert.True(t, p.Buyable)
	assert.False(t, p.PrependFeaturedRobot)
}

func TestDecodeQuery_EnumFallback(t *testing.T) {
	d := diagLog{}
	q := &QuerySpec{Order: i32(200), TextSearchField: i32(-1)}
	b := factory.NewSearch().Order(factory.OrderAdded).TextSearchType(factory.TextSearchName)

	p := DecodeQuery(q, d.fn).Apply(b).Payload()
	assert.Equal(t, factory.OrderSuggested, p.Order)
	assert.Equal(t, factory.TextSearchAll, p.TextSearchField)
	testkit.MustContain(t, d["order"], "200")
	testkit.MustContain(t, d["text_search_field"], "-1")
}

func TestDecodeQuery_InvalidUTF8(t *testing.T) {
	d := diagLog{}
	q := &QuerySpec{TextFilter: cstr("\xff\xfe"), MovementFilter: cstr("")}
	p := DecodeQuery(q, d.fn).Apply(factory.NewSearch()).Payload()
	assert.Equal(t, "", p.TextFilter)
	assert.Equal(t, "", p.MovementFilter, "an empty string is an override, not absence")
	testkit.MustContain(t, d["text_filter"], "UTF-8")
	assert.NotContains(t, d, "movement_filter")
}

func TestDecodeQuery_AdvisoryValidation(t *testing.T) {
	d := diagLog{}
	q := &QuerySpec{
		Page:         i32(0),
		ItemsPerPage: i32(500),
		WeaponFilter: cstr("laser"),
		MinimumCPU:   i32(900),
		MaximumCPU:   i32(100),
	}
	p := DecodeQuery(q, d.fn).Apply(factory.NewSearch()).Payload()

	// the call still goes out with what the caller asked for
	assert.EqualValues(t, 0, p.Page)
	assert.EqualValues(t, 500, p.PageSize)
	assert.Equal(t, "laser", p.WeaponFilter)

	testkit.MustContain(t, d["page"], "at least 1")
	testkit.MustContain(t, d["items_per_page"], "at most 100")
	testkit.MustContain(t, d["weapon_filter"], "comma-separated")
	testkit.MustContain(t, d["minimum_cpu"], "above maximum_cpu")
}

func TestDecodeQuery_DefaultHookLogs(t *testing.T) {
	testkit.MustNotPanic(t, func() {
		_ = DecodeQuery(&QuerySpec{Order: i32(99)}, nil)
	})
}

func TestOpt(t *testing.T) {
	var o Opt[int]
	_, ok := o.Get()
	assert.False(t, ok)
	assert.False(t, o.Present())
	assert.Nil(t, o.ptr())

	o = Some(4)
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, 4, *o.ptr())
}

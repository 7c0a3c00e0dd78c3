package foreign

import (
	"fmt"

	"libfj/internal/adapters/factory"
	"libfj/internal/platform/logger"
	"libfj/internal/platform/validate"
)

// Opt is a value that may be absent
type Opt[T any] struct {
	v  T
	ok bool
}

// Some wraps a present value
func Some[T any](v T) Opt[T] { return Opt[T]{v: v, ok: true} }

// Get returns the value and whether it is present
func (o Opt[T]) Get() (T, bool) { return o.v, o.ok }

// Present reports whether the value is set
func (o Opt[T]) Present() bool { return o.ok }

func (o Opt[T]) ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.v
	return &v
}

// SearchFilter is a decoded QuerySpec. Absent fields leave the builder as is
type SearchFilter struct {
	Page            Opt[int32]
	ItemsPerPage    Opt[int32]
	Order           Opt[factory.OrderType]
	MovementFilter  Opt[string]
	WeaponFilter    Opt[string]
	MinimumCPU      Opt[int32]
	MaximumCPU      Opt[int32]
	TextFilter      Opt[string]
	TextSearchField Opt[factory.TextSearchType]
	Buyable         Opt[bool]
	PrependFeatured Opt[bool]
	FeaturedOnly    Opt[bool]
	DefaultPage     Opt[bool]
}

// DiagnosticFunc is told about every value that was coerced or looks wrong.
// Diagnostics never fail a call
type DiagnosticFunc func(field, msg string)

// LogDiagnostics reports diagnostics as zerolog warnings on log
func LogDiagnostics(log *logger.Logger) DiagnosticFunc {
	return func(field, msg string) {
		log.Warn().Str("field", field).Msg(msg)
	}
}

// DecodeQuery reads q once into a SearchFilter. nil q yields the empty filter.
// Unknown enum codes fall back to Suggested / All and invalid UTF-8 reads as "",
// each with a diagnostic. diag may be nil, meaning log through the query logger
func DecodeQuery(q *QuerySpec, diag DiagnosticFunc) SearchFilter {
	var f SearchFilter
	if q == nil {
		return f
	}
	if diag == nil {
		diag = LogDiagnostics(logger.Named("query"))
	}

	f.Page = optScalar(q.Page)
	f.ItemsPerPage = optScalar(q.ItemsPerPage)
	if q.Order != nil {
		o, ok := factory.OrderTypeFromCode(*q.Order)
		if !ok {
			diag("order", fmt.Sprintf("unknown order code %d, using suggested", *q.Order))
		}
		f.Order = Some(o)
	}
	f.MovementFilter = optText(q.MovementFilter, "movement_filter", diag)
	f.WeaponFilter = optText(q.WeaponFilter, "weapon_filter", diag)
	f.MinimumCPU = optScalar(q.MinimumCPU)
	f.MaximumCPU = optScalar(q.MaximumCPU)
	f.TextFilter = optText(q.TextFilter, "text_filter", diag)
	if q.TextSearchField != nil {
		t, ok := factory.TextSearchTypeFromCode(*q.TextSearchField)
		if !ok {
			diag("text_search_field", fmt.Sprintf("unknown text search code %d, using all", *q.TextSearchField))
		}
		f.TextSearchField = Some(t)
	}
	f.Buyable = optBool(q.Buyable)
	f.PrependFeatured = optBool(q.PrependFeatured)
	f.FeaturedOnly = optBool(q.FeaturedOnly)
	f.DefaultPage = optBool(q.DefaultPage)

	f.advise(diag)
	return f
}

// Apply sets every present field on b, in ABI field order, and returns b
func (f SearchFilter) Apply(b *factory.SearchBuilder) *factory.SearchBuilder {
	if v, ok := f.Page.Get(); ok {
		b.Page(v)
	}
	if v, ok := f.ItemsPerPage.Get(); ok {
		b.ItemsPerPage(v)
	}
	if v, ok := f.Order.Get(); ok {
		b.Order(v)
	}
	if v, ok := f.MovementFilter.Get(); ok {
		b.MovementRaw(v)
	}
	if v, ok := f.WeaponFilter.Get(); ok {
		b.WeaponRaw(v)
	}
	if v, ok := f.MinimumCPU.Get(); ok {
		b.MinCPU(v)
	}
	if v, ok := f.MaximumCPU.Get(); ok {
		b.MaxCPU(v)
	}
	if v, ok := f.TextFilter.Get(); ok {
		b.Text(v)
	}
	if v, ok := f.TextSearchField.Get(); ok {
		b.TextSearchType(v)
	}
	if v, ok := f.Buyable.Get(); ok {
		b.Buyable(v)
	}
	if v, ok := f.PrependFeatured.Get(); ok {
		b.PrependFeatured(v)
	}
	if v, ok := f.FeaturedOnly.Get(); ok {
		b.FeaturedOnly(v)
	}
	if v, ok := f.DefaultPage.Get(); ok {
		b.DefaultPage(v)
	}
	return b
}

// filterCheck is the validator view of a SearchFilter
type filterCheck struct {
	Page           *int32  `json:"page" validate:"omitempty,min=1"`
	ItemsPerPage   *int32  `json:"items_per_page" validate:"omitempty,min=1,max=100"`
	MovementFilter *string `json:"movement_filter" validate:"omitempty,comma_ints"`
	WeaponFilter   *string `json:"weapon_filter" validate:"omitempty,comma_ints"`
	MinimumCPU     *int32  `json:"minimum_cpu" validate:"omitempty,min=-1"`
	MaximumCPU     *int32  `json:"maximum_cpu" validate:"omitempty,min=-1"`
}

// advise reports suspicious values; the Factory gets the filter regardless
func (f SearchFilter) advise(diag DiagnosticFunc) {
	chk := filterCheck{
		Page:           f.Page.ptr(),
		ItemsPerPage:   f.ItemsPerPage.ptr(),
		MovementFilter: f.MovementFilter.ptr(),
		WeaponFilter:   f.WeaponFilter.ptr(),
		MinimumCPU:     f.MinimumCPU.ptr(),
		MaximumCPU:     f.MaximumCPU.ptr(),
	}
	for _, v := range validate.Violations(chk) {
		diag(v.Field, v.Message)
	}
	lo, okLo := f.MinimumCPU.Get()
	hi, okHi := f.MaximumCPU.Get()
	if okLo && okHi && lo >= 0 && hi >= 0 && lo > hi {
		diag("minimum_cpu", fmt.Sprintf("minimum_cpu %d is above maximum_cpu %d", lo, hi))
	}
}

func optScalar[T any](p *T) Opt[T] {
	if p == nil {
		return Opt[T]{}
	}
	return Some(*p)
}

// nil unset, 0 false, anything else true
func optBool(p *uint32) Opt[bool] {
	if p == nil {
		return Opt[bool]{}
	}
	return Some(*p != 0)
}

func optText(p *byte, field string, diag DiagnosticFunc) Opt[string] {
	if p == nil {
		return Opt[string]{}
	}
	s, ok := BorrowedString(p)
	if !ok {
		diag(field, "invalid UTF-8, using empty string")
		s = ""
	}
	return Some(s)
}

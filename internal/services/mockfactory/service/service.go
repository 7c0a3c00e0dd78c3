// Package service answers Factory listing and detail calls from an in memory catalogue
package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"slices"
	"strconv"
	"strings"
	"sync"

	"libfj/internal/adapters/factory"
	"libfj/internal/core/cubes"
	"libfj/internal/core/normalize"
	perr "libfj/internal/platform/errors"
	"libfj/internal/platform/logger"
	pstrings "libfj/internal/platform/strings"
	"libfj/internal/services/mockfactory/domain"
)

// Service is the mock Factory surface
type Service interface {
	List(ctx context.Context, p factory.Payload) (factory.ListResponse, error)
	Get(ctx context.Context, id int64) (factory.RobotInfo, error)
	Reload(ctx context.Context) error
}

type svc struct {
	src domain.Source

	mu     sync.RWMutex
	robots []domain.Robot
}

// New loads src once and serves it
func New(ctx context.Context, src domain.Source) (Service, error) {
	s := &svc{src: src}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload swaps the catalogue for a fresh read of the source
func (s *svc) Reload(ctx context.Context) error {
	fx, err := s.src.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.robots = fx.Robots
	s.mu.Unlock()
	logger.C(ctx).Info().Int("robots", len(fx.Robots)).Msg("mock factory catalogue loaded")
	return nil
}

func (s *svc) snapshot() []domain.Robot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.robots)
}

// List filters, orders and pages the catalogue the way the Factory does
func (s *svc) List(ctx context.Context, p factory.Payload) (factory.ListResponse, error) {
	if err := ctx.Err(); err != nil {
		return factory.ListResponse{}, err
	}
	f := compile(p)
	var hits []domain.Robot
	for _, rb := range s.snapshot() {
		if f.match(rb) {
			hits = append(hits, rb)
		}
	}
	sortRobots(hits, p.Order)
	if p.PrependFeaturedRobot {
		hits = featuredFirst(hits)
	}

	out := factory.ListResponse{RoboShopItems: []factory.RobotListInfo{}}
	for _, rb := range page(hits, p.Page, p.PageSize) {
		out.RoboShopItems = append(out.RoboShopItems, listInfo(rb))
	}
	return out, nil
}

// Get returns one robot with its geometry
func (s *svc) Get(ctx context.Context, id int64) (factory.RobotInfo, error) {
	if err := ctx.Err(); err != nil {
		return factory.RobotInfo{}, err
	}
	for _, rb := range s.snapshot() {
		if rb.ID != id {
			continue
		}
		cells := make([]cubes.Cube, len(rb.Cubes))
		for i, c := range rb.Cubes {
			cells[i] = cubes.Cube{ID: c.ID, X: c.X, Y: c.Y, Z: c.Z, Orientation: c.Orientation, Colour: c.Colour}
		}
		cube, colour := cubes.Encode(cells)
		return factory.RobotInfo{
			RobotListInfo: listInfo(rb),
			CubeData:      base64.StdEncoding.EncodeToString(cube),
			ColourData:    base64.StdEncoding.EncodeToString(colour),
		}, nil
	}
	return factory.RobotInfo{}, perr.NotFoundf("robot %d not found", id)
}

type filter struct {
	text     string
	field    factory.TextSearchType
	buyable  bool
	featured bool
	minCPU   int64
	maxCPU   int64
	movement map[int64]struct{}
	weapons  map[int64]struct{}
}

func compile(p factory.Payload) filter {
	return filter{
		text:     normalize.Fold(p.TextFilter),
		field:    p.TextSearchField,
		buyable:  p.Buyable,
		featured: p.FeaturedOnly,
		minCPU:   int64(p.MinimumCPU),
		maxCPU:   int64(p.MaximumCPU),
		movement: codeSet(p.MovementFilter, p.MovementCategoryFilter),
		weapons:  codeSet(p.WeaponFilter, p.WeaponCategoryFilter),
	}
}

// codeSet unions the CSV lists; nil means no restriction
func codeSet(lists ...string) map[int64]struct{} {
	var set map[int64]struct{}
	for _, l := range lists {
		for _, item := range pstrings.SplitCSV(l) {
			n, err := strconv.ParseInt(item, 10, 64)
			if err != nil {
				continue
			}
			if set == nil {
				set = make(map[int64]struct{})
			}
			set[n] = struct{}{}
		}
	}
	return set
}

func (f filter) match(rb domain.Robot) bool {
	if f.buyable && !rb.Buyable {
		return false
	}
	if f.featured && !rb.Featured {
		return false
	}
	if f.minCPU >= 0 && rb.CPU < f.minCPU {
		return false
	}
	if f.maxCPU >= 0 && rb.CPU > f.maxCPU {
		return false
	}
	if !overlaps(f.movement, rb.Movement) || !overlaps(f.weapons, rb.Weapons) {
		return false
	}
	return f.matchText(rb)
}

func (f filter) matchText(rb domain.Robot) bool {
	if f.text == "" {
		return true
	}
	has := func(s string) bool { return strings.Contains(normalize.Fold(s), f.text) }
	player := has(rb.AddedBy) || has(rb.AddedByDisplayName)
	switch f.field {
	case factory.TextSearchPlayer:
		return player
	case factory.TextSearchName:
		return has(rb.Name)
	default:
		return player || has(rb.Name) || has(rb.Description)
	}
}

// overlaps is true when set is unrestricted, codes is empty, or they share a code
func overlaps(set map[int64]struct{}, codes []int64) bool {
	if set == nil || len(codes) == 0 {
		return true
	}
	for _, c := range codes {
		if _, ok := set[c]; ok {
			return true
		}
	}
	return false
}

func sortRobots(rs []domain.Robot, o factory.OrderType) {
	var key func(a, b domain.Robot) int
	switch o {
	case factory.OrderCombatRating:
		key = func(a, b domain.Robot) int { return cmpDesc(a.CombatRating, b.CombatRating) }
	case factory.OrderCosmeticRating:
		key = func(a, b domain.Robot) int { return cmpDesc(a.CosmeticRating, b.CosmeticRating) }
	case factory.OrderAdded:
		key = func(a, b domain.Robot) int { return strings.Compare(b.AddedDate, a.AddedDate) }
	case factory.OrderCPU:
		key = func(a, b domain.Robot) int { return cmpDesc(a.CPU, b.CPU) }
	case factory.OrderMostBought:
		key = func(a, b domain.Robot) int { return cmpDesc(a.BuyCount, b.BuyCount) }
	default:
		return
	}
	slices.SortStableFunc(rs, key)
}

func cmpDesc[T int64 | float32](a, b T) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

func featuredFirst(rs []domain.Robot) []domain.Robot {
	out := make([]domain.Robot, 0, len(rs))
	for _, rb := range rs {
		if rb.Featured {
			out = append(out, rb)
		}
	}
	for _, rb := range rs {
		if !rb.Featured {
			out = append(out, rb)
		}
	}
	return out
}

func page(rs []domain.Robot, pg, size int32) []domain.Robot {
	if pg < 1 || size < 1 {
		return nil
	}
	start := int64(pg-1) * int64(size)
	if start >= int64(len(rs)) {
		return nil
	}
	end := min(start+int64(size), int64(len(rs)))
	return rs[start:end]
}

func listInfo(rb domain.Robot) factory.RobotListInfo {
	return factory.RobotListInfo{
		ItemID:             rb.ID,
		ItemName:           rb.Name,
		ItemDescription:    rb.Description,
		Thumbnail:          rb.Thumbnail,
		AddedBy:            rb.AddedBy,
		AddedByDisplayName: rb.AddedByDisplayName,
		AddedDate:          rb.AddedDate,
		ExpiryDate:         rb.ExpiryDate,
		CPU:                rb.CPU,
		TotalRobotRanking:  rb.Ranking,
		RentCount:          rb.RentCount,
		BuyCount:           rb.BuyCount,
		Buyable:            rb.Buyable,
		RemovedDate:        rb.RemovedDate,
		BanDate:            rb.BanDate,
		Featured:           rb.Featured,
		BannerMessage:      rb.BannerMessage,
		CombatRating:       rb.CombatRating,
		CosmeticRating:     rb.CosmeticRating,
		CubeAmounts:        cubeAmounts(rb.Cubes),
	}
}

// cubeAmounts renders the per block id tally as a JSON object, e.g. {"1":3}
func cubeAmounts(cs []domain.Cube) string {
	tally := make(map[string]int, len(cs))
	for _, c := range cs {
		tally[strconv.FormatUint(uint64(c.ID), 10)]++
	}
	b, _ := json.Marshal(tally)
	return string(b)
}

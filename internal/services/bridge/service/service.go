// Package service runs one exported libfj call end to end: build a client,
// query the Factory, lower the answer into caller memory
package service

import (
	"context"
	"fmt"

	"libfj/internal/adapters/factory"
	"libfj/internal/core/foreign"
	perr "libfj/internal/platform/errors"
	"libfj/internal/platform/logger"
	"libfj/internal/services/bridge/domain"

	"github.com/google/uuid"
)

// Service implements the exported operations over caller-owned buffers
type Service struct {
	dial  domain.Dialer
	alloc foreign.Allocator
	newID func() string
}

// New constructs a bridge service. alloc must be the allocator the caller frees with
func New(dial domain.Dialer, alloc foreign.Allocator) *Service {
	return &Service{dial: dial, alloc: alloc, newID: uuid.NewString}
}

// begin tags one call with a request id
func (s *Service) begin(op string) (context.Context, *logger.Logger) {
	ctx := logger.WithRequest(context.Background(), s.newID())
	log := logger.C(ctx).With().Str("component", "bridge").Str("op", op).Logger()
	log.Debug().Msg("call start")
	return ctx, &log
}

// FrontPage fills out with the default listing and returns the count written.
// On failure slot 0 holds an error sentinel and the count is 0
func (s *Service) FrontPage(out []foreign.ListRecord) (uint32, error) {
	if len(out) == 0 {
		return 0, nil
	}
	ctx, log := s.begin("front_page")
	return s.list(ctx, log, out, factory.NewSearch())
}

// Search is FrontPage with the overrides of q applied; nil q is the front page
func (s *Service) Search(out []foreign.ListRecord, q *foreign.QuerySpec) (uint32, error) {
	if len(out) == 0 {
		return 0, nil
	}
	ctx, log := s.begin("search")
	b := foreign.DecodeQuery(q, foreign.LogDiagnostics(log)).Apply(factory.NewSearch())
	return s.list(ctx, log, out, b)
}

func (s *Service) list(ctx context.Context, log *logger.Logger, out []foreign.ListRecord, b *factory.SearchBuilder) (uint32, error) {
	fc, err := s.dial()
	if err != nil {
		log.Warn().Err(err).Msg("factory client unavailable")
		return foreign.Fail(out, func() foreign.ListRecord { return foreign.ListSentinel(s.alloc, err.Error(), "") }), err
	}

	items, err := fc.Search(ctx, b)
	if err != nil {
		log.Warn().Err(err).Msg("factory listing failed")
		return foreign.Fail(out, func() foreign.ListRecord { return foreign.ListSentinel(s.alloc, err.Error(), fc.BaseURL()) }), err
	}

	var bad int
	n := foreign.Fill(out, items,
		func(r factory.RobotListInfo) (foreign.ListRecord, error) { return foreign.ConvertList(s.alloc, r) },
		func(r factory.RobotListInfo, cerr error) foreign.ListRecord {
			bad++
			log.Warn().Err(cerr).Int64("item_id", r.ItemID).Msg("robot not representable")
			return foreign.ListSentinel(s.alloc, fmt.Sprintf("item %d: %v", r.ItemID, cerr), fc.BaseURL())
		},
	)
	log.Debug().Int("available", len(items)).Uint32("written", n).Int("sentinels", bad).Msg("call done")
	return n, nil
}

// Robot writes the detail of itemID, or an error sentinel, into out
func (s *Service) Robot(itemID uint32, out *foreign.DetailRecord) error {
	if out == nil {
		return foreign.ErrNilOutput
	}
	ctx, l := s.begin("robot")
	log := l.With().Uint32("item_id", itemID).Logger()

	fc, err := s.dial()
	if err != nil {
		log.Warn().Err(err).Msg("factory client unavailable")
		*out = foreign.DetailSentinel(s.alloc, err.Error(), "")
		return err
	}

	info, err := fc.Get(ctx, int64(itemID))
	if err != nil {
		log.Warn().Err(err).Msg("factory get failed")
		*out = foreign.DetailSentinel(s.alloc, err.Error(), fc.BaseURL())
		return err
	}

	rec, err := foreign.ConvertDetail(s.alloc, info)
	if err != nil {
		log.Warn().Err(err).Msg("robot not representable")
		*out = foreign.DetailSentinel(s.alloc, fmt.Sprintf("item %d: %v", itemID, err), fc.BaseURL())
		return err
	}
	*out = rec
	log.Debug().Msg("call done")
	return nil
}

// RobotCubes decodes the geometry carried by a detail record into out
func (s *Service) RobotCubes(out []foreign.Cube, info *foreign.DetailRecord) (uint32, error) {
	if info == nil {
		return 0, perr.InvalidArgf("nil robot info")
	}
	return s.RobotCubesRaw(out, info.CubeData, info.ColourData)
}

// RobotCubesRaw decodes two caller-owned base64 strings into out. Nothing is
// written on failure
func (s *Service) RobotCubesRaw(out []foreign.Cube, cubeData, colourData *byte) (uint32, error) {
	if len(out) == 0 {
		return 0, nil
	}
	if cubeData == nil || colourData == nil {
		return 0, perr.InvalidArgf("nil geometry string")
	}
	_, log := s.begin("robot_cubes")

	cells, err := foreign.DecodeGeometry(foreign.GoString(cubeData), foreign.GoString(colourData))
	if err != nil {
		log.Warn().Err(err).Msg("geometry decode failed")
		return 0, err
	}
	n := foreign.FillCubes(out, cells)
	log.Debug().Int("available", len(cells)).Uint32("written", n).Msg("call done")
	return n, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/telemetry"
)

const (
	defaultMaxDimension = 200
	mazeCacheKeyFmt     = "maze:%dx%d:%d:%s"
)

// MazeServiceConfig holds the collaborators of a MazeService.
type MazeServiceConfig struct {
	Cache        i.MazeCache  // Optional; mazes are regenerated on every call without it
	Logger       i.Logger     // Required
	Tracer       trace.Tracer // Optional; defaults to a no-op tracer
	MaxDimension int          // Largest accepted column or row count
}

// MazeService generates mazes and keeps recently generated ones in a cache.
type MazeService struct {
	cache        i.MazeCache
	logger       i.Logger
	tracer       trace.Tracer
	maxDimension int
}

// NewMazeService creates a MazeService from c.
func NewMazeService(c *MazeServiceConfig) (*MazeService, error) {
	if c == nil || c.Logger == nil {
		return nil, errors.New("maze service requires a logger")
	}

	tracer := c.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}

	return &MazeService{
		cache:        c.Cache,
		logger:       c.Logger,
		tracer:       tracer,
		maxDimension: maxDimension,
	}, nil
}

// MazeCacheKey returns the cache key of the maze cfg describes.
func MazeCacheKey(cfg maze.Config) string {
	corners := cfg.Corners()
	names := make([]string, len(corners))
	for n, c := range corners {
		names[n] = c.String()
	}
	return fmt.Sprintf(mazeCacheKeyFmt, cfg.Columns, cfg.Rows, cfg.Seed, strings.Join(names, ","))
}

// Generate returns the maze for cfg, from the cache when possible.
// Cache failures are logged and never fail the call.
func (s *MazeService) Generate(ctx context.Context, cfg maze.Config) (*maze.Description, error) {
	ctx, span := s.tracer.Start(ctx, "maze.generate")
	defer span.End()

	span.SetAttributes(
		attribute.Int("maze.columns", cfg.Columns),
		attribute.Int("maze.rows", cfg.Rows),
		attribute.Int("maze.seed", int(cfg.Seed)),
	)

	if err := cfg.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if cfg.Columns > s.maxDimension || cfg.Rows > s.maxDimension {
		err := fmt.Errorf("%w: dimensions %dx%d exceed %d", maze.ErrInvalidParameters, cfg.Columns, cfg.Rows, s.maxDimension)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	key := MazeCacheKey(cfg)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Reading maze cache %s: %s", key, err))
		}
		if ok {
			span.SetAttributes(attribute.Bool("maze.cache_hit", true))
			return cached, nil
		}
	}

	start := time.Now()
	d, err := maze.Generate(cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("maze.cache_hit", false),
		attribute.Int("maze.width", d.Width()),
		attribute.Int("maze.height", d.Height()),
		attribute.Int64("maze.generation_us", time.Since(start).Microseconds()),
	)
	s.logger.Debug(fmt.Sprintf("Generated maze %s in %s", key, time.Since(start)))

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, d); err != nil {
			s.logger.Warning(fmt.Sprintf("Writing maze cache %s: %s", key, err))
		}
	}

	return d, nil
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/golazo"
)

var (
	_ golazo.MatchService     = (*LoggingMatchService)(nil)
	_ golazo.StandingsService = (*LoggingStandingsService)(nil)
	_ golazo.FichaService     = (*LoggingFichaService)(nil)
	_ golazo.TeamService      = (*LoggingTeamService)(nil)
	_ golazo.StreamService    = (*LoggingStreamService)(nil)
)

// LoggingMatchService wraps a MatchService with logging.
type LoggingMatchService struct {
	next   golazo.MatchService
	logger *slog.Logger
}

// NewLoggingMatchService creates a new LoggingMatchService.
func NewLoggingMatchService(next golazo.MatchService, logger *slog.Logger) *LoggingMatchService {
	return &LoggingMatchService{next: next, logger: logger}
}

func (s *LoggingMatchService) FindMatches(ctx context.Context, day string) (matches []*golazo.Match, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find matches",
			"day", day,
			"count", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindMatches(ctx, day)
}

// LoggingStandingsService wraps a StandingsService with logging.
// Rows that came back without team details are counted separately.
type LoggingStandingsService struct {
	next   golazo.StandingsService
	logger *slog.Logger
}

// NewLoggingStandingsService creates a new LoggingStandingsService.
func NewLoggingStandingsService(next golazo.StandingsService, logger *slog.Logger) *LoggingStandingsService {
	return &LoggingStandingsService{next: next, logger: logger}
}

func (s *LoggingStandingsService) FindStandings(ctx context.Context, league string) (rows []*golazo.StandingsRow, err error) {
	defer func(begin time.Time) {
		bare := 0
		for _, row := range rows {
			if row.TeamDetails == nil {
				bare++
			}
		}
		s.logger.Info("find standings",
			"league", league,
			"count", len(rows),
			"without_details", bare,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindStandings(ctx, league)
}

// LoggingFichaService wraps a FichaService with logging.
type LoggingFichaService struct {
	next   golazo.FichaService
	logger *slog.Logger
}

// NewLoggingFichaService creates a new LoggingFichaService.
func NewLoggingFichaService(next golazo.FichaService, logger *slog.Logger) *LoggingFichaService {
	return &LoggingFichaService{next: next, logger: logger}
}

func (s *LoggingFichaService) FindFicha(ctx context.Context, matchID string) (ficha *golazo.Ficha, err error) {
	defer func(begin time.Time) {
		status := ""
		if ficha != nil {
			status = ficha.Status
		}
		s.logger.Info("find ficha",
			"match", matchID,
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindFicha(ctx, matchID)
}

// LoggingTeamService wraps a TeamService with logging.
type LoggingTeamService struct {
	next   golazo.TeamService
	logger *slog.Logger
}

// NewLoggingTeamService creates a new LoggingTeamService.
func NewLoggingTeamService(next golazo.TeamService, logger *slog.Logger) *LoggingTeamService {
	return &LoggingTeamService{next: next, logger: logger}
}

func (s *LoggingTeamService) FindTeamDetails(ctx context.Context, name string) (details *golazo.TeamDetails, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find team details",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTeamDetails(ctx, name)
}

// LoggingStreamService wraps a StreamService with logging. Frame and excerpt
// lookups log how many of the requested pages produced a result.
type LoggingStreamService struct {
	next   golazo.StreamService
	logger *slog.Logger
}

// NewLoggingStreamService creates a new LoggingStreamService.
func NewLoggingStreamService(next golazo.StreamService, logger *slog.Logger) *LoggingStreamService {
	return &LoggingStreamService{next: next, logger: logger}
}

func (s *LoggingStreamService) FindStreamCards(ctx context.Context) (cards []*golazo.StreamCard, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find stream cards",
			"count", len(cards),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindStreamCards(ctx)
}

func (s *LoggingStreamService) FindVideoFrames(ctx context.Context, paths []string) (frames []*golazo.VideoFrame, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find video frames",
			"pages", len(paths),
			"count", len(frames),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindVideoFrames(ctx, paths)
}

func (s *LoggingStreamService) FindPageExcerpts(ctx context.Context, paths []string) (excerpts []*golazo.PageExcerpt, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find page excerpts",
			"pages", len(paths),
			"count", len(excerpts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPageExcerpts(ctx, paths)
}

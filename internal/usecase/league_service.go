package usecase

import (
	"context"
	"fmt"

	"github.com/pressboxhq/pressbox/internal/domain/league"
)

type timestampSource interface {
	Timestamp(ctx context.Context, l league.League) (league.Timestamp, error)
}

// LeagueService answers the navigation questions every page asks first:
// which leagues exist, where the sim clock stands, and which season and
// week choices to offer.
type LeagueService struct {
	engine timestampSource
}

func NewLeagueService(engine timestampSource) *LeagueService {
	return &LeagueService{engine: engine}
}

func (s *LeagueService) Leagues() []league.League {
	return league.AllLeagues
}

// Timestamp reports the engine's current season and week for a league.
func (s *LeagueService) Timestamp(ctx context.Context, l league.League) (league.Timestamp, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Timestamp")
	defer span.End()

	ts, err := s.engine.Timestamp(ctx, l)
	if err != nil {
		return league.Timestamp{}, fmt.Errorf("%w: fetch timestamp league=%s: %v", ErrDependencyUnavailable, l, err)
	}
	if ts.Season < 1 || ts.Week < 1 {
		return league.Timestamp{}, fmt.Errorf("%w: engine returned empty timestamp for %s", ErrDependencyUnavailable, l)
	}
	return ts, nil
}

// Options returns the season and week pickers for a league, sized by the
// engine's current season.
func (s *LeagueService) Options(ctx context.Context, l league.League) ([]league.Option, []league.Option, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Options")
	defer span.End()

	ts, err := s.Timestamp(ctx, l)
	if err != nil {
		return nil, nil, err
	}
	return league.SeasonOptions(ts.Season), league.WeekOptions(l), nil
}

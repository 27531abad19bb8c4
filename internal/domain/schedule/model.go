package schedule

import (
	"context"

	"github.com/pressboxhq/pressbox/internal/domain/league"
)

// Game is one scheduled or played matchup.
type Game struct {
	ID         int64
	WeekKey    int
	GameDay    int
	Timeslot   int
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  int
	AwayScore  int
	Played     bool
}

type Repository interface {
	ListByWeek(ctx context.Context, l league.League, weekKey int) ([]Game, error)
	ReplaceByWeek(ctx context.Context, l league.League, weekKey int, games []Game) error
}

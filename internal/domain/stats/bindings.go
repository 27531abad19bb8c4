package stats

import (
	"github.com/pressboxhq/pressbox/internal/domain/roster"
)

// Per-record-type resolver bindings. These are the only places the sport
// and subject specifics of a record leak into the generic filter.

var (
	FootballGameResolver = PlayerResolver[FootballPlayerGame]{
		TeamID:   func(r FootballPlayerGame) int64 { return r.TeamID },
		PlayerID: func(r FootballPlayerGame) int64 { return r.PlayerID },
	}
	FootballSeasonResolver = PlayerResolver[FootballPlayerSeason]{
		TeamID:   func(r FootballPlayerSeason) int64 { return r.TeamID },
		PlayerID: func(r FootballPlayerSeason) int64 { return r.PlayerID },
	}
	HockeyGameResolver = PlayerResolver[HockeyPlayerGame]{
		TeamID:   func(r HockeyPlayerGame) int64 { return r.TeamID },
		PlayerID: func(r HockeyPlayerGame) int64 { return r.SkaterID },
	}
	HockeySeasonResolver = PlayerResolver[HockeyPlayerSeason]{
		TeamID:   func(r HockeyPlayerSeason) int64 { return r.TeamID },
		PlayerID: func(r HockeyPlayerSeason) int64 { return r.SkaterID },
	}
	BasketballGameResolver = PlayerResolver[BasketballPlayerGame]{
		TeamID:   func(r BasketballPlayerGame) int64 { return r.TeamID },
		PlayerID: func(r BasketballPlayerGame) int64 { return r.PlayerID },
	}
	BasketballSeasonResolver = PlayerResolver[BasketballPlayerSeason]{
		TeamID:   func(r BasketballPlayerSeason) int64 { return r.TeamID },
		PlayerID: func(r BasketballPlayerSeason) int64 { return r.PlayerID },
	}
)

// FootballEligible adapts a category check to the generic filter's
// eligibility signature for any football line type.
func FootballEligible[R FootballLine](category FootballCategory) func(R, roster.Player) bool {
	return func(r R, p roster.Player) bool {
		return category.Eligible(p.Position, r.UsageCounters())
	}
}

// HockeyView splits hockey player slates into skaters and goalies.
type HockeyView string

const (
	HockeySkaters HockeyView = "skaters"
	HockeyGoalies HockeyView = "goalies"
)

// HockeyEligible keeps goalies out of skater views and vice versa. Position
// is the only input; the record itself is not consulted.
func HockeyEligible[R any](view HockeyView) func(R, roster.Player) bool {
	return func(_ R, p roster.Player) bool {
		if view == HockeyGoalies {
			return p.Position == roster.PositionGoalie
		}
		return p.Position != roster.PositionGoalie
	}
}

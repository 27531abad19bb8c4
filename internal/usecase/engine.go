package usecase

import (
	"context"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
	"github.com/pressboxhq/pressbox/internal/domain/stats"
	"github.com/pressboxhq/pressbox/internal/domain/team"
)

// EngineClient is the contract to the simulation engine's REST API. All
// league data is precomputed there; this service only reads.
type EngineClient interface {
	Timestamp(ctx context.Context, l league.League) (league.Timestamp, error)
	Teams(ctx context.Context, l league.League) ([]team.Team, error)
	Rosters(ctx context.Context, l league.League) (map[int64][]roster.Player, error)
	Standings(ctx context.Context, l league.League, seasonKey int) ([]standings.Standing, error)
	Schedule(ctx context.Context, l league.League, weekKey int) ([]schedule.Game, error)

	StatsFetcher
}

// StatsFetcher is the stat-slate slice of the engine API. The per-family
// split mirrors the engine's own endpoints; record shapes differ per sport
// but every method follows the same key-addressed contract.
type StatsFetcher interface {
	FootballPlayerGames(ctx context.Context, l league.League, weekKey int) ([]stats.FootballPlayerGame, error)
	FootballPlayerSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.FootballPlayerSeason, error)
	FootballTeamGames(ctx context.Context, l league.League, weekKey int) ([]stats.FootballTeamGame, error)
	FootballTeamSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.FootballTeamSeason, error)

	HockeyPlayerGames(ctx context.Context, l league.League, weekKey int) ([]stats.HockeyPlayerGame, error)
	HockeyPlayerSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.HockeyPlayerSeason, error)
	HockeyTeamGames(ctx context.Context, l league.League, weekKey int) ([]stats.HockeyTeamGame, error)
	HockeyTeamSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.HockeyTeamSeason, error)

	BasketballPlayerGames(ctx context.Context, l league.League, weekKey int) ([]stats.BasketballPlayerGame, error)
	BasketballPlayerSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.BasketballPlayerSeason, error)
	BasketballTeamGames(ctx context.Context, l league.League, weekKey int) ([]stats.BasketballTeamGame, error)
	BasketballTeamSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.BasketballTeamSeason, error)
}

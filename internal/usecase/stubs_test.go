package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
	"github.com/pressboxhq/pressbox/internal/domain/stats"
	"github.com/pressboxhq/pressbox/internal/domain/team"
)

type stubTeamRepository struct {
	mu       sync.Mutex
	byLeague map[league.League][]team.Team
	calls    int
	err      error
}

func (r *stubTeamRepository) ListByLeague(_ context.Context, l league.League) ([]team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.byLeague[l], nil
}

func (r *stubTeamRepository) ReplaceByLeague(_ context.Context, l league.League, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if r.byLeague == nil {
		r.byLeague = make(map[league.League][]team.Team)
	}
	r.byLeague[l] = items
	return nil
}

type stubRosterRepository struct {
	mu       sync.Mutex
	byLeague map[league.League]map[int64][]roster.Player
	calls    int
	err      error
}

func (r *stubRosterRepository) ListByLeague(_ context.Context, l league.League) (map[int64][]roster.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.byLeague[l], nil
}

func (r *stubRosterRepository) ReplaceByLeague(_ context.Context, l league.League, rosters map[int64][]roster.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if r.byLeague == nil {
		r.byLeague = make(map[league.League]map[int64][]roster.Player)
	}
	r.byLeague[l] = rosters
	return nil
}

type stubStandingsRepository struct {
	byLeague map[league.League][]standings.Standing
	err      error
}

func (r *stubStandingsRepository) ListByLeague(_ context.Context, l league.League) ([]standings.Standing, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byLeague[l], nil
}

func (r *stubStandingsRepository) ReplaceByLeague(_ context.Context, l league.League, items []standings.Standing) error {
	if r.err != nil {
		return r.err
	}
	if r.byLeague == nil {
		r.byLeague = make(map[league.League][]standings.Standing)
	}
	r.byLeague[l] = items
	return nil
}

type stubScheduleRepository struct {
	byWeek map[int][]schedule.Game
	err    error
}

func (r *stubScheduleRepository) ListByWeek(_ context.Context, _ league.League, weekKey int) ([]schedule.Game, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byWeek[weekKey], nil
}

func (r *stubScheduleRepository) ReplaceByWeek(_ context.Context, _ league.League, weekKey int, games []schedule.Game) error {
	if r.err != nil {
		return r.err
	}
	if r.byWeek == nil {
		r.byWeek = make(map[int][]schedule.Game)
	}
	r.byWeek[weekKey] = games
	return nil
}

// stubEngine implements EngineClient backed by key-addressed maps, counting
// every fetch so tests can assert caching behavior.
type stubEngine struct {
	timestamp    league.Timestamp
	timestampErr error
	teams        map[league.League][]team.Team
	rosters      map[league.League]map[int64][]roster.Player
	standings    map[league.League][]standings.Standing
	schedule     map[int][]schedule.Game

	footballPlayerGames   map[int][]stats.FootballPlayerGame
	footballPlayerSeasons map[int][]stats.FootballPlayerSeason
	footballTeamGames     map[int][]stats.FootballTeamGame
	footballTeamSeasons   map[int][]stats.FootballTeamSeason

	hockeyPlayerGames   map[int][]stats.HockeyPlayerGame
	hockeyPlayerSeasons map[int][]stats.HockeyPlayerSeason
	hockeyTeamGames     map[int][]stats.HockeyTeamGame
	hockeyTeamSeasons   map[int][]stats.HockeyTeamSeason

	basketballPlayerGames   map[int][]stats.BasketballPlayerGame
	basketballPlayerSeasons map[int][]stats.BasketballPlayerSeason
	basketballTeamGames     map[int][]stats.BasketballTeamGame
	basketballTeamSeasons   map[int][]stats.BasketballTeamSeason

	statCalls  atomic.Int32
	failSeason map[int]bool
}

func (e *stubEngine) Timestamp(_ context.Context, _ league.League) (league.Timestamp, error) {
	if e.timestampErr != nil {
		return league.Timestamp{}, e.timestampErr
	}
	return e.timestamp, nil
}

func (e *stubEngine) Teams(_ context.Context, l league.League) ([]team.Team, error) {
	return e.teams[l], nil
}

func (e *stubEngine) Rosters(_ context.Context, l league.League) (map[int64][]roster.Player, error) {
	return e.rosters[l], nil
}

func (e *stubEngine) Standings(_ context.Context, l league.League, _ int) ([]standings.Standing, error) {
	return e.standings[l], nil
}

func (e *stubEngine) Schedule(_ context.Context, _ league.League, weekKey int) ([]schedule.Game, error) {
	return e.schedule[weekKey], nil
}

func (e *stubEngine) statFetch(key int) error {
	e.statCalls.Add(1)
	if e.failSeason[key] {
		return fmt.Errorf("engine unavailable for key %d", key)
	}
	return nil
}

func (e *stubEngine) FootballPlayerGames(_ context.Context, _ league.League, weekKey int) ([]stats.FootballPlayerGame, error) {
	if err := e.statFetch(weekKey); err != nil {
		return nil, err
	}
	return e.footballPlayerGames[weekKey], nil
}

func (e *stubEngine) FootballPlayerSeasons(_ context.Context, _ league.League, seasonKey int) ([]stats.FootballPlayerSeason, error) {
	if err := e.statFetch(seasonKey); err != nil {
		return nil, err
	}
	return e.footballPlayerSeasons[seasonKey], nil
}

func (e *stubEngine) FootballTeamGames(_ context.Context, _ league.League, weekKey int) ([]stats.FootballTeamGame, error) {
	if err := e.statFetch(weekKey); err != nil {
		return nil, err
	}
	return e.footballTeamGames[weekKey], nil
}

func (e *stubEngine) FootballTeamSeasons(_ context.Context, _ league.League, seasonKey int) ([]stats.FootballTeamSeason, error) {
	if err := e.statFetch(seasonKey); err != nil {
		return nil, err
	}
	return e.footballTeamSeasons[seasonKey], nil
}

func (e *stubEngine) HockeyPlayerGames(_ context.Context, _ league.League, weekKey int) ([]stats.HockeyPlayerGame, error) {
	if err := e.statFetch(weekKey); err != nil {
		return nil, err
	}
	return e.hockeyPlayerGames[weekKey], nil
}

func (e *stubEngine) HockeyPlayerSeasons(_ context.Context, _ league.League, seasonKey int) ([]stats.HockeyPlayerSeason, error) {
	if err := e.statFetch(seasonKey); err != nil {
		return nil, err
	}
	return e.hockeyPlayerSeasons[seasonKey], nil
}

func (e *stubEngine) HockeyTeamGames(_ context.Context, _ league.League, weekKey int) ([]stats.HockeyTeamGame, error) {
	if err := e.statFetch(weekKey); err != nil {
		return nil, err
	}
	return e.hockeyTeamGames[weekKey], nil
}

func (e *stubEngine) HockeyTeamSeasons(_ context.Context, _ league.League, seasonKey int) ([]stats.HockeyTeamSeason, error) {
	if err := e.statFetch(seasonKey); err != nil {
		return nil, err
	}
	return e.hockeyTeamSeasons[seasonKey], nil
}

func (e *stubEngine) BasketballPlayerGames(_ context.Context, _ league.League, weekKey int) ([]stats.BasketballPlayerGame, error) {
	if err := e.statFetch(weekKey); err != nil {
		return nil, err
	}
	return e.basketballPlayerGames[weekKey], nil
}

func (e *stubEngine) BasketballPlayerSeasons(_ context.Context, _ league.League, seasonKey int) ([]stats.BasketballPlayerSeason, error) {
	if err := e.statFetch(seasonKey); err != nil {
		return nil, err
	}
	return e.basketballPlayerSeasons[seasonKey], nil
}

func (e *stubEngine) BasketballTeamGames(_ context.Context, _ league.League, weekKey int) ([]stats.BasketballTeamGame, error) {
	if err := e.statFetch(weekKey); err != nil {
		return nil, err
	}
	return e.basketballTeamGames[weekKey], nil
}

func (e *stubEngine) BasketballTeamSeasons(_ context.Context, _ league.League, seasonKey int) ([]stats.BasketballTeamSeason, error) {
	if err := e.statFetch(seasonKey); err != nil {
		return nil, err
	}
	return e.basketballTeamSeasons[seasonKey], nil
}

package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/stats"
	"github.com/pressboxhq/pressbox/internal/domain/team"
)

// LeaderboardQuery describes one statistical view request. Week and season
// are the 1-based numbers users pick from the option lists; the service
// derives the engine cache keys through the league's codec.
type LeaderboardQuery struct {
	League        league.League
	Subject       stats.Subject
	View          stats.View
	SeasonOffset  int
	Week          int
	GameDay       int
	TeamIDs       []string
	ConferenceIDs []string
	Tier          stats.TierFilter
	Category      stats.FootballCategory
	HockeyView    stats.HockeyView
}

func (q LeaderboardQuery) validate() error {
	if q.Subject != stats.SubjectPlayer && q.Subject != stats.SubjectTeam {
		return fmt.Errorf("%w: unknown subject %q", ErrInvalidInput, q.Subject)
	}
	if q.View != stats.ViewByWeek && q.View != stats.ViewBySeason {
		return fmt.Errorf("%w: unknown view %q", ErrInvalidInput, q.View)
	}
	if q.SeasonOffset < 1 {
		return fmt.Errorf("%w: season is required", ErrInvalidInput)
	}
	if q.View == stats.ViewByWeek && q.Week < 1 {
		return fmt.Errorf("%w: week is required for weekly views", ErrInvalidInput)
	}
	return nil
}

// tier resolves the effective tier restriction. Only the college football
// and college basketball leaderboards honor one, and the weekly basketball
// view applies none.
func (q LeaderboardQuery) tier() stats.TierFilter {
	switch {
	case q.League == league.CollegeFootball:
		return q.Tier
	case q.League == league.CollegeBasketball && q.View == stats.ViewBySeason:
		return q.Tier
	default:
		return stats.TierAll
	}
}

type playerMapProvider interface {
	PlayerMap(ctx context.Context, l league.League) (roster.Map, error)
}

// LeaderboardService turns engine stat caches into filtered, view-ready
// slates. Reads hit the local store first; a missing key triggers one fetch
// from the engine and merges the result in, so repeat renders are pure map
// reads.
type LeaderboardService struct {
	store    *stats.Store
	engine   StatsFetcher
	teamRepo team.Repository
	rosters  playerMapProvider
	guard    seasonGuard
}

func NewLeaderboardService(store *stats.Store, engine StatsFetcher, teamRepo team.Repository, rosters playerMapProvider) *LeaderboardService {
	return &LeaderboardService{
		store:    store,
		engine:   engine,
		teamRepo: teamRepo,
		rosters:  rosters,
	}
}

// Slates hold whichever subject/view combination the query selected; the
// other fields stay empty.

type FootballSlate struct {
	PlayerGames   []stats.FootballPlayerGame
	PlayerSeasons []stats.FootballPlayerSeason
	TeamGames     []stats.FootballTeamGame
	TeamSeasons   []stats.FootballTeamSeason
}

type HockeySlate struct {
	PlayerGames   []stats.HockeyPlayerGame
	PlayerSeasons []stats.HockeyPlayerSeason
	TeamGames     []stats.HockeyTeamGame
	TeamSeasons   []stats.HockeyTeamSeason
}

type BasketballSlate struct {
	PlayerGames   []stats.BasketballPlayerGame
	PlayerSeasons []stats.BasketballPlayerSeason
	TeamGames     []stats.BasketballTeamGame
	TeamSeasons   []stats.BasketballTeamSeason
}

func (s *LeaderboardService) Football(ctx context.Context, q LeaderboardQuery) (FootballSlate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Football")
	defer span.End()

	if q.League.Family() != league.FamilyFootball {
		return FootballSlate{}, fmt.Errorf("%w: %s is not a football league", ErrInvalidInput, q.League)
	}
	if err := q.validate(); err != nil {
		return FootballSlate{}, err
	}

	teamMap, filters, err := s.filterInputs(ctx, q)
	if err != nil {
		return FootballSlate{}, err
	}
	codec := q.League.Codec()
	weekKey := codec.EncodeWeek(q.Week, q.SeasonOffset)
	seasonKey := codec.SeasonKey(q.SeasonOffset)

	if q.Subject == stats.SubjectTeam {
		byWeek, bySeason := s.store.Football.TeamSources(q.League)
		teamIDOf := func(r stats.FootballTeamGame) int64 { return r.TeamID }
		if q.View == stats.ViewByWeek {
			if err := ensureWeek(ctx, q.League, byWeek, weekKey, s.engine.FootballTeamGames, s.store.Football.MergeTeamGames); err != nil {
				return FootballSlate{}, err
			}
			slate := stats.SelectSlate(stats.ViewByWeek, byWeek, nil, weekKey, 0, q.GameDay, func(r stats.FootballTeamGame) int { return r.GameDay })
			return FootballSlate{TeamGames: stats.FilterTeams(slate, filters, teamMap, teamIDOf)}, nil
		}
		if err := ensureSeason(ctx, q.League, bySeason, seasonKey, s.engine.FootballTeamSeasons, s.store.Football.MergeTeamSeasons); err != nil {
			return FootballSlate{}, err
		}
		slate := stats.SelectSlate(stats.ViewBySeason, nil, bySeason, 0, seasonKey, 0, nil)
		return FootballSlate{TeamSeasons: stats.FilterTeams(slate, filters, teamMap, func(r stats.FootballTeamSeason) int64 { return r.TeamID })}, nil
	}

	players, err := s.rosters.PlayerMap(ctx, q.League)
	if err != nil {
		return FootballSlate{}, fmt.Errorf("build player map: %w", err)
	}

	byWeek, bySeason := s.store.Football.PlayerSources(q.League)
	if q.View == stats.ViewByWeek {
		if err := ensureWeek(ctx, q.League, byWeek, weekKey, s.engine.FootballPlayerGames, s.store.Football.MergePlayerGames); err != nil {
			return FootballSlate{}, err
		}
		slate := stats.SelectSlate(stats.ViewByWeek, byWeek, nil, weekKey, 0, q.GameDay, func(r stats.FootballPlayerGame) int { return r.GameDay })
		var eligible func(stats.FootballPlayerGame, roster.Player) bool
		if q.Category != "" {
			eligible = stats.FootballEligible[stats.FootballPlayerGame](q.Category)
		}
		return FootballSlate{PlayerGames: stats.FilterPlayers(slate, filters, teamMap, players, stats.FootballGameResolver, eligible)}, nil
	}

	if err := ensureSeason(ctx, q.League, bySeason, seasonKey, s.engine.FootballPlayerSeasons, s.store.Football.MergePlayerSeasons); err != nil {
		return FootballSlate{}, err
	}
	slate := stats.SelectSlate(stats.ViewBySeason, nil, bySeason, 0, seasonKey, 0, nil)
	var eligible func(stats.FootballPlayerSeason, roster.Player) bool
	if q.Category != "" {
		eligible = stats.FootballEligible[stats.FootballPlayerSeason](q.Category)
	}
	return FootballSlate{PlayerSeasons: stats.FilterPlayers(slate, filters, teamMap, players, stats.FootballSeasonResolver, eligible)}, nil
}

func (s *LeaderboardService) Hockey(ctx context.Context, q LeaderboardQuery) (HockeySlate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Hockey")
	defer span.End()

	if q.League.Family() != league.FamilyHockey {
		return HockeySlate{}, fmt.Errorf("%w: %s is not a hockey league", ErrInvalidInput, q.League)
	}
	if err := q.validate(); err != nil {
		return HockeySlate{}, err
	}

	teamMap, filters, err := s.filterInputs(ctx, q)
	if err != nil {
		return HockeySlate{}, err
	}
	codec := q.League.Codec()
	weekKey := codec.EncodeWeek(q.Week, q.SeasonOffset)
	seasonKey := codec.SeasonKey(q.SeasonOffset)

	if q.Subject == stats.SubjectTeam {
		byWeek, bySeason := s.store.Hockey.TeamSources(q.League)
		if q.View == stats.ViewByWeek {
			if err := ensureWeek(ctx, q.League, byWeek, weekKey, s.engine.HockeyTeamGames, s.store.Hockey.MergeTeamGames); err != nil {
				return HockeySlate{}, err
			}
			slate := stats.SelectSlate(stats.ViewByWeek, byWeek, nil, weekKey, 0, q.GameDay, func(r stats.HockeyTeamGame) int { return r.GameDay })
			return HockeySlate{TeamGames: stats.FilterTeams(slate, filters, teamMap, func(r stats.HockeyTeamGame) int64 { return r.TeamID })}, nil
		}
		if err := ensureSeason(ctx, q.League, bySeason, seasonKey, s.engine.HockeyTeamSeasons, s.store.Hockey.MergeTeamSeasons); err != nil {
			return HockeySlate{}, err
		}
		slate := stats.SelectSlate(stats.ViewBySeason, nil, bySeason, 0, seasonKey, 0, nil)
		return HockeySlate{TeamSeasons: stats.FilterTeams(slate, filters, teamMap, func(r stats.HockeyTeamSeason) int64 { return r.TeamID })}, nil
	}

	players, err := s.rosters.PlayerMap(ctx, q.League)
	if err != nil {
		return HockeySlate{}, fmt.Errorf("build player map: %w", err)
	}

	view := q.HockeyView
	if view == "" {
		view = stats.HockeySkaters
	}

	byWeek, bySeason := s.store.Hockey.PlayerSources(q.League)
	if q.View == stats.ViewByWeek {
		if err := ensureWeek(ctx, q.League, byWeek, weekKey, s.engine.HockeyPlayerGames, s.store.Hockey.MergePlayerGames); err != nil {
			return HockeySlate{}, err
		}
		slate := stats.SelectSlate(stats.ViewByWeek, byWeek, nil, weekKey, 0, q.GameDay, func(r stats.HockeyPlayerGame) int { return r.GameDay })
		eligible := stats.HockeyEligible[stats.HockeyPlayerGame](view)
		return HockeySlate{PlayerGames: stats.FilterPlayers(slate, filters, teamMap, players, stats.HockeyGameResolver, eligible)}, nil
	}

	if err := ensureSeason(ctx, q.League, bySeason, seasonKey, s.engine.HockeyPlayerSeasons, s.store.Hockey.MergePlayerSeasons); err != nil {
		return HockeySlate{}, err
	}
	slate := stats.SelectSlate(stats.ViewBySeason, nil, bySeason, 0, seasonKey, 0, nil)
	eligible := stats.HockeyEligible[stats.HockeyPlayerSeason](view)
	return HockeySlate{PlayerSeasons: stats.FilterPlayers(slate, filters, teamMap, players, stats.HockeySeasonResolver, eligible)}, nil
}

func (s *LeaderboardService) Basketball(ctx context.Context, q LeaderboardQuery) (BasketballSlate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Basketball")
	defer span.End()

	if q.League.Family() != league.FamilyBasketball {
		return BasketballSlate{}, fmt.Errorf("%w: %s is not a basketball league", ErrInvalidInput, q.League)
	}
	if err := q.validate(); err != nil {
		return BasketballSlate{}, err
	}

	teamMap, filters, err := s.filterInputs(ctx, q)
	if err != nil {
		return BasketballSlate{}, err
	}
	codec := q.League.Codec()
	weekKey := codec.EncodeWeek(q.Week, q.SeasonOffset)
	seasonKey := codec.SeasonKey(q.SeasonOffset)

	if q.Subject == stats.SubjectTeam {
		byWeek, bySeason := s.store.Basketball.TeamSources(q.League)
		if q.View == stats.ViewByWeek {
			if err := ensureWeek(ctx, q.League, byWeek, weekKey, s.engine.BasketballTeamGames, s.store.Basketball.MergeTeamGames); err != nil {
				return BasketballSlate{}, err
			}
			slate := stats.SelectSlate(stats.ViewByWeek, byWeek, nil, weekKey, 0, q.GameDay, func(r stats.BasketballTeamGame) int { return r.GameDay })
			return BasketballSlate{TeamGames: stats.FilterTeams(slate, filters, teamMap, func(r stats.BasketballTeamGame) int64 { return r.TeamID })}, nil
		}
		if err := ensureSeason(ctx, q.League, bySeason, seasonKey, s.engine.BasketballTeamSeasons, s.store.Basketball.MergeTeamSeasons); err != nil {
			return BasketballSlate{}, err
		}
		slate := stats.SelectSlate(stats.ViewBySeason, nil, bySeason, 0, seasonKey, 0, nil)
		return BasketballSlate{TeamSeasons: stats.FilterTeams(slate, filters, teamMap, func(r stats.BasketballTeamSeason) int64 { return r.TeamID })}, nil
	}

	players, err := s.rosters.PlayerMap(ctx, q.League)
	if err != nil {
		return BasketballSlate{}, fmt.Errorf("build player map: %w", err)
	}

	byWeek, bySeason := s.store.Basketball.PlayerSources(q.League)
	if q.View == stats.ViewByWeek {
		if err := ensureWeek(ctx, q.League, byWeek, weekKey, s.engine.BasketballPlayerGames, s.store.Basketball.MergePlayerGames); err != nil {
			return BasketballSlate{}, err
		}
		slate := stats.SelectSlate(stats.ViewByWeek, byWeek, nil, weekKey, 0, q.GameDay, func(r stats.BasketballPlayerGame) int { return r.GameDay })
		return BasketballSlate{PlayerGames: stats.FilterPlayers(slate, filters, teamMap, players, stats.BasketballGameResolver, nil)}, nil
	}

	if err := ensureSeason(ctx, q.League, bySeason, seasonKey, s.engine.BasketballPlayerSeasons, s.store.Basketball.MergePlayerSeasons); err != nil {
		return BasketballSlate{}, err
	}
	slate := stats.SelectSlate(stats.ViewBySeason, nil, bySeason, 0, seasonKey, 0, nil)
	return BasketballSlate{PlayerSeasons: stats.FilterPlayers(slate, filters, teamMap, players, stats.BasketballSeasonResolver, nil)}, nil
}

func (s *LeaderboardService) filterInputs(ctx context.Context, q LeaderboardQuery) (team.Map, stats.Filters, error) {
	teams, err := s.teamRepo.ListByLeague(ctx, q.League)
	if err != nil {
		return nil, stats.Filters{}, fmt.Errorf("list teams: %w", err)
	}
	return team.NewMap(teams), stats.NewFilters(q.TeamIDs, q.ConferenceIDs, q.tier()), nil
}

// ensureWeek fetches and merges a week's stat lines the first time the key
// is requested. An engine miss that returns no lines still marks the key
// present so the next render is a pure map read.
func ensureWeek[R any](
	ctx context.Context,
	l league.League,
	byWeek map[int][]R,
	weekKey int,
	fetch func(context.Context, league.League, int) ([]R, error),
	merge func(league.League, int, []R),
) error {
	if _, ok := byWeek[weekKey]; ok {
		return nil
	}
	recs, err := fetch(ctx, l, weekKey)
	if err != nil {
		return fmt.Errorf("%w: fetch week stats league=%s key=%d: %v", ErrDependencyUnavailable, l, weekKey, err)
	}
	if recs == nil {
		recs = []R{}
	}
	merge(l, weekKey, recs)
	byWeek[weekKey] = recs
	return nil
}

func ensureSeason[R any](
	ctx context.Context,
	l league.League,
	bySeason map[int][]R,
	seasonKey int,
	fetch func(context.Context, league.League, int) ([]R, error),
	merge func(league.League, int, []R),
) error {
	if _, ok := bySeason[seasonKey]; ok {
		return nil
	}
	recs, err := fetch(ctx, l, seasonKey)
	if err != nil {
		return fmt.Errorf("%w: fetch season stats league=%s key=%d: %v", ErrDependencyUnavailable, l, seasonKey, err)
	}
	if recs == nil {
		recs = []R{}
	}
	merge(l, seasonKey, recs)
	bySeason[seasonKey] = recs
	return nil
}

// seasonGuard remembers which leagues have had a full season batch loaded
// for the current subject player; switching players resets it.
type seasonGuard struct {
	mu       sync.Mutex
	playerID int64
	loaded   map[league.League]bool
}

func (g *seasonGuard) needsLoad(l league.League, playerID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if playerID != g.playerID {
		g.playerID = playerID
		g.loaded = make(map[league.League]bool)
	}
	return !g.loaded[l]
}

func (g *seasonGuard) markLoaded(l league.League, playerID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if playerID == g.playerID {
		if g.loaded == nil {
			g.loaded = make(map[league.League]bool)
		}
		g.loaded[l] = true
	}
}

// LoadPlayerSeasons warms every season's player stats for a career view.
// One fetch per season not yet cached, issued concurrently and awaited
// jointly; if any request fails the whole batch is reported failed, though
// seasons that did land stay merged in the store.
func (s *LeaderboardService) LoadPlayerSeasons(ctx context.Context, l league.League, playerID int64, currentSeason int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.LoadPlayerSeasons")
	defer span.End()

	if playerID <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if currentSeason < 1 {
		return fmt.Errorf("%w: current season is required", ErrInvalidInput)
	}
	if !s.guard.needsLoad(l, playerID) {
		return nil
	}

	codec := l.Codec()
	keys := make([]int, 0, currentSeason)
	for offset := 1; offset <= currentSeason; offset++ {
		keys = append(keys, codec.SeasonKey(offset))
	}

	var err error
	switch l.Family() {
	case league.FamilyHockey:
		err = loadSeasonBatch(ctx, l, keys, s.store.Hockey.HasPlayerSeason, s.engine.HockeyPlayerSeasons, s.store.Hockey.MergePlayerSeasons)
	case league.FamilyBasketball:
		err = loadSeasonBatch(ctx, l, keys, s.store.Basketball.HasPlayerSeason, s.engine.BasketballPlayerSeasons, s.store.Basketball.MergePlayerSeasons)
	default:
		err = loadSeasonBatch(ctx, l, keys, s.store.Football.HasPlayerSeason, s.engine.FootballPlayerSeasons, s.store.Football.MergePlayerSeasons)
	}
	if err != nil {
		return fmt.Errorf("%w: %s", ErrDependencyUnavailable, MsgPlayerStatsUnavailable)
	}

	s.guard.markLoaded(l, playerID)
	return nil
}

func loadSeasonBatch[R any](
	ctx context.Context,
	l league.League,
	keys []int,
	has func(league.League, int) bool,
	fetch func(context.Context, league.League, int) ([]R, error),
	merge func(league.League, int, []R),
) error {
	p := pool.New().WithContext(ctx).WithCancelOnError()
	for _, key := range keys {
		if has(l, key) {
			continue
		}
		key := key
		p.Go(func(ctx context.Context) error {
			recs, err := fetch(ctx, l, key)
			if err != nil {
				return fmt.Errorf("fetch season key=%d: %w", key, err)
			}
			merge(l, key, recs)
			return nil
		})
	}
	return p.Wait()
}

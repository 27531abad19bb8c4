package usecase

import (
	"context"
	"testing"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/stats"
	"github.com/pressboxhq/pressbox/internal/domain/team"
	"github.com/pressboxhq/pressbox/internal/platform/cache"
)

// Pro football, season 3, week 5: week key 2605, season key 2026.
const (
	pflWeekKey   = 2605
	pflSeasonKey = 2026
)

func leaderboardFixture(engine *stubEngine) *LeaderboardService {
	teamRepo := &stubTeamRepository{
		byLeague: map[league.League][]team.Team{
			league.ProFootball: {
				{ID: 1, ConferenceID: 100, Conference: "American", Name: "Rivermen", Abbr: "RIV", City: "Harbor City"},
				{ID: 2, ConferenceID: 200, Conference: "National", Name: "Stags", Abbr: "STG", City: "Redmont"},
			},
		},
	}
	rosterRepo := &stubRosterRepository{
		byLeague: map[league.League]map[int64][]roster.Player{
			league.ProFootball: {
				1: {
					{ID: 10, TeamID: 1, Position: "QB", FirstName: "Del", LastName: "Marsh"},
					{ID: 11, TeamID: 1, Position: "RB", FirstName: "Abe", LastName: "Koster"},
				},
				2: {
					{ID: 12, TeamID: 2, Position: "WR", FirstName: "Ty", LastName: "Vann"},
				},
			},
		},
	}
	rosters := NewRosterService(teamRepo, rosterRepo, cache.NewStore(0))
	return NewLeaderboardService(stats.NewStore(), engine, teamRepo, rosters)
}

func TestLeaderboardFootballWeeklyPlayers(t *testing.T) {
	engine := &stubEngine{
		footballPlayerGames: map[int][]stats.FootballPlayerGame{
			pflWeekKey: {
				{PlayerID: 10, TeamID: 1, WeekKey: pflWeekKey, GameDay: 1, FootballUsage: stats.FootballUsage{PassAttempts: 30}},
				{PlayerID: 11, TeamID: 1, WeekKey: pflWeekKey, GameDay: 2, FootballUsage: stats.FootballUsage{RushAttempts: 18}},
				{PlayerID: 12, TeamID: 2, WeekKey: pflWeekKey, GameDay: 1, FootballUsage: stats.FootballUsage{Targets: 9}},
			},
		},
	}
	svc := leaderboardFixture(engine)

	q := LeaderboardQuery{
		League:       league.ProFootball,
		Subject:      stats.SubjectPlayer,
		View:         stats.ViewByWeek,
		SeasonOffset: 3,
		Week:         5,
	}
	slate, err := svc.Football(context.Background(), q)
	if err != nil {
		t.Fatalf("Football error: %v", err)
	}
	if len(slate.PlayerGames) != 3 {
		t.Fatalf("expected 3 player games, got %d", len(slate.PlayerGames))
	}

	t.Run("second render hits the store", func(t *testing.T) {
		if _, err := svc.Football(context.Background(), q); err != nil {
			t.Fatalf("Football error: %v", err)
		}
		if got := engine.statCalls.Load(); got != 1 {
			t.Fatalf("expected 1 engine fetch, got %d", got)
		}
	})

	t.Run("game day filter", func(t *testing.T) {
		day := q
		day.GameDay = 2
		slate, err := svc.Football(context.Background(), day)
		if err != nil {
			t.Fatalf("Football error: %v", err)
		}
		if len(slate.PlayerGames) != 1 || slate.PlayerGames[0].PlayerID != 11 {
			t.Fatalf("unexpected game day slate: %+v", slate.PlayerGames)
		}
	})

	t.Run("team filter", func(t *testing.T) {
		narrowed := q
		narrowed.TeamIDs = []string{"2"}
		slate, err := svc.Football(context.Background(), narrowed)
		if err != nil {
			t.Fatalf("Football error: %v", err)
		}
		if len(slate.PlayerGames) != 1 || slate.PlayerGames[0].PlayerID != 12 {
			t.Fatalf("unexpected filtered slate: %+v", slate.PlayerGames)
		}
	})

	t.Run("rushing category excludes the passer", func(t *testing.T) {
		rushing := q
		rushing.Category = stats.CategoryRushing
		slate, err := svc.Football(context.Background(), rushing)
		if err != nil {
			t.Fatalf("Football error: %v", err)
		}
		if len(slate.PlayerGames) != 1 || slate.PlayerGames[0].PlayerID != 11 {
			t.Fatalf("unexpected rushing slate: %+v", slate.PlayerGames)
		}
	})
}

func TestLeaderboardFootballSeasonTeams(t *testing.T) {
	engine := &stubEngine{
		footballTeamSeasons: map[int][]stats.FootballTeamSeason{
			pflSeasonKey: {
				{TeamID: 1, SeasonKey: pflSeasonKey, PointsFor: 210},
				{TeamID: 2, SeasonKey: pflSeasonKey, PointsFor: 188},
			},
		},
	}
	svc := leaderboardFixture(engine)

	slate, err := svc.Football(context.Background(), LeaderboardQuery{
		League:        league.ProFootball,
		Subject:       stats.SubjectTeam,
		View:          stats.ViewBySeason,
		SeasonOffset:  3,
		ConferenceIDs: []string{"American"},
	})
	if err != nil {
		t.Fatalf("Football error: %v", err)
	}
	if len(slate.TeamSeasons) != 1 || slate.TeamSeasons[0].TeamID != 1 {
		t.Fatalf("unexpected team season slate: %+v", slate.TeamSeasons)
	}
}

func TestLeaderboardFootballRejectsWrongFamily(t *testing.T) {
	svc := leaderboardFixture(&stubEngine{})

	_, err := svc.Football(context.Background(), LeaderboardQuery{
		League:       league.ProHockey,
		Subject:      stats.SubjectPlayer,
		View:         stats.ViewBySeason,
		SeasonOffset: 1,
	})
	if err == nil {
		t.Fatal("expected error for hockey league on football endpoint")
	}
}

func TestLeaderboardValidation(t *testing.T) {
	svc := leaderboardFixture(&stubEngine{})

	cases := []struct {
		name string
		q    LeaderboardQuery
	}{
		{"missing season", LeaderboardQuery{League: league.ProFootball, Subject: stats.SubjectPlayer, View: stats.ViewBySeason}},
		{"missing week", LeaderboardQuery{League: league.ProFootball, Subject: stats.SubjectPlayer, View: stats.ViewByWeek, SeasonOffset: 1}},
		{"unknown subject", LeaderboardQuery{League: league.ProFootball, Subject: "coach", View: stats.ViewBySeason, SeasonOffset: 1}},
		{"unknown view", LeaderboardQuery{League: league.ProFootball, Subject: stats.SubjectPlayer, View: "month", SeasonOffset: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Football(context.Background(), tc.q); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadPlayerSeasons(t *testing.T) {
	hockeySeasonKey := func(offset int) int { return offset + 2024 }

	engine := &stubEngine{
		hockeyPlayerSeasons: map[int][]stats.HockeyPlayerSeason{
			hockeySeasonKey(1): {{SkaterID: 7, TeamID: 1, SeasonKey: hockeySeasonKey(1), Goals: 20}},
			hockeySeasonKey(2): {{SkaterID: 7, TeamID: 1, SeasonKey: hockeySeasonKey(2), Goals: 25}},
			hockeySeasonKey(3): {{SkaterID: 7, TeamID: 1, SeasonKey: hockeySeasonKey(3), Goals: 12}},
		},
	}
	svc := leaderboardFixture(engine)

	if err := svc.LoadPlayerSeasons(context.Background(), league.ProHockey, 7, 3); err != nil {
		t.Fatalf("LoadPlayerSeasons error: %v", err)
	}
	if got := engine.statCalls.Load(); got != 3 {
		t.Fatalf("expected 3 season fetches, got %d", got)
	}

	t.Run("repeat request for same player is a no-op", func(t *testing.T) {
		if err := svc.LoadPlayerSeasons(context.Background(), league.ProHockey, 7, 3); err != nil {
			t.Fatalf("LoadPlayerSeasons error: %v", err)
		}
		if got := engine.statCalls.Load(); got != 3 {
			t.Fatalf("expected no extra fetches, got %d", got)
		}
	})

	t.Run("switching players resets the guard but reuses the store", func(t *testing.T) {
		if err := svc.LoadPlayerSeasons(context.Background(), league.ProHockey, 8, 3); err != nil {
			t.Fatalf("LoadPlayerSeasons error: %v", err)
		}
		// Every season key is already cached, so no new fetches.
		if got := engine.statCalls.Load(); got != 3 {
			t.Fatalf("expected cached seasons to satisfy the reload, got %d fetches", got)
		}
	})
}

func TestLoadPlayerSeasonsFailureIsRetryable(t *testing.T) {
	badKey := 2026 // hockey season 2
	engine := &stubEngine{
		hockeyPlayerSeasons: map[int][]stats.HockeyPlayerSeason{
			2025: {{SkaterID: 7, SeasonKey: 2025}},
			2026: {{SkaterID: 7, SeasonKey: 2026}},
		},
		failSeason: map[int]bool{badKey: true},
	}
	svc := leaderboardFixture(engine)

	err := svc.LoadPlayerSeasons(context.Background(), league.ProHockey, 7, 2)
	if err == nil {
		t.Fatal("expected batch failure")
	}

	// The failed batch must not mark the player loaded; once the engine
	// recovers only the missing season is refetched.
	engine.failSeason = nil
	before := engine.statCalls.Load()
	if err := svc.LoadPlayerSeasons(context.Background(), league.ProHockey, 7, 2); err != nil {
		t.Fatalf("retry error: %v", err)
	}
	if got := engine.statCalls.Load() - before; got != 1 {
		t.Fatalf("expected 1 refetch for the missing season, got %d", got)
	}
}

func TestLeaderboardTierScoping(t *testing.T) {
	base := LeaderboardQuery{
		Subject:      stats.SubjectPlayer,
		SeasonOffset: 1,
		Week:         1,
		Tier:         stats.TierTop,
	}

	cases := []struct {
		name string
		l    league.League
		view stats.View
		want stats.TierFilter
	}{
		{"college football weekly", league.CollegeFootball, stats.ViewByWeek, stats.TierTop},
		{"college football season", league.CollegeFootball, stats.ViewBySeason, stats.TierTop},
		{"college basketball weekly", league.CollegeBasketball, stats.ViewByWeek, stats.TierAll},
		{"college basketball season", league.CollegeBasketball, stats.ViewBySeason, stats.TierTop},
		{"pro football", league.ProFootball, stats.ViewBySeason, stats.TierAll},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := base
			q.League = tc.l
			q.View = tc.view
			if got := q.tier(); got != tc.want {
				t.Fatalf("tier mismatch: got=%q want=%q", got, tc.want)
			}
		})
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/team"
	"github.com/pressboxhq/pressbox/internal/platform/cache"
)

func rosterServiceFixture() (*RosterService, *stubTeamRepository, *stubRosterRepository) {
	teamRepo := &stubTeamRepository{
		byLeague: map[league.League][]team.Team{
			league.ProHockey: {
				{ID: 1, ConferenceID: 100, Conference: "Eastern", Name: "Mariners", Abbr: "MAR", City: "Port Vale"},
			},
		},
	}
	rosterRepo := &stubRosterRepository{
		byLeague: map[league.League]map[int64][]roster.Player{
			league.ProHockey: {
				1: {
					{ID: 21, TeamID: 1, Position: "C", FirstName: "Niko", LastName: "Harte"},
					{ID: 22, TeamID: 1, Position: "G", FirstName: "Sol", LastName: "Brandt"},
				},
				roster.FreeAgentKey: {
					{ID: 30, Position: "D", FirstName: "Wes", LastName: "Calder"},
				},
			},
		},
	}
	return NewRosterService(teamRepo, rosterRepo, cache.NewStore(0)), teamRepo, rosterRepo
}

func TestRosterServicePlayerMapMemoized(t *testing.T) {
	svc, _, rosterRepo := rosterServiceFixture()

	players, err := svc.PlayerMap(context.Background(), league.ProHockey)
	if err != nil {
		t.Fatalf("PlayerMap error: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 indexed players, got %d", len(players))
	}
	if players[30].TeamID != roster.FreeAgentKey {
		t.Fatalf("free agent not indexed: %+v", players[30])
	}

	if _, err := svc.PlayerMap(context.Background(), league.ProHockey); err != nil {
		t.Fatalf("PlayerMap error: %v", err)
	}
	if rosterRepo.calls != 1 {
		t.Fatalf("expected memoized index, repo called %d times", rosterRepo.calls)
	}

	t.Run("invalidate forces a rebuild", func(t *testing.T) {
		svc.Invalidate(context.Background(), league.ProHockey)
		if _, err := svc.PlayerMap(context.Background(), league.ProHockey); err != nil {
			t.Fatalf("PlayerMap error: %v", err)
		}
		if rosterRepo.calls != 2 {
			t.Fatalf("expected rebuild after invalidate, repo called %d times", rosterRepo.calls)
		}
	})
}

func TestRosterServiceTeamRoster(t *testing.T) {
	svc, _, _ := rosterServiceFixture()

	players, err := svc.TeamRoster(context.Background(), league.ProHockey, 1)
	if err != nil {
		t.Fatalf("TeamRoster error: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}

	t.Run("free agent pool", func(t *testing.T) {
		players, err := svc.TeamRoster(context.Background(), league.ProHockey, roster.FreeAgentKey)
		if err != nil {
			t.Fatalf("TeamRoster error: %v", err)
		}
		if len(players) != 1 || players[0].ID != 30 {
			t.Fatalf("unexpected free agent pool: %+v", players)
		}
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := svc.TeamRoster(context.Background(), league.ProHockey, 99)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

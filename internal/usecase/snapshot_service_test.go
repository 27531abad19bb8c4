package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
	"github.com/pressboxhq/pressbox/internal/domain/team"
	"github.com/pressboxhq/pressbox/internal/platform/cache"
)

func snapshotFixture() (*SnapshotService, *stubTeamRepository, *stubRosterRepository, *stubStandingsRepository, *stubScheduleRepository) {
	engine := &stubEngine{
		timestamp: league.Timestamp{Season: 3, Week: 5},
		teams: map[league.League][]team.Team{
			league.ProFootball: {
				{ID: 1, ConferenceID: 100, Conference: "American", Name: "Rivermen", Abbr: "RIV", City: "Harbor City"},
			},
		},
		rosters: map[league.League]map[int64][]roster.Player{
			league.ProFootball: {
				1: {{ID: 10, TeamID: 1, Position: "QB", FirstName: "Del", LastName: "Marsh"}},
			},
		},
		standings: map[league.League][]standings.Standing{
			league.ProFootball: {{TeamID: 1, Conference: "American", Wins: 9}},
		},
		schedule: map[int][]schedule.Game{
			2605: {{ID: 1, WeekKey: 2605, HomeTeamID: 1, AwayTeamID: 2}},
		},
	}

	teamRepo := &stubTeamRepository{}
	rosterRepo := &stubRosterRepository{}
	standingsRepo := &stubStandingsRepository{}
	scheduleRepo := &stubScheduleRepository{}
	rosters := NewRosterService(teamRepo, rosterRepo, cache.NewStore(0))
	svc := NewSnapshotService(engine, teamRepo, rosterRepo, standingsRepo, scheduleRepo, rosters)
	return svc, teamRepo, rosterRepo, standingsRepo, scheduleRepo
}

func TestSnapshotServiceSyncOneLeague(t *testing.T) {
	svc, teamRepo, rosterRepo, standingsRepo, scheduleRepo := snapshotFixture()

	result, err := svc.Sync(context.Background(), SnapshotInput{
		Leagues:  []string{"PFL"},
		SyncData: []string{"teams", "rosters", "standings", "schedule"},
	})
	if err != nil {
		t.Fatalf("Sync error: %v", err)
	}
	if result.TaskCount != 4 || result.SuccessCount != 4 || result.FailedCount != 0 {
		t.Fatalf("unexpected result counts: %+v", result)
	}
	if len(result.Tasks) != 4 {
		t.Fatalf("expected 4 task rows, got %d", len(result.Tasks))
	}

	if len(teamRepo.byLeague[league.ProFootball]) != 1 {
		t.Fatal("teams not written")
	}
	if len(rosterRepo.byLeague[league.ProFootball]) != 1 {
		t.Fatal("rosters not written")
	}
	if len(standingsRepo.byLeague[league.ProFootball]) != 1 {
		t.Fatal("standings not written")
	}
	if len(scheduleRepo.byWeek[2605]) != 1 {
		t.Fatal("schedule not written")
	}
}

func TestSnapshotServiceDryRun(t *testing.T) {
	svc, teamRepo, _, _, _ := snapshotFixture()

	result, err := svc.Sync(context.Background(), SnapshotInput{
		Leagues:  []string{"PFL"},
		SyncData: []string{"teams"},
		DryRun:   true,
	})
	if err != nil {
		t.Fatalf("Sync error: %v", err)
	}
	if result.SuccessCount != 1 {
		t.Fatalf("unexpected result counts: %+v", result)
	}
	if result.Tasks[0].Records != 1 {
		t.Fatalf("dry run should still count records: %+v", result.Tasks[0])
	}
	if len(teamRepo.byLeague) != 0 {
		t.Fatal("dry run must not write")
	}
}

func TestSnapshotServiceSkipsEmptyLeagues(t *testing.T) {
	svc, _, _, _, _ := snapshotFixture()

	// CHL has no fixture data, so every task is a skip, not a failure.
	result, err := svc.Sync(context.Background(), SnapshotInput{
		Leagues:  []string{"CHL"},
		SyncData: []string{"teams", "standings"},
	})
	if err != nil {
		t.Fatalf("Sync error: %v", err)
	}
	if result.SkippedCount != 2 || result.FailedCount != 0 {
		t.Fatalf("unexpected result counts: %+v", result)
	}
}

func TestSnapshotServiceDefaultsToAllLeaguesAndKinds(t *testing.T) {
	svc, _, _, _, _ := snapshotFixture()

	result, err := svc.Sync(context.Background(), SnapshotInput{})
	if err != nil {
		t.Fatalf("Sync error: %v", err)
	}
	if result.LeagueCount != 6 || result.TaskCount != 24 {
		t.Fatalf("unexpected result counts: %+v", result)
	}
}

func TestSnapshotServiceRejectsUnknownInput(t *testing.T) {
	svc, _, _, _, _ := snapshotFixture()

	if _, err := svc.Sync(context.Background(), SnapshotInput{Leagues: []string{"XYZ"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown league, got %v", err)
	}
	if _, err := svc.Sync(context.Background(), SnapshotInput{SyncData: []string{"mascots"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown sync kind, got %v", err)
	}
}

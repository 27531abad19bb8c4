package cache

import (
	"context"
	"testing"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/team"
	"github.com/pressboxhq/pressbox/internal/infrastructure/repository/memory"
	basecache "github.com/pressboxhq/pressbox/internal/platform/cache"
)

func TestTeamRepositoryReadThrough(t *testing.T) {
	source := memory.NewTeamRepository(map[league.League][]team.Team{
		league.ProFootball: {{ID: 1, Name: "Rivermen", Abbr: "RIV"}},
	})
	repo := NewTeamRepository(source, basecache.NewStore(0))

	items, err := repo.ListByLeague(context.Background(), league.ProFootball)
	if err != nil {
		t.Fatalf("ListByLeague error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 team, got %d", len(items))
	}

	// A write behind the decorator's back stays invisible until the key
	// is invalidated by a pass-through replace.
	if err := source.ReplaceByLeague(context.Background(), league.ProFootball, []team.Team{
		{ID: 1, Name: "Rivermen", Abbr: "RIV"},
		{ID: 2, Name: "Stags", Abbr: "STG"},
	}); err != nil {
		t.Fatalf("ReplaceByLeague error: %v", err)
	}
	items, err = repo.ListByLeague(context.Background(), league.ProFootball)
	if err != nil {
		t.Fatalf("ListByLeague error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected cached read, got %d teams", len(items))
	}

	if err := repo.ReplaceByLeague(context.Background(), league.ProFootball, []team.Team{
		{ID: 3, Name: "Gulls", Abbr: "GUL"},
	}); err != nil {
		t.Fatalf("ReplaceByLeague error: %v", err)
	}
	items, err = repo.ListByLeague(context.Background(), league.ProFootball)
	if err != nil {
		t.Fatalf("ListByLeague error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 3 {
		t.Fatalf("expected invalidated read, got %+v", items)
	}
}

func TestScheduleRepositoryKeysPerWeek(t *testing.T) {
	source := memory.NewScheduleRepository()
	repo := NewScheduleRepository(source, basecache.NewStore(0))

	if got := scheduleWeekKey(league.ProHockey, 2905); got != "schedule:week:PHL:2905" {
		t.Fatalf("unexpected cache key: %q", got)
	}

	games, err := repo.ListByWeek(context.Background(), league.ProHockey, 2905)
	if err != nil {
		t.Fatalf("ListByWeek error: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected empty week, got %+v", games)
	}
}

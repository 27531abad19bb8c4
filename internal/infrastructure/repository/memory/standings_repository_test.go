package memory

import (
	"context"
	"testing"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
)

func TestStandingsRepository_ImplementsRepository(t *testing.T) {
	ctx := context.Background()

	// Drive the repo through the interface the services depend on.
	var repo standings.Repository = NewStandingsRepository(nil)

	rows, err := repo.ListByLeague(ctx, league.ProFootball)
	if err != nil {
		t.Fatalf("list empty league: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows before replace, got %d", len(rows))
	}

	seed := []standings.Standing{
		{TeamID: 1, Conference: "American", Wins: 9, Losses: 3},
		{TeamID: 2, Conference: "National", Wins: 7, Losses: 5},
	}
	if err := repo.ReplaceByLeague(ctx, league.ProFootball, seed); err != nil {
		t.Fatalf("replace: %v", err)
	}

	rows, err = repo.ListByLeague(ctx, league.ProFootball)
	if err != nil {
		t.Fatalf("list after replace: %v", err)
	}
	if len(rows) != 2 || rows[0].TeamID != 1 || rows[1].TeamID != 2 {
		t.Fatalf("unexpected rows after replace: %+v", rows)
	}

	other, err := repo.ListByLeague(ctx, league.ProHockey)
	if err != nil {
		t.Fatalf("list other league: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("replace must not leak across leagues, got %d rows", len(other))
	}
}

func TestStandingsRepository_ListCopiesRows(t *testing.T) {
	ctx := context.Background()
	repo := NewStandingsRepository(map[league.League][]standings.Standing{
		league.ProHockey: {{TeamID: 7, Wins: 12}},
	})

	rows, err := repo.ListByLeague(ctx, league.ProHockey)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	rows[0].Wins = 0

	again, err := repo.ListByLeague(ctx, league.ProHockey)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if again[0].Wins != 12 {
		t.Fatalf("caller mutation leaked into the repo: %+v", again[0])
	}
}

package stats

import (
	"testing"

	"github.com/pressboxhq/pressbox/internal/domain/league"
)

func TestFamilyStoreMergeAndSnapshot(t *testing.T) {
	store := NewStore()

	store.Football.MergePlayerGames(league.ProFootball, 2401, []FootballPlayerGame{{PlayerID: 1, WeekKey: 2401}})
	store.Football.MergePlayerSeasons(league.ProFootball, 2024, []FootballPlayerSeason{{PlayerID: 1, SeasonKey: 2024}})
	store.Football.MergePlayerSeasons(league.CollegeFootball, 2024, []FootballPlayerSeason{{PlayerID: 2, SeasonKey: 2024}})

	byWeek, bySeason := store.Football.PlayerSources(league.ProFootball)
	if len(byWeek[2401]) != 1 {
		t.Fatalf("missing merged week: %+v", byWeek)
	}
	if len(bySeason[2024]) != 1 || bySeason[2024][0].PlayerID != 1 {
		t.Fatalf("college lines leaked into pro snapshot: %+v", bySeason)
	}
}

func TestFamilyStoreHasPlayerSeason(t *testing.T) {
	store := NewStore()

	if store.Hockey.HasPlayerSeason(league.ProHockey, 2025) {
		t.Fatal("unfetched season must report absent")
	}

	// An empty fetch result still marks the season as present.
	store.Hockey.MergePlayerSeasons(league.ProHockey, 2025, []HockeyPlayerSeason{})
	if !store.Hockey.HasPlayerSeason(league.ProHockey, 2025) {
		t.Fatal("fetched season must report present even when empty")
	}
	if store.Hockey.HasPlayerSeason(league.CollegeHockey, 2025) {
		t.Fatal("season presence must be scoped per league")
	}
}

package stats

import "testing"

func gameDayOfFootball(r FootballPlayerGame) int { return r.GameDay }

func TestSelectSlateByWeek(t *testing.T) {
	byWeek := map[int][]FootballPlayerGame{
		2401: {
			{PlayerID: 1, WeekKey: 2401, GameDay: 6},
			{PlayerID: 2, WeekKey: 2401, GameDay: 7},
			{PlayerID: 3, WeekKey: 2401, GameDay: 7},
		},
	}

	t.Run("whole week", func(t *testing.T) {
		got := SelectSlate(ViewByWeek, byWeek, nil, 2401, 0, 0, gameDayOfFootball)
		if len(got) != 3 {
			t.Fatalf("unexpected slate size: got=%d want=3", len(got))
		}
	})

	t.Run("game day restriction", func(t *testing.T) {
		got := SelectSlate(ViewByWeek, byWeek, nil, 2401, 0, 7, gameDayOfFootball)
		if len(got) != 2 {
			t.Fatalf("unexpected slate size: got=%d want=2", len(got))
		}
		for _, r := range got {
			if r.GameDay != 7 {
				t.Fatalf("record outside game day: %+v", r)
			}
		}
	})

	t.Run("missing week key yields empty slate", func(t *testing.T) {
		got := SelectSlate(ViewByWeek, byWeek, nil, 9999, 0, 0, gameDayOfFootball)
		if len(got) != 0 {
			t.Fatalf("expected empty slate, got %d records", len(got))
		}
	})
}

func TestSelectSlateBySeason(t *testing.T) {
	bySeason := map[int][]FootballPlayerSeason{
		2024: {{PlayerID: 1, SeasonKey: 2024}},
	}

	got := SelectSlate[FootballPlayerSeason](ViewBySeason, nil, bySeason, 0, 2024, 0, nil)
	if len(got) != 1 {
		t.Fatalf("unexpected slate size: got=%d want=1", len(got))
	}

	// Game-day restriction does not apply at season granularity.
	got = SelectSlate[FootballPlayerSeason](ViewBySeason, nil, bySeason, 0, 2024, 7, nil)
	if len(got) != 1 {
		t.Fatalf("game day must not restrict season views: got=%d want=1", len(got))
	}

	if got := SelectSlate[FootballPlayerSeason](ViewBySeason, nil, bySeason, 0, 1999, 0, nil); len(got) != 0 {
		t.Fatalf("missing season key must yield empty slate, got %d", len(got))
	}
}

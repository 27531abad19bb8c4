package roster

import (
	"testing"

	"github.com/pressboxhq/pressbox/internal/domain/team"
)

func TestIndex(t *testing.T) {
	t.Run("merges team rosters and free agents", func(t *testing.T) {
		teams := []team.Team{{ID: 1, Name: "Ironhawks"}}
		rosters := map[int64][]Player{
			1:            {{ID: 10, TeamID: 1, Position: "QB"}},
			FreeAgentKey: {{ID: 99, Position: "WR"}},
		}

		got := Index(teams, rosters)
		if len(got) != 2 {
			t.Fatalf("unexpected player count: got=%d want=2", len(got))
		}
		if got[10].Position != "QB" {
			t.Fatalf("missing rostered player 10: %+v", got)
		}
		if got[99].Position != "WR" {
			t.Fatalf("missing free agent 99: %+v", got)
		}
	})

	t.Run("ignores rosters for teams outside the sequence", func(t *testing.T) {
		teams := []team.Team{{ID: 1}}
		rosters := map[int64][]Player{
			1: {{ID: 10}},
			2: {{ID: 20}},
		}

		got := Index(teams, rosters)
		if _, ok := got[20]; ok {
			t.Fatal("player from unlisted team 2 must not appear")
		}
		if len(got) != 1 {
			t.Fatalf("unexpected player count: got=%d want=1", len(got))
		}
	})

	t.Run("skips teams with no roster", func(t *testing.T) {
		teams := []team.Team{{ID: 1}, {ID: 7}}
		rosters := map[int64][]Player{1: {{ID: 10}}}

		got := Index(teams, rosters)
		if len(got) != 1 {
			t.Fatalf("unexpected player count: got=%d want=1", len(got))
		}
	})

	t.Run("duplicate ids resolve last write wins", func(t *testing.T) {
		teams := []team.Team{{ID: 1}}
		rosters := map[int64][]Player{
			1:            {{ID: 10, Position: "RB"}},
			FreeAgentKey: {{ID: 10, Position: "WR"}},
		}

		got := Index(teams, rosters)
		if got[10].Position != "WR" {
			t.Fatalf("free-agent entry should win: %+v", got[10])
		}
	})
}

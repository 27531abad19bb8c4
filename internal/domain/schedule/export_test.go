package schedule

import (
	"strings"
	"testing"

	"github.com/pressboxhq/pressbox/internal/domain/team"
)

func exportFixture() ([]Game, team.Map) {
	games := []Game{
		{ID: 1, GameDay: 6, Timeslot: 1, AwayTeamID: 2, HomeTeamID: 1, AwayScore: 14, HomeScore: 28, Played: true},
		{ID: 2, GameDay: 7, Timeslot: 2, AwayTeamID: 3, HomeTeamID: 2},
	}
	teams := team.Map{
		1: {ID: 1, Abbr: "IRN"},
		2: {ID: 2, Abbr: "RVC"},
		3: {ID: 3, Abbr: "GLD"},
	}
	return games, teams
}

func TestExportCSV(t *testing.T) {
	games, teams := exportFixture()

	payload, filename, err := ExportCSV(games, teams, ExportRequest{SeasonID: 3, WeekID: 5})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if filename != "schedule_s3_w5.csv" {
		t.Fatalf("unexpected filename: %s", filename)
	}

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected line count: got=%d want=3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "game_id,") {
		t.Fatalf("missing header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "RVC,IRN,14,28,final") {
		t.Fatalf("unexpected played row: %s", lines[1])
	}
	if !strings.Contains(lines[2], "GLD,RVC,,,scheduled") {
		t.Fatalf("unexpected scheduled row: %s", lines[2])
	}
}

func TestExportCSVTimeslotFilter(t *testing.T) {
	games, teams := exportFixture()

	payload, filename, err := ExportCSV(games, teams, ExportRequest{SeasonID: 3, WeekID: 5, Timeslot: 2})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if filename != "schedule_s3_w5_t2.csv" {
		t.Fatalf("unexpected filename: %s", filename)
	}

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	if len(lines) != 2 {
		t.Fatalf("timeslot filter not applied: %v", lines)
	}
}

func TestExportCSVUnknownTeamFallsBackToID(t *testing.T) {
	games := []Game{{ID: 9, AwayTeamID: 42, HomeTeamID: 1}}
	teams := team.Map{1: {ID: 1, Abbr: "IRN"}}

	payload, _, err := ExportCSV(games, teams, ExportRequest{SeasonID: 1, WeekID: 1})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(string(payload), "42,IRN") {
		t.Fatalf("unknown away team should render as raw id: %s", payload)
	}
}

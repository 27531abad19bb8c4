package schedule

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/pressboxhq/pressbox/internal/domain/team"
)

// ExportRequest identifies the slice of the schedule to export. Timeslot 0
// exports every timeslot in the week.
type ExportRequest struct {
	SeasonID int
	WeekID   int
	Timeslot int
}

var exportHeader = []string{"game_id", "game_day", "timeslot", "away", "home", "away_score", "home_score", "status"}

// ExportCSV renders the selected games as a downloadable CSV artifact and
// returns the payload with its attachment filename.
func ExportCSV(games []Game, teams team.Map, req ExportRequest) ([]byte, string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, "", fmt.Errorf("write export header: %w", err)
	}

	for _, g := range games {
		if req.Timeslot > 0 && g.Timeslot != req.Timeslot {
			continue
		}

		status := "scheduled"
		awayScore, homeScore := "", ""
		if g.Played {
			status = "final"
			awayScore = strconv.Itoa(g.AwayScore)
			homeScore = strconv.Itoa(g.HomeScore)
		}

		row := []string{
			strconv.FormatInt(g.ID, 10),
			strconv.Itoa(g.GameDay),
			strconv.Itoa(g.Timeslot),
			teamLabel(teams, g.AwayTeamID),
			teamLabel(teams, g.HomeTeamID),
			awayScore,
			homeScore,
			status,
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("write export row game=%d: %w", g.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("flush export: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	filename := fmt.Sprintf("schedule_s%d_w%d.csv", req.SeasonID, req.WeekID)
	if req.Timeslot > 0 {
		filename = fmt.Sprintf("schedule_s%d_w%d_t%d.csv", req.SeasonID, req.WeekID, req.Timeslot)
	}
	return out, filename, nil
}

func teamLabel(teams team.Map, id int64) string {
	if t, ok := teams[id]; ok && t.Abbr != "" {
		return t.Abbr
	}
	return strconv.FormatInt(id, 10)
}

package standings

import (
	"context"

	"github.com/pressboxhq/pressbox/internal/domain/league"
)

// Standing is one league-table row. Wins/losses and the league-specific
// overtime/tie counters come from the engine pre-sorted within each group;
// Rank is assigned here after grouping and must be recomputed whenever group
// membership changes.
type Standing struct {
	TeamID     int64
	Conference string
	Division   string
	Wins       int
	Losses     int
	Ties       int
	OTLosses   int
	Points     int
	Rank       int
}

// CategoryMode selects how a standings list is partitioned.
type CategoryMode string

const (
	ModeConference CategoryMode = "conference"
	ModeDivision   CategoryMode = "division"
	// ModeOverall collapses the whole league into a single table, the pro
	// basketball default.
	ModeOverall CategoryMode = "overall"
)

const overallGroup = "Overall"

// GroupName resolves the group a standing belongs to under a mode.
func GroupName(s Standing, mode CategoryMode) string {
	switch mode {
	case ModeDivision:
		return s.Division
	case ModeOverall:
		return overallGroup
	default:
		return s.Conference
	}
}

// Repository holds the current standings snapshot per league. The engine
// only ever exposes the live table, so there is no season dimension here.
type Repository interface {
	ListByLeague(ctx context.Context, l league.League) ([]Standing, error)
	ReplaceByLeague(ctx context.Context, l league.League, items []Standing) error
}

package roster

import (
	"context"

	"github.com/pressboxhq/pressbox/internal/domain/league"
)

type Repository interface {
	// ListByLeague returns rosters keyed by team ID, with unsigned players
	// under FreeAgentKey.
	ListByLeague(ctx context.Context, l league.League) (map[int64][]Player, error)
	ReplaceByLeague(ctx context.Context, l league.League, rosters map[int64][]Player) error
}

package memory

import (
	"context"
	"sync"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
)

type RosterRepository struct {
	mu              sync.RWMutex
	rostersByLeague map[league.League]map[int64][]roster.Player
}

func NewRosterRepository(rostersByLeague map[league.League]map[int64][]roster.Player) *RosterRepository {
	if rostersByLeague == nil {
		rostersByLeague = make(map[league.League]map[int64][]roster.Player)
	}
	return &RosterRepository{rostersByLeague: rostersByLeague}
}

func (r *RosterRepository) ListByLeague(_ context.Context, l league.League) (map[int64][]roster.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rosters := r.rostersByLeague[l]
	out := make(map[int64][]roster.Player, len(rosters))
	for teamID, players := range rosters {
		rows := make([]roster.Player, 0, len(players))
		rows = append(rows, players...)
		out[teamID] = rows
	}
	return out, nil
}

func (r *RosterRepository) ReplaceByLeague(_ context.Context, l league.League, rosters map[int64][]roster.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make(map[int64][]roster.Player, len(rosters))
	for teamID, players := range rosters {
		rows := make([]roster.Player, 0, len(players))
		rows = append(rows, players...)
		stored[teamID] = rows
	}
	r.rostersByLeague[l] = stored
	return nil
}

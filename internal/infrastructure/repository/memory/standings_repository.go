package memory

import (
	"context"
	"sync"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
)

type StandingsRepository struct {
	mu           sync.RWMutex
	rowsByLeague map[league.League][]standings.Standing
}

func NewStandingsRepository(rowsByLeague map[league.League][]standings.Standing) *StandingsRepository {
	if rowsByLeague == nil {
		rowsByLeague = make(map[league.League][]standings.Standing)
	}
	return &StandingsRepository{rowsByLeague: rowsByLeague}
}

func (r *StandingsRepository) ListByLeague(_ context.Context, l league.League) ([]standings.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.rowsByLeague[l]
	out := make([]standings.Standing, 0, len(rows))
	out = append(out, rows...)
	return out, nil
}

func (r *StandingsRepository) ReplaceByLeague(_ context.Context, l league.League, items []standings.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]standings.Standing, 0, len(items))
	rows = append(rows, items...)
	r.rowsByLeague[l] = rows
	return nil
}

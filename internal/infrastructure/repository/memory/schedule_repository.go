package memory

import (
	"context"
	"sync"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
)

type weekRef struct {
	league  league.League
	weekKey int
}

type ScheduleRepository struct {
	mu          sync.RWMutex
	gamesByWeek map[weekRef][]schedule.Game
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{gamesByWeek: make(map[weekRef][]schedule.Game)}
}

func (r *ScheduleRepository) ListByWeek(_ context.Context, l league.League, weekKey int) ([]schedule.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := r.gamesByWeek[weekRef{league: l, weekKey: weekKey}]
	out := make([]schedule.Game, 0, len(games))
	out = append(out, games...)
	return out, nil
}

func (r *ScheduleRepository) ReplaceByWeek(_ context.Context, l league.League, weekKey int, games []schedule.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]schedule.Game, 0, len(games))
	rows = append(rows, games...)
	r.gamesByWeek[weekRef{league: l, weekKey: weekKey}] = rows
	return nil
}

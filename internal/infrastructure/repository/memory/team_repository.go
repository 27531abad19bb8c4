package memory

import (
	"context"
	"sync"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/team"
)

type TeamRepository struct {
	mu            sync.RWMutex
	teamsByLeague map[league.League][]team.Team
}

func NewTeamRepository(teamsByLeague map[league.League][]team.Team) *TeamRepository {
	if teamsByLeague == nil {
		teamsByLeague = make(map[league.League][]team.Team)
	}
	return &TeamRepository{teamsByLeague: teamsByLeague}
}

func (r *TeamRepository) ListByLeague(_ context.Context, l league.League) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByLeague[l]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)
	return out, nil
}

func (r *TeamRepository) ReplaceByLeague(_ context.Context, l league.League, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]team.Team, 0, len(items))
	rows = append(rows, items...)
	r.teamsByLeague[l] = rows
	return nil
}

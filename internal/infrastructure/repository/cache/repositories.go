// Package cache wraps the snapshot repositories with a read-through TTL
// cache. Writes pass through and drop the affected keys so the next read
// repopulates from the source.
package cache

import (
	"context"
	"strconv"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
	"github.com/pressboxhq/pressbox/internal/domain/team"
	basecache "github.com/pressboxhq/pressbox/internal/platform/cache"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, l league.League) ([]team.Team, error) {
	key := "team:list:" + string(l)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, l)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) ReplaceByLeague(ctx context.Context, l league.League, items []team.Team) error {
	if err := r.next.ReplaceByLeague(ctx, l, items); err != nil {
		return err
	}
	r.cache.Delete(ctx, "team:list:"+string(l))
	return nil
}

type RosterRepository struct {
	next  roster.Repository
	cache *basecache.Store
}

func NewRosterRepository(next roster.Repository, cache *basecache.Store) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) ListByLeague(ctx context.Context, l league.League) (map[int64][]roster.Player, error) {
	key := "roster:list:" + string(l)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rosters, err := r.next.ListByLeague(ctx, l)
		if err != nil {
			return nil, err
		}
		return copyRosters(rosters), nil
	})
	if err != nil {
		return nil, err
	}

	rosters, _ := v.(map[int64][]roster.Player)
	return copyRosters(rosters), nil
}

func (r *RosterRepository) ReplaceByLeague(ctx context.Context, l league.League, rosters map[int64][]roster.Player) error {
	if err := r.next.ReplaceByLeague(ctx, l, rosters); err != nil {
		return err
	}
	r.cache.Delete(ctx, "roster:list:"+string(l))
	return nil
}

func copyRosters(rosters map[int64][]roster.Player) map[int64][]roster.Player {
	out := make(map[int64][]roster.Player, len(rosters))
	for teamID, players := range rosters {
		out[teamID] = append([]roster.Player(nil), players...)
	}
	return out
}

type StandingsRepository struct {
	next  standings.Repository
	cache *basecache.Store
}

func NewStandingsRepository(next standings.Repository, cache *basecache.Store) *StandingsRepository {
	return &StandingsRepository{next: next, cache: cache}
}

func (r *StandingsRepository) ListByLeague(ctx context.Context, l league.League) ([]standings.Standing, error) {
	key := "standings:list:" + string(l)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, l)
		if err != nil {
			return nil, err
		}
		return append([]standings.Standing(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]standings.Standing)
	return append([]standings.Standing(nil), items...), nil
}

func (r *StandingsRepository) ReplaceByLeague(ctx context.Context, l league.League, items []standings.Standing) error {
	if err := r.next.ReplaceByLeague(ctx, l, items); err != nil {
		return err
	}
	r.cache.Delete(ctx, "standings:list:"+string(l))
	return nil
}

type ScheduleRepository struct {
	next  schedule.Repository
	cache *basecache.Store
}

func NewScheduleRepository(next schedule.Repository, cache *basecache.Store) *ScheduleRepository {
	return &ScheduleRepository{next: next, cache: cache}
}

func scheduleWeekKey(l league.League, weekKey int) string {
	return "schedule:week:" + string(l) + ":" + strconv.Itoa(weekKey)
}

func (r *ScheduleRepository) ListByWeek(ctx context.Context, l league.League, weekKey int) ([]schedule.Game, error) {
	v, err := r.cache.GetOrLoad(ctx, scheduleWeekKey(l, weekKey), func(ctx context.Context) (any, error) {
		games, err := r.next.ListByWeek(ctx, l, weekKey)
		if err != nil {
			return nil, err
		}
		return append([]schedule.Game(nil), games...), nil
	})
	if err != nil {
		return nil, err
	}

	games, _ := v.([]schedule.Game)
	return append([]schedule.Game(nil), games...), nil
}

func (r *ScheduleRepository) ReplaceByWeek(ctx context.Context, l league.League, weekKey int, games []schedule.Game) error {
	if err := r.next.ReplaceByWeek(ctx, l, weekKey, games); err != nil {
		return err
	}
	r.cache.Delete(ctx, scheduleWeekKey(l, weekKey))
	return nil
}

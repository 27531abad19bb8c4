package usecase

import (
	"context"
	"fmt"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/team"
	"github.com/pressboxhq/pressbox/internal/platform/cache"
)

// RosterService flattens per-team rosters into the player lookup the stat
// filters depend on. The index is memoized per league; concurrent builders
// for the same league collapse into one.
type RosterService struct {
	teamRepo   team.Repository
	rosterRepo roster.Repository
	memo       *cache.Store
}

func NewRosterService(teamRepo team.Repository, rosterRepo roster.Repository, memo *cache.Store) *RosterService {
	return &RosterService{
		teamRepo:   teamRepo,
		rosterRepo: rosterRepo,
		memo:       memo,
	}
}

func rosterIndexKey(l league.League) string {
	return "roster:index:" + string(l)
}

// PlayerMap returns the flattened player index for a league, building and
// caching it on first use.
func (s *RosterService) PlayerMap(ctx context.Context, l league.League) (roster.Map, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.PlayerMap")
	defer span.End()

	v, err := s.memo.GetOrLoad(ctx, rosterIndexKey(l), func(ctx context.Context) (any, error) {
		return s.buildIndex(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return v.(roster.Map), nil
}

func (s *RosterService) buildIndex(ctx context.Context, l league.League) (roster.Map, error) {
	teams, err := s.teamRepo.ListByLeague(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	rosters, err := s.rosterRepo.ListByLeague(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("list rosters: %w", err)
	}
	return roster.Index(teams, rosters), nil
}

// Teams lists the league's team directory from the snapshot store.
func (s *RosterService) Teams(ctx context.Context, l league.League) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Teams")
	defer span.End()

	teams, err := s.teamRepo.ListByLeague(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// TeamRoster returns one team's players, or the free agent pool when
// teamID is the free agent key.
func (s *RosterService) TeamRoster(ctx context.Context, l league.League, teamID int64) ([]roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.TeamRoster")
	defer span.End()

	if teamID < 0 {
		return nil, fmt.Errorf("%w: team id must not be negative", ErrInvalidInput)
	}
	rosters, err := s.rosterRepo.ListByLeague(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("list rosters: %w", err)
	}
	players, ok := rosters[teamID]
	if !ok {
		return nil, fmt.Errorf("%w: no roster for team %d in %s", ErrNotFound, teamID, l)
	}
	return players, nil
}

// Invalidate drops the memoized index for a league, forcing the next
// PlayerMap call to rebuild from the repositories.
func (s *RosterService) Invalidate(ctx context.Context, l league.League) {
	s.memo.Delete(ctx, rosterIndexKey(l))
}

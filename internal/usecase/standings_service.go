package usecase

import (
	"context"
	"fmt"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
)

// StandingsService partitions a league's standings into ranked display
// groups.
type StandingsService struct {
	repo standings.Repository
}

func NewStandingsService(repo standings.Repository) *StandingsService {
	return &StandingsService{repo: repo}
}

// StandingsGroup is one ranked block of the league table, ready for
// display in priority order.
type StandingsGroup struct {
	Name  string
	Items []standings.Standing
}

// Grouped returns the league table split by the requested mode, each group
// carrying 1-based ranks in stored order. Pro basketball has no conference
// split so it always renders as a single overall table.
func (s *StandingsService) Grouped(ctx context.Context, l league.League, mode standings.CategoryMode) ([]StandingsGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Grouped")
	defer span.End()

	if l == league.ProBasketball {
		mode = standings.ModeOverall
	}
	if mode == "" {
		mode = standings.ModeConference
	}
	if mode != standings.ModeConference && mode != standings.ModeDivision && mode != standings.ModeOverall {
		return nil, fmt.Errorf("%w: unknown standings mode %q", ErrInvalidInput, mode)
	}
	if mode == standings.ModeDivision && l.IsCollege() {
		mode = standings.ModeConference
	}

	items, err := s.repo.ListByLeague(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	byName, names := standings.Group(items, standings.GroupOrder(l, mode), mode)
	groups := make([]StandingsGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, StandingsGroup{Name: name, Items: byName[name]})
	}
	return groups, nil
}

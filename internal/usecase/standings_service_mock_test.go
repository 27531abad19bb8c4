package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
)

type standingsRepoMock struct {
	mock.Mock
}

func newStandingsRepoMock(t *testing.T) *standingsRepoMock {
	m := &standingsRepoMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *standingsRepoMock) ListByLeague(ctx context.Context, l league.League) ([]standings.Standing, error) {
	args := m.Called(ctx, l)
	var rows []standings.Standing
	if v := args.Get(0); v != nil {
		rows = v.([]standings.Standing)
	}
	return rows, args.Error(1)
}

func (m *standingsRepoMock) ReplaceByLeague(ctx context.Context, l league.League, items []standings.Standing) error {
	args := m.Called(ctx, l, items)
	return args.Error(0)
}

func TestStandingsService_Grouped_WithMockRepo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newStandingsRepoMock(t)
	svc := NewStandingsService(repo)

	repo.
		On("ListByLeague", mock.Anything, league.ProFootball).
		Return([]standings.Standing{
			{TeamID: 1, Conference: "American", Wins: 9, Losses: 3},
			{TeamID: 2, Conference: "National", Wins: 8, Losses: 4},
			{TeamID: 3, Conference: "American", Wins: 7, Losses: 5},
		}, nil).
		Once()

	groups, err := svc.Grouped(ctx, league.ProFootball, standings.ModeConference)
	if err != nil {
		t.Fatalf("grouped standings: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 conference groups, got %d", len(groups))
	}
	if groups[0].Name != "American" || len(groups[0].Items) != 2 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[0].Items[1].Rank != 2 {
		t.Fatalf("expected rank 2 within group, got %d", groups[0].Items[1].Rank)
	}
}

func TestStandingsService_Grouped_RepoFailureWithMockRepo(t *testing.T) {
	t.Parallel()

	repo := newStandingsRepoMock(t)
	svc := NewStandingsService(repo)

	wantErr := errors.New("snapshot store down")
	repo.
		On("ListByLeague", mock.Anything, league.ProHockey).
		Return(nil, wantErr).
		Once()

	_, err := svc.Grouped(context.Background(), league.ProHockey, standings.ModeConference)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected repo error to surface, got %v", err)
	}
}

func TestStandingsService_Grouped_ProBasketballForcesOverall(t *testing.T) {
	t.Parallel()

	repo := newStandingsRepoMock(t)
	svc := NewStandingsService(repo)

	repo.
		On("ListByLeague", mock.Anything, league.ProBasketball).
		Return([]standings.Standing{
			{TeamID: 10, Conference: "East", Wins: 40},
			{TeamID: 11, Conference: "West", Wins: 38},
		}, nil).
		Once()

	groups, err := svc.Grouped(context.Background(), league.ProBasketball, standings.ModeConference)
	if err != nil {
		t.Fatalf("grouped standings: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "Overall" {
		t.Fatalf("expected a single overall table, got %+v", groups)
	}
}

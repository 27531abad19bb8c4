package usecase

import (
	"context"
	"fmt"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
	"github.com/pressboxhq/pressbox/internal/domain/team"
)

// ScheduleService serves weekly slates and the CSV download built from
// them.
type ScheduleService struct {
	scheduleRepo schedule.Repository
	teamRepo     team.Repository
}

func NewScheduleService(scheduleRepo schedule.Repository, teamRepo team.Repository) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		teamRepo:     teamRepo,
	}
}

// Week returns the games for one league week, optionally narrowed to a
// single timeslot.
func (s *ScheduleService) Week(ctx context.Context, l league.League, season, week, timeslot int) ([]schedule.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Week")
	defer span.End()

	if season < 1 || week < 1 {
		return nil, fmt.Errorf("%w: season and week are required", ErrInvalidInput)
	}

	weekKey := l.Codec().EncodeWeek(week, season)
	games, err := s.scheduleRepo.ListByWeek(ctx, l, weekKey)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	if timeslot <= 0 {
		return games, nil
	}

	out := make([]schedule.Game, 0, len(games))
	for _, g := range games {
		if g.Timeslot == timeslot {
			out = append(out, g)
		}
	}
	return out, nil
}

// Export renders one week's slate as a CSV attachment and returns the
// payload with its download filename.
func (s *ScheduleService) Export(ctx context.Context, l league.League, req schedule.ExportRequest) ([]byte, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Export")
	defer span.End()

	if req.SeasonID < 1 || req.WeekID < 1 {
		return nil, "", fmt.Errorf("%w: season and week are required", ErrInvalidInput)
	}

	weekKey := l.Codec().EncodeWeek(req.WeekID, req.SeasonID)
	games, err := s.scheduleRepo.ListByWeek(ctx, l, weekKey)
	if err != nil {
		return nil, "", fmt.Errorf("list schedule: %w", err)
	}
	teams, err := s.teamRepo.ListByLeague(ctx, l)
	if err != nil {
		return nil, "", fmt.Errorf("list teams: %w", err)
	}

	return schedule.ExportCSV(games, team.NewMap(teams), req)
}

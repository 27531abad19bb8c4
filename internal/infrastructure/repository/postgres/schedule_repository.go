package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
	qb "github.com/pressboxhq/pressbox/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) ListByWeek(ctx context.Context, l league.League, weekKey int) ([]schedule.Game, error) {
	query, args, err := qb.Select("*").From("schedule_games").
		Where(
			qb.Eq("league", string(l)),
			qb.Eq("week_key", weekKey),
			qb.IsNull("deleted_at"),
		).
		OrderBy("game_day", "timeslot", "game_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select schedule query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select schedule league=%s week=%d: %w", l, weekKey, err)
	}

	out := make([]schedule.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, schedule.Game{
			ID:         row.GameID,
			WeekKey:    row.WeekKey,
			GameDay:    row.GameDay,
			Timeslot:   row.Timeslot,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			HomeScore:  row.HomeScore,
			AwayScore:  row.AwayScore,
			Played:     row.Played,
		})
	}
	return out, nil
}

func (r *ScheduleRepository) ReplaceByWeek(ctx context.Context, l league.League, weekKey int, games []schedule.Game) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace schedule: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("schedule_games").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("league", string(l)),
			qb.Eq("week_key", weekKey),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear schedule query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear schedule league=%s week=%d: %w", l, weekKey, err)
	}

	for _, item := range games {
		insertModel := gameInsertModel{
			League:     string(l),
			GameID:     item.ID,
			WeekKey:    weekKey,
			GameDay:    item.GameDay,
			Timeslot:   item.Timeslot,
			HomeTeamID: item.HomeTeamID,
			AwayTeamID: item.AwayTeamID,
			HomeScore:  item.HomeScore,
			AwayScore:  item.AwayScore,
			Played:     item.Played,
		}
		query, args, err := qb.InsertModel("schedule_games", insertModel, `ON CONFLICT (league, game_id) WHERE deleted_at IS NULL
DO UPDATE SET
    week_key = EXCLUDED.week_key,
    game_day = EXCLUDED.game_day,
    timeslot = EXCLUDED.timeslot,
    home_team_id = EXCLUDED.home_team_id,
    away_team_id = EXCLUDED.away_team_id,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    played = EXCLUDED.played,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert game query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert game id=%d league=%s: %w", item.ID, l, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace schedule tx: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
	qb "github.com/pressboxhq/pressbox/internal/platform/querybuilder"
)

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

// ListByLeague returns rows in the engine's stored order, which the
// grouper treats as already ranked.
func (r *StandingsRepository) ListByLeague(ctx context.Context, l league.League) ([]standings.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(
			qb.Eq("league", string(l)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("position", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings league=%s: %w", l, err)
	}

	out := make([]standings.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.Standing{
			TeamID:     row.TeamID,
			Conference: row.Conference,
			Division:   row.Division,
			Wins:       row.Wins,
			Losses:     row.Losses,
			Ties:       row.Ties,
			OTLosses:   row.OTLosses,
			Points:     row.Points,
		})
	}
	return out, nil
}

func (r *StandingsRepository) ReplaceByLeague(ctx context.Context, l league.League, items []standings.Standing) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("standings").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("league", string(l)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear standings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear standings league=%s: %w", l, err)
	}

	for position, item := range items {
		insertModel := standingInsertModel{
			League:     string(l),
			TeamID:     item.TeamID,
			Conference: item.Conference,
			Division:   item.Division,
			Wins:       item.Wins,
			Losses:     item.Losses,
			Ties:       item.Ties,
			OTLosses:   item.OTLosses,
			Points:     item.Points,
			Position:   position + 1,
		}
		query, args, err := qb.InsertModel("standings", insertModel, `ON CONFLICT (league, team_id) WHERE deleted_at IS NULL
DO UPDATE SET
    conference = EXCLUDED.conference,
    division = EXCLUDED.division,
    wins = EXCLUDED.wins,
    losses = EXCLUDED.losses,
    ties = EXCLUDED.ties,
    ot_losses = EXCLUDED.ot_losses,
    points = EXCLUDED.points,
    position = EXCLUDED.position,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert standing query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert standing team=%d league=%s: %w", item.TeamID, l, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace standings tx: %w", err)
	}
	return nil
}

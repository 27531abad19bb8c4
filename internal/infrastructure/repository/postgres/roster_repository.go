package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	qb "github.com/pressboxhq/pressbox/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListByLeague(ctx context.Context, l league.League) (map[int64][]roster.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("league", string(l)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("team_id", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players league=%s: %w", l, err)
	}

	out := make(map[int64][]roster.Player, 64)
	for _, row := range rows {
		out[row.TeamID] = append(out[row.TeamID], roster.Player{
			ID:        row.PlayerID,
			TeamID:    row.TeamID,
			Position:  row.Position,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		})
	}
	return out, nil
}

func (r *RosterRepository) ReplaceByLeague(ctx context.Context, l league.League, rosters map[int64][]roster.Player) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace players: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("league", string(l)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear players query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear players league=%s: %w", l, err)
	}

	for teamID, players := range rosters {
		for _, item := range players {
			insertModel := playerInsertModel{
				League:    string(l),
				PlayerID:  item.ID,
				TeamID:    teamID,
				Position:  item.Position,
				FirstName: item.FirstName,
				LastName:  item.LastName,
			}
			query, args, err := qb.InsertModel("players", insertModel, `ON CONFLICT (league, player_id) WHERE deleted_at IS NULL
DO UPDATE SET
    team_id = EXCLUDED.team_id,
    position = EXCLUDED.position,
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    updated_at = NOW(),
    deleted_at = NULL`)
			if err != nil {
				return fmt.Errorf("build upsert player query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert player id=%d league=%s: %w", item.ID, l, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace players tx: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/team"
	qb "github.com/pressboxhq/pressbox/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, l league.League) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("league", string(l)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams league=%s: %w", l, err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:           row.TeamID,
			ConferenceID: row.ConferenceID,
			Conference:   row.Conference,
			Division:     row.Division,
			SecondTier:   row.SecondTier,
			Name:         row.Name,
			Abbr:         row.Abbr,
			City:         row.City,
		})
	}
	return out, nil
}

func (r *TeamRepository) ReplaceByLeague(ctx context.Context, l league.League, items []team.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace teams: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("teams").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("league", string(l)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear teams query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear teams league=%s: %w", l, err)
	}

	for _, item := range items {
		insertModel := teamInsertModel{
			League:       string(l),
			TeamID:       item.ID,
			ConferenceID: item.ConferenceID,
			Conference:   item.Conference,
			Division:     item.Division,
			SecondTier:   item.SecondTier,
			Name:         item.Name,
			Abbr:         item.Abbr,
			City:         item.City,
		}
		query, args, err := qb.InsertModel("teams", insertModel, `ON CONFLICT (league, team_id) WHERE deleted_at IS NULL
DO UPDATE SET
    conference_id = EXCLUDED.conference_id,
    conference = EXCLUDED.conference,
    division = EXCLUDED.division,
    second_tier = EXCLUDED.second_tier,
    name = EXCLUDED.name,
    abbr = EXCLUDED.abbr,
    city = EXCLUDED.city,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert team query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team id=%d league=%s: %w", item.ID, l, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace teams tx: %w", err)
	}
	return nil
}

package team

import (
	"context"

	"github.com/pressboxhq/pressbox/internal/domain/league"
)

type Repository interface {
	ListByLeague(ctx context.Context, l league.League) ([]Team, error)
	ReplaceByLeague(ctx context.Context, l league.League, teams []Team) error
}

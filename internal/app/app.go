// Package app assembles the service: snapshot repositories, engine client,
// usecase services and the HTTP router.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/pressboxhq/pressbox/external/arena"
	"github.com/pressboxhq/pressbox/internal/config"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
	"github.com/pressboxhq/pressbox/internal/domain/stats"
	"github.com/pressboxhq/pressbox/internal/domain/team"
	repocache "github.com/pressboxhq/pressbox/internal/infrastructure/repository/cache"
	"github.com/pressboxhq/pressbox/internal/infrastructure/repository/memory"
	"github.com/pressboxhq/pressbox/internal/infrastructure/repository/postgres"
	"github.com/pressboxhq/pressbox/internal/interfaces/httpapi"
	"github.com/pressboxhq/pressbox/internal/platform/cache"
	"github.com/pressboxhq/pressbox/internal/platform/logging"
	"github.com/pressboxhq/pressbox/internal/platform/resilience"
	"github.com/pressboxhq/pressbox/internal/usecase"
)

type repositories struct {
	teams     team.Repository
	rosters   roster.Repository
	standings standings.Repository
	schedule  schedule.Repository
}

// NewHTTPServer wires the full service and returns the server plus a
// cleanup function for the resources it opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger, httpLogger *slog.Logger) (*http.Server, func() error, error) {
	repos, cleanup, err := buildRepositories(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		listCache := cache.NewStore(cfg.CacheTTL)
		repos = repositories{
			teams:     repocache.NewTeamRepository(repos.teams, listCache),
			rosters:   repocache.NewRosterRepository(repos.rosters, listCache),
			standings: repocache.NewStandingsRepository(repos.standings, listCache),
			schedule:  repocache.NewScheduleRepository(repos.schedule, listCache),
		}
	}

	engine := arena.NewClient(arena.ClientConfig{
		BaseURL:    cfg.ArenaBaseURL,
		Token:      cfg.ArenaToken,
		Timeout:    cfg.ArenaTimeout,
		MaxRetries: cfg.ArenaMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ArenaCircuitEnabled,
			FailureThreshold: cfg.ArenaCircuitFailureCount,
			OpenTimeout:      cfg.ArenaCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ArenaCircuitHalfOpenMaxReq,
		},
	})

	rosterSvc := usecase.NewRosterService(repos.teams, repos.rosters, cache.NewStore(cfg.CacheTTL))
	leagueSvc := usecase.NewLeagueService(engine)
	leaderboardSvc := usecase.NewLeaderboardService(stats.NewStore(), engine, repos.teams, rosterSvc)
	standingsSvc := usecase.NewStandingsService(repos.standings)
	scheduleSvc := usecase.NewScheduleService(repos.schedule, repos.teams)
	snapshotSvc := usecase.NewSnapshotService(engine, repos.teams, repos.rosters, repos.standings, repos.schedule, rosterSvc)

	handler := httpapi.NewHandler(
		leagueSvc,
		leaderboardSvc,
		rosterSvc,
		standingsSvc,
		scheduleSvc,
		snapshotSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, httpLogger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config) (repositories, func() error, error) {
	if cfg.DBURL == "" {
		return repositories{
			teams:     memory.NewTeamRepository(memory.SeedTeams()),
			rosters:   memory.NewRosterRepository(memory.SeedRosters()),
			standings: memory.NewStandingsRepository(memory.SeedStandings()),
			schedule:  memory.NewScheduleRepository(),
		}, func() error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	return repositories{
		teams:     postgres.NewTeamRepository(db),
		rosters:   postgres.NewRosterRepository(db),
		standings: postgres.NewStandingsRepository(db),
		schedule:  postgres.NewScheduleRepository(db),
	}, db.Close, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

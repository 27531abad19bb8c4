package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
	"github.com/pressboxhq/pressbox/internal/domain/team"
)

// SnapshotInput selects which leagues and data kinds to pull from the
// engine. An empty league list means every league.
type SnapshotInput struct {
	Leagues    []string
	SyncData   []string
	MaxWorkers int
	// DryRun fetches and counts but skips repository writes.
	DryRun bool
}

type SnapshotResult struct {
	LeagueCount   int                  `json:"league_count"`
	TaskCount     int                  `json:"task_count"`
	SuccessCount  int                  `json:"success_count"`
	FailedCount   int                  `json:"failed_count"`
	SkippedCount  int                  `json:"skipped_count"`
	WorkerCount   int                  `json:"worker_count"`
	Tasks         []SnapshotTaskResult `json:"tasks"`
	RequestedData []string             `json:"requested_data"`
}

type SnapshotTaskResult struct {
	League     string `json:"league"`
	SyncData   string `json:"sync_data"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

type snapshotDataKind string

const (
	snapshotStatusSuccess = "success"
	snapshotStatusFailed  = "failed"
	snapshotStatusSkipped = "skipped"

	snapshotDataTeams     snapshotDataKind = "teams"
	snapshotDataRosters   snapshotDataKind = "rosters"
	snapshotDataStandings snapshotDataKind = "standings"
	snapshotDataSchedule  snapshotDataKind = "schedule"
)

type snapshotTask struct {
	league league.League
	kind   snapshotDataKind
}

type rosterInvalidator interface {
	Invalidate(ctx context.Context, l league.League)
}

// SnapshotService copies engine state into the local repositories so page
// reads never block on the engine. Tasks fan out across an ants pool; each
// task is one league and data kind.
type SnapshotService struct {
	engine        EngineClient
	teamRepo      team.Repository
	rosterRepo    roster.Repository
	standingsRepo standings.Repository
	scheduleRepo  schedule.Repository
	rosters       rosterInvalidator
}

func NewSnapshotService(
	engine EngineClient,
	teamRepo team.Repository,
	rosterRepo roster.Repository,
	standingsRepo standings.Repository,
	scheduleRepo schedule.Repository,
	rosters rosterInvalidator,
) *SnapshotService {
	return &SnapshotService{
		engine:        engine,
		teamRepo:      teamRepo,
		rosterRepo:    rosterRepo,
		standingsRepo: standingsRepo,
		scheduleRepo:  scheduleRepo,
		rosters:       rosters,
	}
}

func (s *SnapshotService) Sync(ctx context.Context, input SnapshotInput) (SnapshotResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.Sync")
	defer span.End()

	if s.engine == nil {
		return SnapshotResult{}, fmt.Errorf("%w: engine client is not configured", ErrDependencyUnavailable)
	}

	kinds, rawKinds, err := normalizeSnapshotKinds(input.SyncData)
	if err != nil {
		return SnapshotResult{}, err
	}
	targets, err := resolveSnapshotLeagues(input.Leagues)
	if err != nil {
		return SnapshotResult{}, err
	}

	tasks := make([]snapshotTask, 0, len(targets)*len(kinds))
	for _, target := range targets {
		for _, kind := range kinds {
			tasks = append(tasks, snapshotTask{league: target, kind: kind})
		}
	}

	workerCount := normalizeSnapshotWorkerCount(input.MaxWorkers, len(tasks))
	result := SnapshotResult{
		LeagueCount:   len(targets),
		TaskCount:     len(tasks),
		WorkerCount:   workerCount,
		RequestedData: rawKinds,
		Tasks:         make([]SnapshotTaskResult, 0, len(tasks)),
	}
	if len(tasks) == 0 {
		return result, nil
	}

	results := make(chan SnapshotTaskResult, len(tasks))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SnapshotResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := SnapshotTaskResult{
				League:   string(task.league),
				SyncData: string(task.kind),
			}

			records, status, message := s.runSnapshotTask(ctx, task.league, task.kind, input.DryRun)
			row.Records = records
			row.Status = status
			row.Message = message
			row.DurationMs = time.Since(start).Milliseconds()

			switch status {
			case snapshotStatusSuccess:
				successCount.Add(1)
			case snapshotStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return SnapshotResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].League != result.Tasks[j].League {
			return result.Tasks[i].League < result.Tasks[j].League
		}
		return result.Tasks[i].SyncData < result.Tasks[j].SyncData
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	return result, nil
}

func (s *SnapshotService) runSnapshotTask(ctx context.Context, l league.League, kind snapshotDataKind, dryRun bool) (int, string, string) {
	switch kind {
	case snapshotDataTeams:
		count, err := s.syncTeams(ctx, l, dryRun)
		if err != nil {
			return 0, snapshotStatusFailed, err.Error()
		}
		if count == 0 {
			return count, snapshotStatusSkipped, "engine returned no teams"
		}
		return count, snapshotStatusSuccess, ""
	case snapshotDataRosters:
		count, err := s.syncRosters(ctx, l, dryRun)
		if err != nil {
			return 0, snapshotStatusFailed, err.Error()
		}
		if count == 0 {
			return count, snapshotStatusSkipped, "engine returned no rosters"
		}
		return count, snapshotStatusSuccess, ""
	case snapshotDataStandings:
		count, err := s.syncStandings(ctx, l, dryRun)
		if err != nil {
			return 0, snapshotStatusFailed, err.Error()
		}
		if count == 0 {
			return count, snapshotStatusSkipped, "engine returned no standings"
		}
		return count, snapshotStatusSuccess, ""
	case snapshotDataSchedule:
		count, err := s.syncSchedule(ctx, l, dryRun)
		if err != nil {
			return 0, snapshotStatusFailed, err.Error()
		}
		if count == 0 {
			return count, snapshotStatusSkipped, "no games scheduled for the current week"
		}
		return count, snapshotStatusSuccess, ""
	default:
		return 0, snapshotStatusSkipped, "unsupported sync_data"
	}
}

func (s *SnapshotService) syncTeams(ctx context.Context, l league.League, dryRun bool) (int, error) {
	teams, err := s.engine.Teams(ctx, l)
	if err != nil {
		return 0, fmt.Errorf("fetch teams league=%s: %w", l, err)
	}
	for _, row := range teams {
		if err := row.Validate(); err != nil {
			return 0, fmt.Errorf("validate team id=%d league=%s: %w", row.ID, l, err)
		}
	}
	if len(teams) > 0 && !dryRun {
		if err := s.teamRepo.ReplaceByLeague(ctx, l, teams); err != nil {
			return 0, fmt.Errorf("replace teams league=%s: %w", l, err)
		}
	}
	return len(teams), nil
}

func (s *SnapshotService) syncRosters(ctx context.Context, l league.League, dryRun bool) (int, error) {
	rosters, err := s.engine.Rosters(ctx, l)
	if err != nil {
		return 0, fmt.Errorf("fetch rosters league=%s: %w", l, err)
	}

	count := 0
	for _, players := range rosters {
		count += len(players)
	}
	if count > 0 && !dryRun {
		if err := s.rosterRepo.ReplaceByLeague(ctx, l, rosters); err != nil {
			return 0, fmt.Errorf("replace rosters league=%s: %w", l, err)
		}
		if s.rosters != nil {
			s.rosters.Invalidate(ctx, l)
		}
	}
	return count, nil
}

func (s *SnapshotService) syncStandings(ctx context.Context, l league.League, dryRun bool) (int, error) {
	ts, err := s.engine.Timestamp(ctx, l)
	if err != nil {
		return 0, fmt.Errorf("fetch timestamp league=%s: %w", l, err)
	}

	seasonKey := l.Codec().SeasonKey(ts.Season)
	items, err := s.engine.Standings(ctx, l, seasonKey)
	if err != nil {
		return 0, fmt.Errorf("fetch standings league=%s season=%d: %w", l, seasonKey, err)
	}
	if len(items) > 0 && !dryRun {
		if err := s.standingsRepo.ReplaceByLeague(ctx, l, items); err != nil {
			return 0, fmt.Errorf("replace standings league=%s: %w", l, err)
		}
	}
	return len(items), nil
}

func (s *SnapshotService) syncSchedule(ctx context.Context, l league.League, dryRun bool) (int, error) {
	ts, err := s.engine.Timestamp(ctx, l)
	if err != nil {
		return 0, fmt.Errorf("fetch timestamp league=%s: %w", l, err)
	}

	weekKey := l.Codec().EncodeWeek(ts.Week, ts.Season)
	games, err := s.engine.Schedule(ctx, l, weekKey)
	if err != nil {
		return 0, fmt.Errorf("fetch schedule league=%s week=%d: %w", l, weekKey, err)
	}
	if len(games) > 0 && !dryRun {
		if err := s.scheduleRepo.ReplaceByWeek(ctx, l, weekKey, games); err != nil {
			return 0, fmt.Errorf("replace schedule league=%s week=%d: %w", l, weekKey, err)
		}
	}
	return len(games), nil
}

func resolveSnapshotLeagues(raw []string) ([]league.League, error) {
	if len(raw) == 0 {
		out := make([]league.League, len(league.AllLeagues))
		copy(out, league.AllLeagues)
		return out, nil
	}

	seen := make(map[league.League]struct{}, len(raw))
	out := make([]league.League, 0, len(raw))
	for _, item := range raw {
		l, err := league.Parse(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, exists := seen[l]; exists {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}

func normalizeSnapshotKinds(raw []string) ([]snapshotDataKind, []string, error) {
	if len(raw) == 0 {
		kinds := []snapshotDataKind{snapshotDataTeams, snapshotDataRosters, snapshotDataStandings, snapshotDataSchedule}
		requested := make([]string, len(kinds))
		for i, kind := range kinds {
			requested[i] = string(kind)
		}
		return kinds, requested, nil
	}

	seen := make(map[snapshotDataKind]struct{}, len(raw))
	kinds := make([]snapshotDataKind, 0, len(raw))
	requested := make([]string, 0, len(raw))
	for _, item := range raw {
		normalized := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(item)), "-", "_")
		if normalized == "" {
			continue
		}
		kind, ok := toSnapshotDataKind(normalized)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unsupported sync_data=%s", ErrInvalidInput, item)
		}
		if _, exists := seen[kind]; exists {
			continue
		}
		seen[kind] = struct{}{}
		kinds = append(kinds, kind)
		requested = append(requested, normalized)
	}
	if len(kinds) == 0 {
		return nil, nil, fmt.Errorf("%w: sync_data is required", ErrInvalidInput)
	}
	return kinds, requested, nil
}

func toSnapshotDataKind(value string) (snapshotDataKind, bool) {
	switch value {
	case "teams", "team":
		return snapshotDataTeams, true
	case "rosters", "roster", "players":
		return snapshotDataRosters, true
	case "standings", "standing":
		return snapshotDataStandings, true
	case "schedule", "schedules", "games":
		return snapshotDataSchedule, true
	default:
		return "", false
	}
}

func normalizeSnapshotWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 4
	}
	if value > 8 {
		value = 8
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}

package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/platform/logging"
	"github.com/pressboxhq/pressbox/internal/usecase"
)

type Handler struct {
	leagueService      *usecase.LeagueService
	leaderboardService *usecase.LeaderboardService
	rosterService      *usecase.RosterService
	standingsService   *usecase.StandingsService
	scheduleService    *usecase.ScheduleService
	snapshotService    *usecase.SnapshotService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	leaderboardService *usecase.LeaderboardService,
	rosterService *usecase.RosterService,
	standingsService *usecase.StandingsService,
	scheduleService *usecase.ScheduleService,
	snapshotService *usecase.SnapshotService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:      leagueService,
		leaderboardService: leaderboardService,
		rosterService:      rosterService,
		standingsService:   standingsService,
		scheduleService:    scheduleService,
		snapshotService:    snapshotService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parseLeaguePath(r *http.Request) (league.League, error) {
	raw := strings.TrimSpace(r.PathValue("league"))
	l, err := league.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return l, nil
}

// queryInt reads an optional integer query parameter, returning def when
// absent.
func queryInt(values url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

// queryList splits a comma-separated query parameter into trimmed values.
func queryList(values url.Values, key string) []string {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

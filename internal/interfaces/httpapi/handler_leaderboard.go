package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/stats"
	"github.com/pressboxhq/pressbox/internal/usecase"
)

// GetLeaderboard renders one stat slate. Subject, view and the filter
// selections all arrive as query parameters; the response shape follows the
// league's sport family.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	l, err := parseLeaguePath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	q, err := leaderboardQueryFromRequest(l, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var payload any
	switch l.Family() {
	case league.FamilyFootball:
		slate, err := h.leaderboardService.Football(ctx, q)
		if err != nil {
			h.logger.WarnContext(ctx, "football leaderboard failed", "league", string(l), "error", err)
			writeError(ctx, w, err)
			return
		}
		payload = footballSlateToDTO(slate)
	case league.FamilyHockey:
		slate, err := h.leaderboardService.Hockey(ctx, q)
		if err != nil {
			h.logger.WarnContext(ctx, "hockey leaderboard failed", "league", string(l), "error", err)
			writeError(ctx, w, err)
			return
		}
		payload = hockeySlateToDTO(slate)
	case league.FamilyBasketball:
		slate, err := h.leaderboardService.Basketball(ctx, q)
		if err != nil {
			h.logger.WarnContext(ctx, "basketball leaderboard failed", "league", string(l), "error", err)
			writeError(ctx, w, err)
			return
		}
		payload = basketballSlateToDTO(slate)
	default:
		writeError(ctx, w, fmt.Errorf("%w: unsupported league family %q", usecase.ErrInvalidInput, l.Family()))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func leaderboardQueryFromRequest(l league.League, r *http.Request) (usecase.LeaderboardQuery, error) {
	values := r.URL.Query()

	q := usecase.LeaderboardQuery{
		League:        l,
		Subject:       stats.SubjectPlayer,
		View:          stats.ViewByWeek,
		TeamIDs:       queryList(values, "teams"),
		ConferenceIDs: queryList(values, "conferences"),
	}

	if raw := strings.TrimSpace(values.Get("subject")); raw != "" {
		q.Subject = stats.Subject(raw)
	}
	if raw := strings.TrimSpace(values.Get("view")); raw != "" {
		q.View = stats.View(raw)
	}

	var err error
	if q.SeasonOffset, err = queryInt(values, "season", 0); err != nil {
		return usecase.LeaderboardQuery{}, err
	}
	if q.Week, err = queryInt(values, "week", 0); err != nil {
		return usecase.LeaderboardQuery{}, err
	}
	if q.GameDay, err = queryInt(values, "gameday", 0); err != nil {
		return usecase.LeaderboardQuery{}, err
	}

	q.Tier = stats.TierFilter(strings.TrimSpace(values.Get("tier")))
	q.Category = stats.FootballCategory(strings.TrimSpace(values.Get("category")))
	q.HockeyView = stats.HockeyView(strings.TrimSpace(values.Get("positions")))

	return q, nil
}

// WarmPlayerHistory preloads every season stat line for one player so the
// player card can page through seasons without further engine calls. When no
// season is supplied the current engine season bounds the batch.
func (h *Handler) WarmPlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WarmPlayerHistory")
	defer span.End()

	l, err := parseLeaguePath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("playerID")), 10, 64)
	if err != nil || playerID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: player id must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	currentSeason, err := queryInt(r.URL.Query(), "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if currentSeason == 0 {
		ts, err := h.leagueService.Timestamp(ctx, l)
		if err != nil {
			h.logger.WarnContext(ctx, "warm player history timestamp failed", "league", string(l), "error", err)
			writeError(ctx, w, err)
			return
		}
		currentSeason = ts.Season
	}

	if err := h.leaderboardService.LoadPlayerSeasons(ctx, l, playerID, currentSeason); err != nil {
		h.logger.WarnContext(ctx, "warm player history failed",
			"league", string(l), "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"status":  "loaded",
		"seasons": currentSeason,
	})
}

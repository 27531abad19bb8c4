package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	l, err := parseLeaguePath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.rosterService.Teams(ctx, l)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league", string(l), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// GetTeamRoster serves one team's player list. The reserved path segment
// "free-agents" addresses the unsigned player pool.
func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRoster")
	defer span.End()

	l, err := parseLeaguePath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rawTeamID := strings.TrimSpace(r.PathValue("teamID"))
	teamID := roster.FreeAgentKey
	if rawTeamID != "free-agents" {
		teamID, err = strconv.ParseInt(rawTeamID, 10, 64)
		if err != nil || teamID <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: team id must be a positive integer", usecase.ErrInvalidInput))
			return
		}
	}

	players, err := h.rosterService.TeamRoster(ctx, l, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team roster failed", "league", string(l), "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

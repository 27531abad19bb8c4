package httpapi

import (
	"net/http"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues := h.leagueService.Leagues()
	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTimestamp(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTimestamp")
	defer span.End()

	l, err := parseLeaguePath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	ts, err := h.leagueService.Timestamp(ctx, l)
	if err != nil {
		h.logger.WarnContext(ctx, "get timestamp failed", "league", string(l), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, timestampDTO{Season: ts.Season, Week: ts.Week})
}

func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOptions")
	defer span.End()

	l, err := parseLeaguePath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, weeks, err := h.leagueService.Options(ctx, l)
	if err != nil {
		h.logger.WarnContext(ctx, "get options failed", "league", string(l), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, optionListDTO{
		Seasons: optionsToDTO(seasons),
		Weeks:   optionsToDTO(weeks),
	})
}

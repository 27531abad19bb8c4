package httpapi

import (
	"net/http"
	"strings"

	"github.com/pressboxhq/pressbox/internal/domain/standings"
)

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	l, err := parseLeaguePath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	mode := standings.CategoryMode(strings.TrimSpace(r.URL.Query().Get("mode")))
	groups, err := h.standingsService.Grouped(ctx, l, mode)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "league", string(l), "mode", string(mode), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingsGroupDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, standingsGroupToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

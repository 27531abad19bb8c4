package httpapi

import (
	"net/http"
	"strconv"

	"github.com/pressboxhq/pressbox/internal/domain/schedule"
)

func (h *Handler) GetScheduleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScheduleWeek")
	defer span.End()

	l, err := parseLeaguePath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	values := r.URL.Query()
	season, err := queryInt(values, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := queryInt(values, "week", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	timeslot, err := queryInt(values, "timeslot", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.scheduleService.Week(ctx, l, season, week, timeslot)
	if err != nil {
		h.logger.WarnContext(ctx, "get schedule week failed",
			"league", string(l), "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// ExportSchedule streams the selected week as a CSV attachment instead of
// the JSON envelope.
func (h *Handler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportSchedule")
	defer span.End()

	l, err := parseLeaguePath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	values := r.URL.Query()
	season, err := queryInt(values, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := queryInt(values, "week", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	timeslot, err := queryInt(values, "timeslot", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	payload, filename, err := h.scheduleService.Export(ctx, l, schedule.ExportRequest{
		SeasonID: season,
		WeekID:   week,
		Timeslot: timeslot,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "export schedule failed",
			"league", string(l), "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

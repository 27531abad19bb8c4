package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/pressboxhq/pressbox/internal/usecase"
)

type snapshotSyncRequest struct {
	Leagues    []string `json:"leagues" validate:"omitempty,dive,required"`
	SyncData   []string `json:"sync_data" validate:"omitempty,dive,oneof=teams rosters standings schedule"`
	MaxWorkers int      `json:"max_workers" validate:"omitempty,gte=1,lte=32"`
	DryRun     bool     `json:"dry_run"`
}

// RunSnapshotSync refreshes the local snapshot store from the engine. An
// empty body syncs every league and data kind.
func (h *Handler) RunSnapshotSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSnapshotSync")
	defer span.End()

	var req snapshotSyncRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.snapshotService.Sync(ctx, usecase.SnapshotInput{
		Leagues:    req.Leagues,
		SyncData:   req.SyncData,
		MaxWorkers: req.MaxWorkers,
		DryRun:     req.DryRun,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "snapshot sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "snapshot sync finished",
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
	)

	writeSuccess(ctx, w, http.StatusOK, result)
}

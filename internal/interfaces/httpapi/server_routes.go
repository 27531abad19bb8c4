package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{league}/timestamp", handler.GetTimestamp)
	mux.HandleFunc("GET /v1/leagues/{league}/options", handler.GetOptions)
	mux.HandleFunc("GET /v1/leagues/{league}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/leagues/{league}/teams/{teamID}/roster", handler.GetTeamRoster)
	mux.HandleFunc("GET /v1/leagues/{league}/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/leagues/{league}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/leagues/{league}/schedule", handler.GetScheduleWeek)
	mux.HandleFunc("GET /v1/leagues/{league}/schedule/export", handler.ExportSchedule)
	mux.HandleFunc("POST /v1/leagues/{league}/players/{playerID}/history", handler.WarmPlayerHistory)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/snapshot-sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSnapshotSync)))
}

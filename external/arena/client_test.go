package arena

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/platform/logging"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		Logger:  logging.NewNop(),
	})
	return client, server
}

func TestClientTimestamp(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/PFL/timestamp" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("token") != "test-token" {
			t.Error("missing auth token")
		}
		_, _ = w.Write([]byte(`{"data":{"season":3,"week":5}}`))
	}))

	ts, err := client.Timestamp(context.Background(), league.ProFootball)
	if err != nil {
		t.Fatalf("Timestamp error: %v", err)
	}
	if ts.Season != 3 || ts.Week != 5 {
		t.Fatalf("unexpected timestamp: %+v", ts)
	}
}

func TestClientRosters(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"id":10,"team_id":1,"position":"QB","first_name":"Del","last_name":"Marsh"},
			{"id":30,"team_id":0,"position":"WR","first_name":"Wes","last_name":"Calder"},
			{"id":0,"team_id":1}
		]}`))
	}))

	rosters, err := client.Rosters(context.Background(), league.ProFootball)
	if err != nil {
		t.Fatalf("Rosters error: %v", err)
	}
	if len(rosters[1]) != 1 || rosters[1][0].ID != 10 {
		t.Fatalf("unexpected team roster: %+v", rosters[1])
	}
	if len(rosters[0]) != 1 || rosters[0][0].ID != 30 {
		t.Fatalf("free agents not grouped under reserved key: %+v", rosters[0])
	}
}

func TestClientFootballPlayerGames(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/PFL/stats/players/week" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("week") != "2605" {
			t.Errorf("unexpected week key: %s", r.URL.Query().Get("week"))
		}
		_, _ = w.Write([]byte(`{"data":[
			{"player_id":10,"team_id":1,"week_key":2605,"game_day":1,"pass_attempts":30,"pass_yards":312,"pass_tds":3}
		]}`))
	}))

	games, err := client.FootballPlayerGames(context.Background(), league.ProFootball, 2605)
	if err != nil {
		t.Fatalf("FootballPlayerGames error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game line, got %d", len(games))
	}
	g := games[0]
	if g.PlayerID != 10 || g.PassAttempts != 30 || g.PassYards != 312 || g.PassTDs != 3 {
		t.Fatalf("unexpected mapping: %+v", g)
	}
}

func TestClientRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"season":1,"week":1}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		MaxRetries: 1,
		Logger:     logging.NewNop(),
	})

	if _, err := client.Timestamp(context.Background(), league.ProHockey); err != nil {
		t.Fatalf("Timestamp error: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls.Load())
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		MaxRetries: 3,
		Logger:     logging.NewNop(),
	})

	if _, err := client.Timestamp(context.Background(), league.ProHockey); err == nil {
		t.Fatal("expected error for 404")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", calls.Load())
	}
}

func TestRedactAPIURL(t *testing.T) {
	got := redactAPIURL("http://engine.local/api/v1/PFL/teams?token=secret&week=2605")
	if want := "http://engine.local/api/v1/PFL/teams?token=REDACTED&week=2605"; got != want {
		t.Fatalf("redaction mismatch: got=%q want=%q", got, want)
	}
}

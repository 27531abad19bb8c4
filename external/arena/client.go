// Package arena is the HTTP client for the simulation engine's read API.
// Every page the service renders is ultimately backed by data fetched here.
package arena

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
	"github.com/pressboxhq/pressbox/internal/domain/team"
	"github.com/pressboxhq/pressbox/internal/platform/logging"
	"github.com/pressboxhq/pressbox/internal/platform/resilience"
	"github.com/pressboxhq/pressbox/internal/usecase"
)

const defaultBaseURL = "http://localhost:9120/api/v1"

var apiTokenParamRegex = regexp.MustCompile(`token=[^&\s"']+`)
var errArenaTransient = crerr.New("arena transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}
}

type timestampEnvelope struct {
	Data struct {
		Season int `json:"season"`
		Week   int `json:"week"`
	} `json:"data"`
}

func (c *Client) Timestamp(ctx context.Context, l league.League) (league.Timestamp, error) {
	var envelope timestampEnvelope
	if err := c.doJSON(ctx, "/"+string(l)+"/timestamp", nil, &envelope); err != nil {
		return league.Timestamp{}, fmt.Errorf("fetch timestamp league=%s: %w", l, err)
	}
	return league.Timestamp{Season: envelope.Data.Season, Week: envelope.Data.Week}, nil
}

type teamRow struct {
	ID           int64  `json:"id"`
	ConferenceID int64  `json:"conference_id"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	SecondTier   bool   `json:"second_tier"`
	Name         string `json:"name"`
	Abbr         string `json:"abbr"`
	City         string `json:"city"`
}

func (c *Client) Teams(ctx context.Context, l league.League) ([]team.Team, error) {
	var envelope struct {
		Data []teamRow `json:"data"`
	}
	if err := c.doJSON(ctx, "/"+string(l)+"/teams", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch teams league=%s: %w", l, err)
	}

	out := make([]team.Team, 0, len(envelope.Data))
	for _, row := range envelope.Data {
		out = append(out, team.Team{
			ID:           row.ID,
			ConferenceID: row.ConferenceID,
			Conference:   strings.TrimSpace(row.Conference),
			Division:     strings.TrimSpace(row.Division),
			SecondTier:   row.SecondTier,
			Name:         strings.TrimSpace(row.Name),
			Abbr:         strings.TrimSpace(row.Abbr),
			City:         strings.TrimSpace(row.City),
		})
	}
	return out, nil
}

type playerRow struct {
	ID        int64  `json:"id"`
	TeamID    int64  `json:"team_id"`
	Position  string `json:"position"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Rosters returns every player in the league grouped by team ID. Free
// agents arrive with team ID zero and stay grouped under the reserved key.
func (c *Client) Rosters(ctx context.Context, l league.League) (map[int64][]roster.Player, error) {
	var envelope struct {
		Data []playerRow `json:"data"`
	}
	if err := c.doJSON(ctx, "/"+string(l)+"/rosters", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch rosters league=%s: %w", l, err)
	}

	out := make(map[int64][]roster.Player, 64)
	for _, row := range envelope.Data {
		if row.ID <= 0 {
			continue
		}
		p := roster.Player{
			ID:        row.ID,
			TeamID:    row.TeamID,
			Position:  strings.TrimSpace(row.Position),
			FirstName: strings.TrimSpace(row.FirstName),
			LastName:  strings.TrimSpace(row.LastName),
		}
		out[p.TeamID] = append(out[p.TeamID], p)
	}
	return out, nil
}

type standingRow struct {
	TeamID     int64  `json:"team_id"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Ties       int    `json:"ties"`
	OTLosses   int    `json:"ot_losses"`
	Points     int    `json:"points"`
}

func (c *Client) Standings(ctx context.Context, l league.League, seasonKey int) ([]standings.Standing, error) {
	var envelope struct {
		Data []standingRow `json:"data"`
	}
	query := map[string]string{"season": strconv.Itoa(seasonKey)}
	if err := c.doJSON(ctx, "/"+string(l)+"/standings", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch standings league=%s season=%d: %w", l, seasonKey, err)
	}

	out := make([]standings.Standing, 0, len(envelope.Data))
	for _, row := range envelope.Data {
		if row.TeamID <= 0 {
			continue
		}
		out = append(out, standings.Standing{
			TeamID:     row.TeamID,
			Conference: strings.TrimSpace(row.Conference),
			Division:   strings.TrimSpace(row.Division),
			Wins:       row.Wins,
			Losses:     row.Losses,
			Ties:       row.Ties,
			OTLosses:   row.OTLosses,
			Points:     row.Points,
		})
	}
	return out, nil
}

type gameRow struct {
	ID         int64 `json:"id"`
	WeekKey    int   `json:"week_key"`
	GameDay    int   `json:"game_day"`
	Timeslot   int   `json:"timeslot"`
	HomeTeamID int64 `json:"home_team_id"`
	AwayTeamID int64 `json:"away_team_id"`
	HomeScore  int   `json:"home_score"`
	AwayScore  int   `json:"away_score"`
	Played     bool  `json:"played"`
}

func (c *Client) Schedule(ctx context.Context, l league.League, weekKey int) ([]schedule.Game, error) {
	var envelope struct {
		Data []gameRow `json:"data"`
	}
	query := map[string]string{"week": strconv.Itoa(weekKey)}
	if err := c.doJSON(ctx, "/"+string(l)+"/schedule", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch schedule league=%s week=%d: %w", l, weekKey, err)
	}

	out := make([]schedule.Game, 0, len(envelope.Data))
	for _, row := range envelope.Data {
		if row.ID <= 0 {
			continue
		}
		out = append(out, schedule.Game{
			ID:         row.ID,
			WeekKey:    row.WeekKey,
			GameDay:    row.GameDay,
			Timeslot:   row.Timeslot,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			HomeScore:  row.HomeScore,
			AwayScore:  row.AwayScore,
			Played:     row.Played,
		})
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "arena circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: simulation engine is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	if c.token != "" {
		values.Set("token", c.token)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isArenaCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode engine payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errArenaTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errArenaTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: engine status=%d body=%s", errArenaTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("engine status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("engine request failed")
	}
	c.logger.WarnContext(ctx, "arena request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return apiTokenParamRegex.ReplaceAllString(value, "token=REDACTED")
}

func isArenaCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errArenaTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("token") {
		query.Set("token", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}

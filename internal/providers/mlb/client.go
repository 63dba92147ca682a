package mlb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/timeutil"
)

// Config controls how the client reaches the scoreboard feed.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches the master scoreboard for a date and maps it to domain games.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchScoreboard issues a single GET for the date's master scoreboard.
func (c *Client) FetchScoreboard(ctx context.Context, date timeutil.TargetDate) (games.Scoreboard, error) {
	url := c.baseURL + ScoreboardPath(date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return games.Scoreboard{}, &providers.UnreachableError{Provider: providerName, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return games.Scoreboard{}, &providers.UnreachableError{Provider: providerName, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return games.Scoreboard{}, &providers.UnreachableError{Provider: providerName, URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return games.Scoreboard{}, &providers.UnreachableError{Provider: providerName, URL: url, Err: err}
	}

	return Decode(body, date)
}

// Decode parses a master scoreboard document. A payload without data.games is rejected;
// an absent data.games.game is a day with no games.
func Decode(body []byte, date timeutil.TargetDate) (games.Scoreboard, error) {
	var payload scoreboardResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return games.Scoreboard{}, &providers.PayloadError{Provider: providerName, Reason: "decode scoreboard", Err: err}
	}
	if payload.Data == nil || payload.Data.Games == nil {
		return games.Scoreboard{}, &providers.PayloadError{Provider: providerName, Reason: "missing data.games"}
	}

	raw := payload.Data.Games.Game.Items()
	board := games.Scoreboard{
		Date:  date.String(),
		Games: make([]games.Game, 0, len(raw)),
	}
	for _, g := range raw {
		board.Games = append(board.Games, mapGame(g))
	}
	return board, nil
}

package fixture

import (
	"context"
	_ "embed"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/providers/mlb"
	"mlb-scores-service/internal/timeutil"
)

//go:embed scoreboard.json
var scoreboardJSON []byte

// Provider serves a canned master scoreboard with one final, one live and one preview game.
// Useful for local runs without reaching the real feed.
type Provider struct {
	body []byte
}

// New creates a fixture provider backed by the embedded scoreboard.
func New() *Provider {
	return &Provider{body: scoreboardJSON}
}

// FetchScoreboard decodes the embedded document as if it were the requested date's feed.
func (p *Provider) FetchScoreboard(ctx context.Context, date timeutil.TargetDate) (games.Scoreboard, error) {
	if err := ctx.Err(); err != nil {
		return games.Scoreboard{}, err
	}
	return mlb.Decode(p.body, date)
}

package mlb

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type scoreboardResponse struct {
	Data *dataResponse `json:"data"`
}

type dataResponse struct {
	Games *gamesResponse `json:"games"`
}

type gamesResponse struct {
	Game OneOrMany[gameResponse] `json:"game"`
}

type gameResponse struct {
	ID             text              `json:"id"`
	HomeNameAbbrev text              `json:"home_name_abbrev"`
	AwayNameAbbrev text              `json:"away_name_abbrev"`
	HomeCode       text              `json:"home_code"`
	AwayCode       text              `json:"away_code"`
	HomeWin        text              `json:"home_win"`
	HomeLoss       text              `json:"home_loss"`
	AwayWin        text              `json:"away_win"`
	AwayLoss       text              `json:"away_loss"`
	FirstPitchET   text              `json:"first_pitch_et"`
	Status         statusResponse    `json:"status"`
	Linescore      linescoreResponse `json:"linescore"`
	HomeProbable   probableResponse  `json:"home_probable_pitcher"`
	AwayProbable   probableResponse  `json:"away_probable_pitcher"`
	Pitcher        personResponse    `json:"pitcher"`
	Batter         *personResponse   `json:"batter"`
	WinningPitcher personResponse    `json:"winning_pitcher"`
	LosingPitcher  personResponse    `json:"losing_pitcher"`
	SavePitcher    personResponse    `json:"save_pitcher"`
	HomeRuns       *homeRunsResponse `json:"home_runs"`
}

type statusResponse struct {
	Status      text `json:"status"`
	InningState text `json:"inning_state"`
	Inning      text `json:"inning"`
	Balls       text `json:"b"`
	Strikes     text `json:"s"`
	Outs        text `json:"o"`
}

type linescoreResponse struct {
	Runs   lineResponse `json:"r"`
	Hits   lineResponse `json:"h"`
	Errors lineResponse `json:"e"`
}

type lineResponse struct {
	Home text `json:"home"`
	Away text `json:"away"`
}

// probableResponse uses first_name/last_name while every other pitcher uses first/last.
type probableResponse struct {
	FirstName text `json:"first_name"`
	LastName  text `json:"last_name"`
	Wins      text `json:"wins"`
	Losses    text `json:"losses"`
	ERA       text `json:"era"`
}

type personResponse struct {
	First  text `json:"first"`
	Last   text `json:"last"`
	Wins   text `json:"wins"`
	Losses text `json:"losses"`
	ERA    text `json:"era"`
	Saves  text `json:"saves"`
}

type homeRunsResponse struct {
	Player OneOrMany[homeRunResponse] `json:"player"`
}

type homeRunResponse struct {
	First    text `json:"first"`
	Last     text `json:"last"`
	StdHR    text `json:"std_hr"`
	TeamCode text `json:"team_code"`
}

// text accepts JSON strings, numbers and booleans; the feed is not consistent about quoting.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	case '{', '[':
		return fmt.Errorf("expected scalar, got %s", data[:1])
	default:
		*t = text(data)
		return nil
	}
}

func (t text) String() string { return string(t) }

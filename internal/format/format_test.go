package format

import (
	"strings"
	"testing"

	"mlb-scores-service/internal/domain/games"
)

func previewGame() games.Game {
	return games.Game{
		Home:         games.Team{Abbrev: "KC", Code: "kca", Wins: "26", Losses: "29"},
		Away:         games.Team{Abbrev: "CWS", Code: "cha", Wins: "29", Losses: "26"},
		FirstPitchET: "7:10",
		Status:       games.Status{Status: "Preview"},
		HomeProbable: games.Pitcher{First: "Ed", Last: "Starter", Wins: "5", Losses: "4", ERA: "3.91"},
		AwayProbable: games.Pitcher{First: "Ty", Last: "Lefty", Wins: "6", Losses: "2", ERA: "3.12"},
	}
}

func liveGame() games.Game {
	return games.Game{
		Home:   games.Team{Abbrev: "SF", Code: "sfn", Wins: "28", Losses: "27"},
		Away:   games.Team{Abbrev: "LAD", Code: "lan", Wins: "31", Losses: "24"},
		Status: games.Status{Status: "In Progress", InningState: "Top", Inning: "6", Balls: "2", Strikes: "1", Outs: "1"},
		Linescore: games.Linescore{
			Runs:   games.Line{Home: "2", Away: "4"},
			Hits:   games.Line{Home: "5", Away: "8"},
			Errors: games.Line{Home: "1", Away: "0"},
		},
		CurrentPitcher: games.Pitcher{First: "Max", Last: "Arm"},
		CurrentBatter:  &games.Player{First: "Pat", Last: "Hitter"},
		HomeRuns:       []games.HomeRun{{First: "Lou", Last: "Long", SeasonHR: "15", TeamCode: "LAN"}},
	}
}

func finalGame() games.Game {
	return games.Game{
		Home:      games.Team{Abbrev: "NYY", Code: "nya", Wins: "30", Losses: "25"},
		Away:      games.Team{Abbrev: "BOS", Code: "bos", Wins: "33", Losses: "22"},
		Status:    games.Status{Status: "Final"},
		Linescore: games.Linescore{Runs: games.Line{Home: "5", Away: "3"}},
		Winning:   games.Pitcher{First: "Jane", Last: "Doe", Wins: "10", Losses: "3", ERA: "2.50"},
		Losing:    games.Pitcher{First: "Sam", Last: "Loser", Wins: "4", Losses: "7", ERA: "4.80"},
		Save:      games.Pitcher{First: "Cal", Last: "Closer", Saves: "21"},
		HomeRuns: []games.HomeRun{
			{First: "Al", Last: "Bat", SeasonHR: "12", TeamCode: "nya"},
			{First: "Bo", Last: "Swing", SeasonHR: "7", TeamCode: "bos"},
		},
	}
}

func TestPreview(t *testing.T) {
	want := "*CWS* (29-26)   \n" +
		"*KC*  (26-29)       *Preview*\n" +
		"*Game Starts at 7:10 pm Eastern*\n" +
		"*Probable Pitchers*:\n" +
		"Ty Lefty (6-2 3.12) *vs* Ed Starter (5-4 3.91)\n" +
		"\n"

	if got := Preview(previewGame()); got != want {
		t.Fatalf("unexpected preview:\n%q\nwant:\n%q", got, want)
	}
}

func TestInProgressWithCountBatterAndHomeRuns(t *testing.T) {
	want := "*LAD* (31-24)   4  8  0\n" +
		"*SF*  (28-27)   2  5  1    *Top* 6\n" +
		"*Count*: 2-1 1 outs\n" +
		"*Pitching*: Max Arm  *Batting*: Pat Hitter\n" +
		"*HR: SF:* none *LAD:* Lou Long(15) \n" +
		"\n"

	if got := InProgress(liveGame()); got != want {
		t.Fatalf("unexpected in-progress:\n%q\nwant:\n%q", got, want)
	}
}

func TestInProgressWithoutBatterStillEndsPitchingLine(t *testing.T) {
	g := liveGame()
	g.CurrentBatter = nil
	g.HomeRuns = nil

	got := InProgress(g)
	if !strings.Contains(got, "*Pitching*: Max Arm\n\n") {
		t.Fatalf("expected pitching line terminated and block closed, got %q", got)
	}
	if strings.Contains(got, "*HR:") {
		t.Fatalf("expected no HR line without home runs, got %q", got)
	}
}

func TestInProgressBetweenHalfInnings(t *testing.T) {
	g := liveGame()
	g.Status.InningState = "Middle"
	g.HomeRuns = nil

	want := "*LAD* (31-24)   4  8  0\n" +
		"*SF*  (28-27)   2  5  1    *Middle* 6\n" +
		"\n"
	if got := InProgress(g); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestInProgressHaltedShowsStatus(t *testing.T) {
	g := liveGame()
	g.Status.Status = "Rain Delay"

	want := "*LAD* (31-24)   4  8  0\n" +
		"*SF*  (28-27)   2  5  1    *Rain Delay*\n" +
		"\n"
	if got := InProgress(g); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestFinal(t *testing.T) {
	want := "*BOS* (33-22)   3\n" +
		"*NYY* (30-25)   5    *Final*\n" +
		"*W:* Jane Doe (10-3 2.50) *L:* Sam Loser (4-7 4.80) *S:* Cal Closer (21)\n" +
		"*HR: NYY:* Al Bat(12) *BOS:* Bo Swing(7) \n" +
		"\n"

	if got := Final(finalGame()); got != want {
		t.Fatalf("unexpected final:\n%q\nwant:\n%q", got, want)
	}
}

func TestFinalWithoutSaveOrHomeRuns(t *testing.T) {
	g := finalGame()
	g.Save = games.Pitcher{}
	g.HomeRuns = nil

	got := Final(g)
	if strings.Contains(got, "*S:*") {
		t.Fatalf("expected no save line, got %q", got)
	}
	if !strings.Contains(got, "*L:* Sam Loser (4-7 4.80) \n") {
		t.Fatalf("expected decision line to end after losing pitcher, got %q", got)
	}
	if !strings.Contains(got, "*HR: NYY:* none *BOS:* none \n\n") {
		t.Fatalf("expected empty HR line, got %q", got)
	}
}

func TestHomeRunsBucketsBySideCaseInsensitively(t *testing.T) {
	hrs := []games.HomeRun{
		{First: "Home", Last: "Hitter", SeasonHR: "3", TeamCode: "NYA"},
		{First: "Away", Last: "Hitter", SeasonHR: "9", TeamCode: "bos"},
		{First: "Home", Last: "Again", SeasonHR: "4", TeamCode: "nya"},
	}

	want := "*HR: NYY:* Home Hitter(3) Home Again(4) *BOS:* Away Hitter(9) "
	if got := HomeRuns(hrs, "nya", "NYY", "BOS"); got != want {
		t.Fatalf("unexpected HR line %q, want %q", got, want)
	}
}

func TestHomeRunsRendersNoneForEmptySides(t *testing.T) {
	if got := HomeRuns(nil, "nya", "NYY", "BOS"); got != "*HR: NYY:* none *BOS:* none " {
		t.Fatalf("unexpected HR line %q", got)
	}
}

func TestMatchesTeam(t *testing.T) {
	g := finalGame()
	cases := map[string]bool{
		"":    true,
		"NYY": true,
		"nyy": true,
		"Bos": true,
		"TB":  false,
		"NY":  false,
	}
	for team, want := range cases {
		if got := MatchesTeam(g, team); got != want {
			t.Fatalf("team %q: expected %v, got %v", team, want, got)
		}
	}
	if Filtered(g, "TB") != "" {
		t.Fatalf("expected filtered-out game to render nothing")
	}
}

func TestGameDispatchesByPhase(t *testing.T) {
	if got := Game(previewGame()); got != Preview(previewGame()) {
		t.Fatalf("expected preview dispatch")
	}
	if got := Game(finalGame()); got != Final(finalGame()) {
		t.Fatalf("expected final dispatch")
	}

	unknown := liveGame()
	unknown.Status.Status = "Suspended"
	if got := Game(unknown); got != InProgress(unknown) {
		t.Fatalf("expected unknown status to fall through to in-progress")
	}

	for _, status := range []string{"Pre-Game", "Warmup"} {
		g := previewGame()
		g.Status.Status = status
		if !strings.Contains(Game(g), "*Probable Pitchers*") {
			t.Fatalf("expected %s to render as preview", status)
		}
	}
}

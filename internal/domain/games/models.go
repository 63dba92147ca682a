package games

// Phase is the lifecycle bucket a game's status string falls into.
type Phase int

const (
	PhaseInProgress Phase = iota
	PhasePreview
	PhaseFinal
)

func (p Phase) String() string {
	switch p {
	case PhasePreview:
		return "preview"
	case PhaseFinal:
		return "final"
	default:
		return "in_progress"
	}
}

// Status strings published by the scoreboard feed that drive formatting.
const (
	StatusPreview    = "Preview"
	StatusPreGame    = "Pre-Game"
	StatusWarmup     = "Warmup"
	StatusInProgress = "In Progress"
	StatusFinal      = "Final"

	InningTop    = "Top"
	InningBottom = "Bottom"
)

// Classify maps a feed status onto a Phase. Unknown statuses (Delayed, Rain Delay, ...)
// are treated as in progress.
func Classify(status string) Phase {
	switch status {
	case StatusPreview, StatusPreGame, StatusWarmup:
		return PhasePreview
	case StatusFinal:
		return PhaseFinal
	default:
		return PhaseInProgress
	}
}

// Team is one side of a game. Records are kept as the feed's strings.
type Team struct {
	Abbrev string `json:"abbrev"`
	Code   string `json:"code"`
	Wins   string `json:"wins"`
	Losses string `json:"losses"`
}

// Status is the live state of a game.
type Status struct {
	Status      string `json:"status"`
	InningState string `json:"inningState"`
	Inning      string `json:"inning"`
	Balls       string `json:"balls"`
	Strikes     string `json:"strikes"`
	Outs        string `json:"outs"`
}

// Line holds a single linescore column for both sides.
type Line struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// Linescore holds runs, hits and errors.
type Linescore struct {
	Runs   Line `json:"runs"`
	Hits   Line `json:"hits"`
	Errors Line `json:"errors"`
}

// Pitcher covers probable, current and decision pitchers; unused fields stay empty.
type Pitcher struct {
	First  string `json:"first"`
	Last   string `json:"last"`
	Wins   string `json:"wins,omitempty"`
	Losses string `json:"losses,omitempty"`
	ERA    string `json:"era,omitempty"`
	Saves  string `json:"saves,omitempty"`
}

// Player is a named participant such as the current batter.
type Player struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// HomeRun is a home run hitter with their season total.
type HomeRun struct {
	First    string `json:"first"`
	Last     string `json:"last"`
	SeasonHR string `json:"seasonHr"`
	TeamCode string `json:"teamCode"`
}

// Game is the normalized view of one scoreboard entry.
type Game struct {
	ID             string    `json:"id"`
	Home           Team      `json:"home"`
	Away           Team      `json:"away"`
	FirstPitchET   string    `json:"firstPitchEt"`
	Status         Status    `json:"status"`
	Linescore      Linescore `json:"linescore"`
	HomeProbable   Pitcher   `json:"homeProbable"`
	AwayProbable   Pitcher   `json:"awayProbable"`
	CurrentPitcher Pitcher   `json:"currentPitcher"`
	CurrentBatter  *Player   `json:"currentBatter,omitempty"`
	Winning        Pitcher   `json:"winning"`
	Losing         Pitcher   `json:"losing"`
	Save           Pitcher   `json:"save"`
	HomeRuns       []HomeRun `json:"homeRuns,omitempty"`
}

// Phase classifies the game's current status.
func (g Game) Phase() Phase {
	return Classify(g.Status.Status)
}

// Scoreboard is one day's slate of games in feed order.
type Scoreboard struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

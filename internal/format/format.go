// Package format renders scoreboard games as Slack-flavored text blocks.
//
// The *asterisk* pairs are literal message markup for the destination channel.
package format

import (
	"strings"

	"mlb-scores-service/internal/domain/games"
)

// Header prefixes every non-empty scores reply.
const Header = "MLB Scores\n\n"

// MatchesTeam reports whether g passes the optional team filter.
func MatchesTeam(g games.Game, team string) bool {
	if team == "" {
		return true
	}
	return strings.EqualFold(team, g.Home.Abbrev) || strings.EqualFold(team, g.Away.Abbrev)
}

// Game renders the block for g according to its phase.
func Game(g games.Game) string {
	switch g.Phase() {
	case games.PhasePreview:
		return Preview(g)
	case games.PhaseFinal:
		return Final(g)
	default:
		return InProgress(g)
	}
}

// Filtered renders g when it matches team, otherwise returns "".
func Filtered(g games.Game, team string) string {
	if !MatchesTeam(g, team) {
		return ""
	}
	return Game(g)
}

// Preview renders a game that has not started.
func Preview(g games.Game) string {
	var b strings.Builder
	b.WriteString(teamLine(g.Away))
	b.WriteString("\n")
	b.WriteString(teamLine(g.Home))
	b.WriteString("    *" + g.Status.Status + "*\n")
	b.WriteString("*Game Starts at " + g.FirstPitchET + " pm Eastern*\n")
	b.WriteString("*Probable Pitchers*:\n")
	b.WriteString(pitcherLine(g.AwayProbable))
	b.WriteString(" *vs* ")
	b.WriteString(pitcherLine(g.HomeProbable))
	b.WriteString("\n\n")
	return b.String()
}

// InProgress renders a live game, or a halted one (Delayed, Rain Delay, ...) with its status.
func InProgress(g games.Game) string {
	ls := g.Linescore
	var b strings.Builder
	b.WriteString(teamLine(g.Away))
	b.WriteString(ls.Runs.Away + "  " + ls.Hits.Away + "  " + ls.Errors.Away)
	b.WriteString("\n")
	b.WriteString(teamLine(g.Home))
	b.WriteString(ls.Runs.Home + "  " + ls.Hits.Home + "  " + ls.Errors.Home)

	if g.Status.Status == games.StatusInProgress {
		b.WriteString("    *" + g.Status.InningState + "* " + g.Status.Inning + "\n")
		if g.Status.InningState == games.InningTop || g.Status.InningState == games.InningBottom {
			b.WriteString("*Count*: " + g.Status.Balls + "-" + g.Status.Strikes + " " + g.Status.Outs + " outs\n")
			b.WriteString("*Pitching*: " + g.CurrentPitcher.First + " " + g.CurrentPitcher.Last)
			if g.CurrentBatter != nil {
				b.WriteString("  *Batting*: " + g.CurrentBatter.First + " " + g.CurrentBatter.Last)
			}
			b.WriteString("\n")
		}
		if len(g.HomeRuns) > 0 {
			b.WriteString(HomeRuns(g.HomeRuns, g.Home.Code, g.Home.Abbrev, g.Away.Abbrev))
			b.WriteString("\n")
		}
	} else {
		b.WriteString("    *" + g.Status.Status + "*\n")
	}

	b.WriteString("\n")
	return b.String()
}

// Final renders a completed game with decisions and home runs.
func Final(g games.Game) string {
	var b strings.Builder
	b.WriteString(teamLine(g.Away))
	b.WriteString(g.Linescore.Runs.Away)
	b.WriteString("\n")
	b.WriteString(teamLine(g.Home))
	b.WriteString(g.Linescore.Runs.Home)
	b.WriteString("    *" + g.Status.Status + "*\n")

	b.WriteString("*W:* " + pitcherLine(g.Winning) + " ")
	b.WriteString("*L:* " + pitcherLine(g.Losing) + " ")
	if g.Save.First != "" {
		b.WriteString("*S:* " + g.Save.First + " " + g.Save.Last + " (" + g.Save.Saves + ")")
	}
	b.WriteString("\n")

	b.WriteString(HomeRuns(g.HomeRuns, g.Home.Code, g.Home.Abbrev, g.Away.Abbrev))
	b.WriteString("\n\n")
	return b.String()
}

// HomeRuns buckets hitters by side using homeCode and renders the *HR:* line.
// A side without home runs renders as "none ".
func HomeRuns(hrs []games.HomeRun, homeCode, home, away string) string {
	var homeSide, awaySide strings.Builder
	for _, hr := range hrs {
		entry := hr.First + " " + hr.Last + "(" + hr.SeasonHR + ") "
		if strings.EqualFold(hr.TeamCode, homeCode) {
			homeSide.WriteString(entry)
		} else {
			awaySide.WriteString(entry)
		}
	}
	return "*HR: " + home + ":* " + orNone(homeSide.String()) + "*" + away + ":* " + orNone(awaySide.String())
}

func orNone(s string) string {
	if s == "" {
		return "none "
	}
	return s
}

// teamLine renders "*ABR* (W-L)   ", padding two-letter abbreviations to line up with three-letter ones.
func teamLine(t games.Team) string {
	line := "*" + t.Abbrev + "* "
	if len(t.Abbrev) == 2 {
		line += " "
	}
	return line + "(" + t.Wins + "-" + t.Losses + ")   "
}

func pitcherLine(p games.Pitcher) string {
	return p.First + " " + p.Last + " (" + p.Wins + "-" + p.Losses + " " + p.ERA + ")"
}

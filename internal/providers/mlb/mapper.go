package mlb

import "mlb-scores-service/internal/domain/games"

func mapGame(g gameResponse) games.Game {
	game := games.Game{
		ID: g.ID.String(),
		Home: games.Team{
			Abbrev: g.HomeNameAbbrev.String(),
			Code:   g.HomeCode.String(),
			Wins:   g.HomeWin.String(),
			Losses: g.HomeLoss.String(),
		},
		Away: games.Team{
			Abbrev: g.AwayNameAbbrev.String(),
			Code:   g.AwayCode.String(),
			Wins:   g.AwayWin.String(),
			Losses: g.AwayLoss.String(),
		},
		FirstPitchET: g.FirstPitchET.String(),
		Status: games.Status{
			Status:      g.Status.Status.String(),
			InningState: g.Status.InningState.String(),
			Inning:      g.Status.Inning.String(),
			Balls:       g.Status.Balls.String(),
			Strikes:     g.Status.Strikes.String(),
			Outs:        g.Status.Outs.String(),
		},
		Linescore: games.Linescore{
			Runs:   mapLine(g.Linescore.Runs),
			Hits:   mapLine(g.Linescore.Hits),
			Errors: mapLine(g.Linescore.Errors),
		},
		HomeProbable:   mapProbable(g.HomeProbable),
		AwayProbable:   mapProbable(g.AwayProbable),
		CurrentPitcher: mapPitcher(g.Pitcher),
		Winning:        mapPitcher(g.WinningPitcher),
		Losing:         mapPitcher(g.LosingPitcher),
		Save:           mapPitcher(g.SavePitcher),
	}

	if g.Batter != nil {
		game.CurrentBatter = &games.Player{First: g.Batter.First.String(), Last: g.Batter.Last.String()}
	}
	if g.HomeRuns != nil {
		for _, hr := range g.HomeRuns.Player.Items() {
			game.HomeRuns = append(game.HomeRuns, games.HomeRun{
				First:    hr.First.String(),
				Last:     hr.Last.String(),
				SeasonHR: hr.StdHR.String(),
				TeamCode: hr.TeamCode.String(),
			})
		}
	}
	return game
}

func mapLine(l lineResponse) games.Line {
	return games.Line{Home: l.Home.String(), Away: l.Away.String()}
}

func mapProbable(p probableResponse) games.Pitcher {
	return games.Pitcher{
		First:  p.FirstName.String(),
		Last:   p.LastName.String(),
		Wins:   p.Wins.String(),
		Losses: p.Losses.String(),
		ERA:    p.ERA.String(),
	}
}

func mapPitcher(p personResponse) games.Pitcher {
	return games.Pitcher{
		First:  p.First.String(),
		Last:   p.Last.String(),
		Wins:   p.Wins.String(),
		Losses: p.Losses.String(),
		ERA:    p.ERA.String(),
		Saves:  p.Saves.String(),
	}
}

package testutil

import "mlb-scores-service/internal/domain/games"

// FinalGame returns a completed home/away game with a winning pitcher Jane Doe (10-3 2.50).
func FinalGame(home, away string) games.Game {
	return games.Game{
		ID:        away + "@" + home,
		Home:      games.Team{Abbrev: home, Code: lowerCode(home), Wins: "30", Losses: "25"},
		Away:      games.Team{Abbrev: away, Code: lowerCode(away), Wins: "33", Losses: "22"},
		Status:    games.Status{Status: games.StatusFinal},
		Linescore: games.Linescore{Runs: games.Line{Home: "5", Away: "3"}},
		Winning:   games.Pitcher{First: "Jane", Last: "Doe", Wins: "10", Losses: "3", ERA: "2.50"},
		Losing:    games.Pitcher{First: "Sam", Last: "Loser", Wins: "4", Losses: "7", ERA: "4.80"},
	}
}

// PreviewGame returns a game that has not started.
func PreviewGame(home, away string) games.Game {
	return games.Game{
		ID:           away + "@" + home,
		Home:         games.Team{Abbrev: home, Code: lowerCode(home), Wins: "20", Losses: "20"},
		Away:         games.Team{Abbrev: away, Code: lowerCode(away), Wins: "21", Losses: "19"},
		FirstPitchET: "7:05",
		Status:       games.Status{Status: games.StatusPreview},
		HomeProbable: games.Pitcher{First: "Ed", Last: "Starter", Wins: "5", Losses: "4", ERA: "3.91"},
		AwayProbable: games.Pitcher{First: "Ty", Last: "Lefty", Wins: "6", Losses: "2", ERA: "3.12"},
	}
}

func lowerCode(abbrev string) string {
	b := []byte(abbrev)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

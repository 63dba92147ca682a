package scores

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/format"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/timeutil"
)

// Reply texts.
const (
	MessageInvalidCommand = "Not a valid command"
	MessageNoGamesToday   = "No Games Today"
	MessageUnavailable    = "Error: scoreboard data unavailable"
	noGamesForTeamPrefix  = "No games found for "
)

// DefaultCommand is the slash command token accepted when none is configured.
const DefaultCommand = "/scores"

// Outcome classifies a reply for logging and metrics.
type Outcome string

const (
	OutcomeGames          Outcome = "games"
	OutcomeNoGames        Outcome = "no_games"
	OutcomeNoMatch        Outcome = "no_match"
	OutcomeInvalidCommand Outcome = "invalid_command"
	OutcomeUnreachable    Outcome = "unreachable"
	OutcomeError          Outcome = "error"
)

// Request is an inbound scores command.
type Request struct {
	Command string
	// Team optionally narrows the reply to one team's game (abbreviation, any case).
	Team string
}

// Response is the single text reply for a Request.
type Response struct {
	Text    string
	Outcome Outcome
}

// Config tunes the Service.
type Config struct {
	Command  string
	Location *time.Location
}

// Service answers scores commands from a ScoreboardProvider. It holds no per-request state.
type Service struct {
	provider providers.ScoreboardProvider
	command  string
	loc      *time.Location
	now      func() time.Time
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. Empty Config fields fall back to DefaultCommand and time.Local.
func NewService(provider providers.ScoreboardProvider, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	command := cfg.Command
	if command == "" {
		command = DefaultCommand
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		provider: provider,
		command:  command,
		loc:      loc,
		now:      time.Now,
		logger:   logger,
		metrics:  recorder,
	}
}

// Handle produces exactly one reply per request. An invalid command short-circuits before
// any upstream fetch. An unreachable feed yields a "no games found" reply with a nil error;
// a malformed feed yields MessageUnavailable together with the underlying error.
func (s *Service) Handle(ctx context.Context, req Request) (Response, error) {
	return s.handle(ctx, req, nil)
}

// HandleForDate answers req for a fixed scoreboard date instead of the rollover-adjusted clock.
func (s *Service) HandleForDate(ctx context.Context, req Request, date timeutil.TargetDate) (Response, error) {
	return s.handle(ctx, req, &date)
}

func (s *Service) handle(ctx context.Context, req Request, pinned *timeutil.TargetDate) (Response, error) {
	logger := logging.FromContext(ctx, s.logger)
	team := strings.TrimSpace(req.Team)

	if req.Command != s.command {
		logging.Info(logger, "rejected slash command", slog.String(logging.FieldCommand, req.Command))
		return s.finish(Response{Text: MessageInvalidCommand, Outcome: OutcomeInvalidCommand}), nil
	}

	var date timeutil.TargetDate
	if pinned != nil {
		date = *pinned
	} else {
		date = timeutil.ResolveTargetDate(s.now().In(s.loc))
	}
	board, err := s.provider.FetchScoreboard(ctx, date)
	if err != nil {
		if _, ok := providers.AsUnreachable(err); ok {
			logging.Warn(logger, "scoreboard unreachable, replying without games",
				slog.String(logging.FieldDate, date.String()),
				slog.String(logging.FieldTeam, team),
				slog.Any("err", err),
			)
			return s.finish(Response{Text: noGamesForTeamPrefix + team, Outcome: OutcomeUnreachable}), nil
		}
		return s.finish(Response{Text: MessageUnavailable, Outcome: OutcomeError}), fmt.Errorf("fetch scoreboard %s: %w", date, err)
	}

	resp := Assemble(board.Games, team)
	logging.Info(logger, "scores reply assembled",
		slog.String(logging.FieldDate, date.String()),
		slog.String(logging.FieldTeam, team),
		slog.Int(logging.FieldCount, len(board.Games)),
		slog.String(logging.FieldOutcome, string(resp.Outcome)),
	)
	return s.finish(resp), nil
}

func (s *Service) finish(resp Response) Response {
	s.metrics.RecordScoreResponse(string(resp.Outcome))
	return resp
}

// Assemble renders the reply for a day's games. A day without games reports MessageNoGamesToday
// regardless of team; games that exist but all miss the filter report "No games found for <team>".
func Assemble(gs []games.Game, team string) Response {
	if len(gs) == 0 {
		return Response{Text: MessageNoGamesToday, Outcome: OutcomeNoGames}
	}

	var body strings.Builder
	for _, g := range gs {
		body.WriteString(format.Filtered(g, team))
	}
	if body.Len() == 0 {
		return Response{Text: noGamesForTeamPrefix + team, Outcome: OutcomeNoMatch}
	}
	return Response{Text: format.Header + body.String(), Outcome: OutcomeGames}
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mlb-scores-service/internal/app/scores"
	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/server"
	"mlb-scores-service/internal/timeutil"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		provider string
		date     string
	)

	cmd := &cobra.Command{
		Use:          "scores [TEAM]",
		Short:        "Print today's MLB scoreboard the way the slash command replies",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if provider != "" {
				cfg.Provider = provider
			}
			logger := logging.NewLogger(logging.Config{
				Level:   os.Getenv("LOG_LEVEL"),
				Format:  os.Getenv("LOG_FORMAT"),
				Service: "mlb-scores",
				Output:  logOut,
			})

			svc := server.BuildScoresService(cfg, server.BuildProvider(cfg, logger, nil), logger, nil)

			team := ""
			if len(args) == 1 {
				team = args[0]
			}
			command := cfg.Slack.Command
			if command == "" {
				command = scores.DefaultCommand
			}

			req := scores.Request{Command: command, Team: team}
			var resp scores.Response
			if date != "" {
				target, perr := timeutil.ParseTargetDate(date)
				if perr != nil {
					return fmt.Errorf("invalid --date: %w", perr)
				}
				resp, err = svc.HandleForDate(cmd.Context(), req, target)
			} else {
				resp, err = svc.Handle(cmd.Context(), req)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(resp.Text, "\n"))
			return err
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "scoreboard provider (mlb|fixture); overrides PROVIDER")
	cmd.Flags().StringVar(&date, "date", "", "scoreboard date YYYY-MM-DD instead of the rollover-adjusted today")
	return cmd
}

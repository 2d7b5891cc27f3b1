package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/communityroots/volunteer-match/cmd/cli/commands"
	"github.com/communityroots/volunteer-match/internal/config"
	"github.com/communityroots/volunteer-match/pkg/postgres"
	"github.com/communityroots/volunteer-match/pkg/utils/logging"
)

var (
	env        string
	configPath string
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "volunteer-match",
		Short: "Volunteer Match CLI - Match volunteers to service events",
		Long:  `A CLI tool for scoring, ranking and assigning volunteers to service events.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Database != nil {
					app.Database.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: search cwd and home)")
	rootCmd.MarkPersistentFlagRequired("env")

	app = &commands.AppContext{}
	rootCmd.AddCommand(commands.MigrateCmd(app))
	rootCmd.AddCommand(commands.ScoreMatchCmd(app))
	rootCmd.AddCommand(commands.RankVolunteersCmd(app))
	rootCmd.AddCommand(commands.RankEventsCmd(app))
	rootCmd.AddCommand(commands.PlanAssignmentsCmd(app))
	rootCmd.AddCommand(commands.SuggestCmd(app))
	rootCmd.AddCommand(commands.BulkAssignCmd(app))
	rootCmd.AddCommand(commands.ExpandEventsCmd(app))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initApp() error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := context.Background()
	database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.Cfg = cfg
	app.Logger = logger
	app.Database = database
	app.Ctx = ctx

	return nil
}

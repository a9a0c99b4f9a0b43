// Package command contains the CLI command constructors.
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/msomdec/course-api/internal/config"
	"github.com/msomdec/course-api/internal/logging"
	"github.com/msomdec/course-api/internal/repository/sqldb"
)

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	var configFile, envFile string
	cmd := &cobra.Command{
		Use:          "course-api [command] [flags]",
		Short:        "REST API for users and the courses they own",
		Version:      version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), configFile, envFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			logger.DebugContext(cmd.Context(), "configuration loaded",
				slog.String("addr", cfg.Addr),
				slog.String("driver", cfg.Database.Driver),
				slog.Int("bcrypt_cost", cfg.BcryptCost),
			)
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "path to a YAML configuration file")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment when present")
	flags.String("db-driver", sqldb.DriverSQLite, "database driver: sqlite, postgres or mysql")
	flags.String("db-dsn", "courses.db", "database connection string")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", logging.FormatAuto, "log format: auto, text or json")

	cmd.AddCommand(
		serveCommand(),
		migrateCommand(),
		seedCommand(),
	)

	return cmd
}

package cmd

import (
	"campusflow/database"
	"campusflow/scheduler"
	"campusflow/server"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func ServerCli(version string) *cli.Command {
	cmd := &cli.Command{
		Name:    "campusflow",
		Usage:   "BDE management backend",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Sources: cli.EnvVars("DB_BACKEND"),
				Name:    "db-backend",
				Aliases: []string{"db"},
				Value:   "sqlite",
				Usage:   "database driver to use (sqlite or postgres)",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("DB_PATH"),
				Name:    "db-path",
				Aliases: []string{"dp"},
				Value:   "campusflow.db",
				Usage:   "for sqlite the path to the database file",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("DB_URL"),
				Name:    "db-url",
				Usage:   "for postgres the connection DSN",
			},
			&cli.BoolFlag{
				Sources: cli.EnvVars("DEBUG"),
				Name:    "debug",
				Aliases: []string{"d"},
				Value:   false,
				Usage:   "enable debug mode (drops and recreates all tables)",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("HOST"),
				Name:    "host",
				Aliases: []string{"b"},
				Value:   "127.0.0.1",
				Usage:   "server bind address",
			},
			&cli.BoolFlag{
				Sources: cli.EnvVars("SSL"),
				Name:    "ssl",
				Aliases: []string{"s"},
				Value:   false,
				Usage:   "enable ssl",
			},
			&cli.IntFlag{
				Sources: cli.EnvVars("PORT"),
				Name:    "port",
				Aliases: []string{"p"},
				Value:   1984,
				Usage:   "server port",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("QR_SECRET"),
				Name:    "qr-secret",
				Value:   "campusflow-dev-secret",
				Usage:   "key used to sign ticket QR tokens",
			},
			&cli.StringFlag{
				Sources: cli.EnvVars("UPLOAD_DIR"),
				Name:    "upload-dir",
				Value:   "./uploads",
				Usage:   "directory document uploads are written to",
			},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			server.SetupLogger(c.Bool("debug"))

			db := database.SetupDatabase(c.String("db-backend"), c.String("db-path"), c.String("db-url"), c.Bool("debug"))
			if c.Bool("debug") {
				database.SeedDemoList(db)
			}

			s, broadcaster, fullHost := server.BackendServer(
				db,
				c.String("host"),
				c.Int("port"),
				c.Bool("debug"),
				c.Bool("ssl"),
				c.String("qr-secret"),
				c.String("upload-dir"),
			)
			schedulerService := scheduler.NewSchedulerService(db, broadcaster)
			schedulerService.RegisterTasks()
			schedulerService.Start()
			defer schedulerService.Stop()

			log.Info().Str("host", fullHost).Msg("starting server")
			server.ServerStatus = "running"

			if err := s.ListenAndServe(); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}

			return nil
		},
	}

	return cmd
}

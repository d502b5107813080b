package cmd

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/evening-academy/academy-management/pkg/logger"
)

var migrateDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|status]",
	Short: "Run database migrations",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger.Init(logEnv(cfg))

		db, err := sqlx.Connect("pgx", cfg.Database.GetDSN())
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()

		if err := goose.SetDialect("postgres"); err != nil {
			return err
		}

		direction := "up"
		if len(args) > 0 {
			direction = args[0]
		}

		switch direction {
		case "up":
			err = goose.Up(db.DB, migrateDir)
		case "down":
			err = goose.Down(db.DB, migrateDir)
		case "status":
			err = goose.Status(db.DB, migrateDir)
		default:
			return fmt.Errorf("unknown migrate direction %q", direction)
		}
		if err != nil {
			return fmt.Errorf("migrate %s: %w", direction, err)
		}

		logger.L().Info("migrations applied", "direction", direction)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "db/migrations", "migrations directory")
}

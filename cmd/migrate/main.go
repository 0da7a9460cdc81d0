package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"booksapi/internal/config"
	"booksapi/internal/platform/postgres"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var migrationsDir string

	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the books table schema",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnvFiles()
			if !cmd.Flags().Changed("dir") {
				migrationsDir = config.Load().MigrationsDir
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "db/migrations", "directory holding goose SQL migrations")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), func(db *sql.DB) error {
					if err := goose.Up(db, migrationsDir); err != nil {
						return fmt.Errorf("run migrations: %w", err)
					}
					fmt.Println("Migrations applied successfully")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), func(db *sql.DB) error {
					if err := goose.Down(db, migrationsDir); err != nil {
						return fmt.Errorf("rollback migrations: %w", err)
					}
					fmt.Println("Migrations rolled back successfully")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the migration status",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), func(db *sql.DB) error {
					return goose.Status(db, migrationsDir)
				})
			},
		},
		&cobra.Command{
			Use:   "create NAME",
			Short: "Create a new SQL migration file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := goose.Create(nil, migrationsDir, args[0], "sql"); err != nil {
					return fmt.Errorf("create migration: %w", err)
				}
				fmt.Printf("Migration created: %s\n", args[0])
				return nil
			},
		},
	)
	return rootCmd
}

func withDB(ctx context.Context, fn func(db *sql.DB) error) error {
	dsn := config.Load().DatabaseDSN

	pool, err := postgres.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	log.Printf("migrating database %s", postgres.RedactDSN(dsn))
	return fn(db)
}

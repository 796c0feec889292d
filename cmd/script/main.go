package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"perfhistory/cmd"
	"perfhistory/internal/db"
	"perfhistory/internal/service"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "perfhistory",
		Short: "operational scripts for the performance history service",
	}
	root.AddCommand(backfillCmd(), ingestCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func backfillCmd() *cobra.Command {
	var portfolioID string
	var from string

	c := &cobra.Command{
		Use:   "backfill",
		Short: "recompute a portfolio's snapshots from a date forward",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps.ApiHandler)

			id, err := uuid.Parse(portfolioID)
			if err != nil {
				return err
			}
			effectiveDate, err := parseDateFlag(from)
			if err != nil {
				return err
			}
			return deps.ApiHandler.ReplayService.ReplayFrom(context.Background(), id, effectiveDate)
		},
	}
	c.Flags().StringVar(&portfolioID, "portfolio", "", "portfolio uuid")
	c.Flags().StringVar(&from, "from", "", "effective date (YYYY-MM-DD)")
	c.MarkFlagRequired("portfolio")
	c.MarkFlagRequired("from")
	return c
}

func ingestCmd() *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "ingest",
		Short: "fetch and store benchmark prices for a date",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps.ApiHandler)

			ctx := context.Background()
			if date == "" {
				summary, err := deps.ApiHandler.IngestionService.RunDailyFetch(ctx)
				return reportIngest(summary, err)
			}
			forDate, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			summary, runErr := deps.ApiHandler.IngestionService.RunFetchForDate(ctx, forDate)
			return reportIngest(summary, runErr)
		},
	}
	c.Flags().StringVar(&date, "date", "", "target date (YYYY-MM-DD), defaults to previous business day")
	return c
}

func migrateCmd() *cobra.Command {
	var down bool
	var path string

	c := &cobra.Command{
		Use:   "migrate",
		Short: "apply or roll back schema migrations",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps.ApiHandler)

			url := deps.Secrets.Db.ToUrl()
			if down {
				return db.RollbackMigrations(url, path)
			}
			return db.RunMigrations(url, path)
		},
	}
	c.Flags().BoolVar(&down, "down", false, "roll back the most recent migration")
	c.Flags().StringVar(&path, "path", "migrations", "migrations directory")
	return c
}

func parseDateFlag(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func reportIngest(summary *service.IngestionSummary, err error) error {
	if summary != nil {
		fmt.Printf("ingestion for %s: %d succeeded, %d failed\n",
			summary.ForDate.Format("2006-01-02"), summary.Succeeded, summary.Failed)
	}
	return err
}

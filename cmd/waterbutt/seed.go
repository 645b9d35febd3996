package main

import (
	"context"
	"fmt"

	"waterbutt/internal/db"
	"waterbutt/internal/seed"
	"waterbutt/internal/store"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with sample submissions",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of submissions to generate",
			Value:   25,
		},
		&cli.BoolFlag{
			Name:  "reset",
			Usage: "Truncate the submissions table first",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		submissionRepo := store.NewSubmissionRepository(pool)

		logrus.Info("Seeding submissions...")
		created, err := seed.SeedFakeSubmissions(ctx, pool, submissionRepo, c.Int("count"), c.Bool("reset"))
		if err != nil {
			return fmt.Errorf("failed to seed submissions: %w", err)
		}

		pp.Println(created)
		logrus.WithField("count", len(created)).Info("Submissions seeded successfully")

		return nil
	},
}

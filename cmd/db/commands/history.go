package commands

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/megachinese/bot/pkg/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// HistoryCommands returns commands for maintaining translation history.
func HistoryCommands(deps *CLIDependencies) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "history",
			Usage: "Maintain translation history",
			Commands: []*cli.Command{
				{
					Name:      "prune",
					Usage:     "Delete translation history recorded before a point in time",
					ArgsUsage: "BEFORE",
					Description: `Delete translation history older than BEFORE.

BEFORE can be:
  - "2006-01-02" (date only, midnight UTC)
  - "2006-01-02 15:04:05" (datetime, UTC)
  - "2006-01-02 15:04:05 Asia/Shanghai" (datetime with timezone)
  - "2006-01-02T15:04:05+08:00" (RFC3339)
  - "720h" (duration before now)

Examples:
  db history prune 2025-01-01
  db history prune 720h --guild 123456789012345678
  db history prune "2025-01-01T00:00:00Z" -y`,
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:    "batch-size",
							Usage:   "Number of rows deleted per statement",
							Value:   5000,
							Aliases: []string{"b"},
						},
						&cli.StringFlag{
							Name:  "guild",
							Usage: "Only delete history of this guild",
						},
						&cli.BoolFlag{
							Name:    "yes",
							Usage:   "Skip the confirmation prompt",
							Aliases: []string{"y"},
						},
					},
					Action: handleHistoryPrune(deps),
				},
			},
		},
	}
}

// handleHistoryPrune handles the 'history prune' command.
func handleHistoryPrune(deps *CLIDependencies) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() != 1 {
			return ErrCutoffRequired
		}

		cutoff, err := utils.ParseCutoff(c.Args().First(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to parse cutoff %q: %w", c.Args().First(), err)
		}

		var guildID *uint64

		if raw := c.String("guild"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid guild id %q: %w", raw, err)
			}

			guildID = &id
		}

		if !c.Bool("yes") {
			log.Printf("Are you sure you want to delete translation history before %s? (y/N)",
				cutoff.Format("2006-01-02 15:04:05 MST"))

			var response string

			_, _ = fmt.Scanln(&response)

			if response != "y" && response != "Y" {
				deps.Logger.Info("Operation cancelled")
				return nil
			}
		}

		deleted, err := deps.Repo.History().DeleteBefore(ctx, cutoff, guildID, atLeastOne(c.Int("batch-size")))
		if err != nil {
			return err
		}

		deps.Logger.Info("Pruned translation history",
			zap.Time("cutoff", cutoff),
			zap.Int64("deleted", deleted))

		return nil
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/megachinese/bot/internal/translator"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// ErrInvalidToggle is returned when an on/off argument has any other value.
var ErrInvalidToggle = errors.New("expected on or off")

// GuildCommands returns commands for inspecting and editing per-guild settings.
func GuildCommands(deps *CLIDependencies) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "guilds",
			Usage: "Manage per-guild translation settings",
			Commands: []*cli.Command{
				{
					Name:      "show",
					Usage:     "Show the settings of a guild",
					ArgsUsage: "GUILD_ID",
					Action:    handleShowGuild(deps),
				},
				{
					Name:      "languages",
					Usage:     "Set the default language pair of a guild",
					ArgsUsage: "GUILD_ID SOURCE TARGET",
					Action:    handleGuildLanguages(deps),
				},
				{
					Name:      "auto-translate",
					Usage:     "Turn auto-translation on or off for a guild",
					ArgsUsage: "GUILD_ID on|off",
					Action:    handleGuildAutoTranslate(deps),
				},
			},
		},
	}
}

// handleShowGuild handles the 'guilds show' command.
func handleShowGuild(deps *CLIDependencies) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ids, err := parseIDArgs(c, ErrGuildRequired)
		if err != nil {
			return err
		}

		settings, err := deps.Repo.GuildSetting().GetOrCreate(ctx, ids[0])
		if err != nil {
			return err
		}

		deps.Logger.Info("Guild settings",
			zap.Uint64("guildID", settings.GuildID),
			zap.String("prefix", settings.Prefix),
			zap.String("source", settings.DefaultSourceLang),
			zap.String("target", settings.DefaultTargetLang),
			zap.Bool("autoTranslate", settings.AutoTranslate),
			zap.Time("updatedAt", settings.UpdatedAt))

		return nil
	}
}

// handleGuildLanguages handles the 'guilds languages' command.
func handleGuildLanguages(deps *CLIDependencies) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() != 3 {
			return fmt.Errorf("%w: GUILD_ID SOURCE TARGET", ErrArgumentCount)
		}

		guildID, err := parseID(c.Args().Get(0))
		if err != nil {
			return err
		}

		source := translator.ParseLanguage(c.Args().Get(1))
		target := translator.ParseLanguage(c.Args().Get(2))

		// Updates only touch existing rows
		if _, err := deps.Repo.GuildSetting().GetOrCreate(ctx, guildID); err != nil {
			return err
		}

		if err := deps.Repo.GuildSetting().UpdateLanguages(ctx, guildID, source, target); err != nil {
			return err
		}

		deps.Logger.Info("Updated guild languages",
			zap.Uint64("guildID", guildID),
			zap.String("source", source),
			zap.String("target", target))

		return nil
	}
}

// handleGuildAutoTranslate handles the 'guilds auto-translate' command.
func handleGuildAutoTranslate(deps *CLIDependencies) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() != 2 {
			return fmt.Errorf("%w: GUILD_ID on|off", ErrArgumentCount)
		}

		guildID, err := parseID(c.Args().Get(0))
		if err != nil {
			return err
		}

		enabled, err := parseToggle(c.Args().Get(1))
		if err != nil {
			return err
		}

		if _, err := deps.Repo.GuildSetting().GetOrCreate(ctx, guildID); err != nil {
			return err
		}

		if err := deps.Repo.GuildSetting().UpdateAutoTranslate(ctx, guildID, enabled); err != nil {
			return err
		}

		deps.Logger.Info("Updated guild auto-translate",
			zap.Uint64("guildID", guildID),
			zap.Bool("enabled", enabled))

		return nil
	}
}

// parseToggle reads an on/off style argument.
func parseToggle(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidToggle, raw)
	}
}

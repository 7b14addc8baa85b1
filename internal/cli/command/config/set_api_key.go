package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateTicket/internal/config"
	"github.com/Tomas-vilte/MateTicket/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newSetAPIKeyCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-api-key",
		Usage: "Set the Gemini API key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Aliases:  []string{"k"},
				Usage:    "Gemini API key",
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			apiKey := command.String("key")
			if len(apiKey) < 10 {
				return fmt.Errorf("the provided API key looks too short")
			}

			config.GeminiAPIKey = apiKey
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("api_key_updated", 0, nil))
			return nil
		},
	}
}

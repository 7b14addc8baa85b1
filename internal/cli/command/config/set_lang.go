package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateTicket/internal/config"
	"github.com/Tomas-vilte/MateTicket/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newSetLangCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-lang",
		Usage: "Set the CLI language",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lang",
				Aliases:  []string{"l"},
				Usage:    "language code, e.g. en or es",
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.String("lang")
			if err := t.SetLanguage(lang); err != nil {
				return err
			}

			config.Language = lang
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("language_updated", 0, map[string]interface{}{"Lang": lang}))
			return nil
		},
	}
}

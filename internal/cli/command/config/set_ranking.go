package config

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MateTicket/internal/config"
	"github.com/Tomas-vilte/MateTicket/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newSetRankingCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-ranking",
		Usage: "Choose between lexical and semantic relevance ranking",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "semantic",
				Usage: "rank with embeddings instead of term overlap",
			},
			&cli.IntFlag{
				Name:    "top-k",
				Aliases: []string{"k"},
				Usage:   "maximum number of code chunks used as context",
				Value:   int64(config.TopK),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			config.UseSemanticRanking = command.Bool("semantic")
			config.TopK = int(command.Int("top-k"))

			if err := cfg.SaveConfig(config); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

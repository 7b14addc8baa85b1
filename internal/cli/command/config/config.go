package config

import (
	cfg "github.com/Tomas-vilte/MateTicket/internal/config"
	"github.com/Tomas-vilte/MateTicket/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config_command_description", 0, nil),
		Commands: []*cli.Command{
			newShowCommand(t, config),
			newSetAPIKeyCommand(t, config),
			newSetLangCommand(t, config),
			newSetRankingCommand(t, config),
		},
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	configcmd "github.com/Tomas-vilte/MateTicket/internal/cli/command/config"
	"github.com/Tomas-vilte/MateTicket/internal/cli/command/tickets"
	"github.com/Tomas-vilte/MateTicket/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateTicket/internal/config"
	"github.com/Tomas-vilte/MateTicket/internal/i18n"
	"github.com/Tomas-vilte/MateTicket/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateTicket/internal/logger"
	"github.com/Tomas-vilte/MateTicket/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, container, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}
	defer func() {
		if closeErr := container.Close(); closeErr != nil {
			log.Printf("Warning: failed to close AI clients: %v", closeErr)
		}
	}()

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, *di.Container, error) {
	logger.Initialize(os.Getenv("MATETICKET_DEBUG") != "", os.Getenv("MATETICKET_VERBOSE") != "")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not determine the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load translations: %w", err)
	}

	container := di.NewContainer(cfgApp, translations)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("generate", tickets.NewGenerateCommandFactory(container)); err != nil {
		return nil, nil, fmt.Errorf("failed to register the 'generate' command: %w", err)
	}

	if err := registerCommand.Register("insights", tickets.NewInsightsCommandFactory(container)); err != nil {
		return nil, nil, fmt.Errorf("failed to register the 'insights' command: %w", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, nil, fmt.Errorf("failed to register the 'config' command: %w", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "mateticket",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, container, nil
}

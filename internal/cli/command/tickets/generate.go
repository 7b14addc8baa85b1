package tickets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	cfg "github.com/Tomas-vilte/MateTicket/internal/config"
	domainErrors "github.com/Tomas-vilte/MateTicket/internal/domain/errors"
	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
	"github.com/Tomas-vilte/MateTicket/internal/i18n"
	"github.com/Tomas-vilte/MateTicket/internal/infrastructure/di"
	"github.com/urfave/cli/v3"
)

type GenerateCommandFactory struct {
	container *di.Container
}

func NewGenerateCommandFactory(container *di.Container) *GenerateCommandFactory {
	return &GenerateCommandFactory{container: container}
}

func (f *GenerateCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:        "generate",
		Aliases:     []string{"g"},
		Usage:       t.GetMessage("ticket_command_description", 0, nil),
		ArgsUsage:   "<request>",
		Flags:       f.createFlags(config),
		Action:      f.createAction(config, t),
		Description: "Index the repository, rank the code relevant to the request and generate a structured ticket",
	}
}

func (f *GenerateCommandFactory) createFlags(config *cfg.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "repository URL to index",
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "access token for private repositories",
			Value: config.GitHubToken,
		},
		&cli.IntFlag{
			Name:    "top-k",
			Aliases: []string{"k"},
			Usage:   "maximum number of code chunks used as context",
			Value:   int64(config.TopK),
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print the full result as JSON",
		},
	}
}

func (f *GenerateCommandFactory) createAction(config *cfg.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		request := strings.TrimSpace(strings.Join(command.Args().Slice(), " "))
		if request == "" {
			return fmt.Errorf("a request is required, e.g. mateticket generate \"add dark mode toggle\" --repo <url>")
		}

		repoURL := command.String("repo")
		if repoURL == "" {
			return domainErrors.ErrRepoURLMissing
		}

		config.TopK = int(command.Int("top-k"))

		service, err := f.container.GetTicketService(ctx)
		if err != nil {
			return err
		}

		fmt.Println(t.GetMessage("indexing_repository", 0, nil))
		result := service.GenerateIntelligentTicket(ctx, request, repoURL, command.String("token"))

		if command.Bool("json") {
			return printJSON(result)
		}

		if !result.Success {
			return fmt.Errorf("%s", t.GetMessage("ticket_generation_failed", 0, map[string]interface{}{
				"Error": result.Error,
			}))
		}

		printTicket(result, t)
		return nil
	}
}

func printTicket(result *models.TicketResult, t *i18n.Translations) {
	fmt.Println(result.Ticket.RawMarkdown)
	if result.Context == nil {
		return
	}
	fmt.Println()
	fmt.Printf("%s\n", t.GetMessage("relevant_chunks_found", result.Context.RelevantCodeCount, map[string]interface{}{
		"Count": result.Context.RelevantCodeCount,
	}))
	if len(result.Context.Languages) > 0 {
		fmt.Printf("Languages: %s\n", strings.Join(result.Context.Languages, ", "))
	}
	if len(result.Context.Patterns) > 0 {
		fmt.Printf("Patterns: %s\n", strings.Join(result.Context.Patterns, ", "))
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

package tickets

import (
	"context"
	"fmt"
	"sort"
	"strings"

	cfg "github.com/Tomas-vilte/MateTicket/internal/config"
	domainErrors "github.com/Tomas-vilte/MateTicket/internal/domain/errors"
	"github.com/Tomas-vilte/MateTicket/internal/i18n"
	"github.com/Tomas-vilte/MateTicket/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateTicket/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateTicket/internal/logger"
	"github.com/urfave/cli/v3"
)

type InsightsCommandFactory struct {
	container *di.Container
}

func NewInsightsCommandFactory(container *di.Container) *InsightsCommandFactory {
	return &InsightsCommandFactory{container: container}
}

func (f *InsightsCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "insights",
		Aliases: []string{"i"},
		Usage:   t.GetMessage("insights_command_description", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   "repository URL to analyze",
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "access token for private repositories",
				Value: config.GitHubToken,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the project context as JSON",
			},
		},
		Action: f.createAction(),
	}
}

func (f *InsightsCommandFactory) createAction() cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		repoURL := command.String("repo")
		if repoURL == "" {
			return domainErrors.ErrRepoURLMissing
		}
		token := command.String("token")

		// Repository metadata is best effort: insights work from the
		// clone even when the API lookup fails.
		if owner, repo, err := github.ParseRepoURL(repoURL); err == nil {
			info, infoErr := f.container.GetVCSClient().GetRepoInfo(ctx, owner, repo)
			if infoErr != nil {
				logger.Warn(ctx, "failed to fetch repository metadata", "error", infoErr)
			} else if !command.Bool("json") {
				fmt.Printf("%s (%s, %d stars)\n", info.FullName, info.DefaultBranch, info.Stars)
				if info.Description != "" {
					fmt.Println(info.Description)
				}
				fmt.Println()
			}
		}

		service := f.container.GetInsightsService()
		projectContext, indexResult, err := service.ProjectInsights(ctx, repoURL, token)
		if err != nil {
			return err
		}

		if command.Bool("json") {
			return printJSON(projectContext)
		}

		fmt.Printf("Indexed files: %d\n", indexResult.IndexedFiles)
		printCounts("Languages", projectContext.TechnologyStack.Languages)
		printCounts("Frameworks", projectContext.TechnologyStack.Frameworks)
		printCounts("Libraries", projectContext.TechnologyStack.Libraries)
		if len(projectContext.ArchitecturalPatterns) > 0 {
			fmt.Printf("Patterns: %s\n", strings.Join(projectContext.ArchitecturalPatterns, ", "))
		}
		if len(projectContext.BestPractices) > 0 {
			fmt.Printf("Practices: %s\n", strings.Join(projectContext.BestPractices, ", "))
		}
		if len(projectContext.Dependencies.Runtime) > 0 {
			fmt.Printf("Runtime dependencies: %s\n", strings.Join(projectContext.Dependencies.Runtime, ", "))
		}
		return nil
	}
}

func printCounts(label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s (%d)", key, counts[key]))
	}
	fmt.Printf("%s: %s\n", label, strings.Join(parts, ", "))
}

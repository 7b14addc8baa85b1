package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
	"github.com/Tomas-vilte/MateTicket/internal/domain/ports"
)

const defaultTicketTitle = "Generated Ticket"

// userInstructionTemplate is the fixed user-side instruction sent with
// every generation call. It enumerates the required sections and forbids
// the meta-fields the sanitizer would strip anyway.
const userInstructionTemplate = "Generate a concise, LLM-ready implementation ticket in Markdown without any placeholder fields or meta headers. " +
	"Do NOT include sections like 'Example Code Snippet', 'Assigned To', 'Due Date', 'Tags', 'Ticket ID', 'Project', 'Component', 'Priority', 'Complexity', 'Status'. " +
	"Focus on: Title, Summary, Intent, Scope, Files to Modify (list real paths if known or leave empty), Considerations, Acceptance Criteria as checklist. " +
	"User request: %s"

var (
	// Bold-label meta-field lines removed by the sanitizer, each consuming
	// its trailing newline.
	disallowedFieldPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\*\*Assigned To:\*\*.*\n?`),
		regexp.MustCompile(`\*\*Due Date:\*\*.*\n?`),
		regexp.MustCompile(`\*\*Tags:\*\*.*\n?`),
		regexp.MustCompile(`\*\*Ticket ID:\*\*.*\n?`),
		regexp.MustCompile(`\*\*Project:\*\*.*\n?`),
		regexp.MustCompile(`\*\*Component:\*\*.*\n?`),
		regexp.MustCompile(`\*\*Priority:\*\*.*\n?`),
		regexp.MustCompile(`\*\*Complexity:\*\*.*\n?`),
		regexp.MustCompile(`\*\*Status:\*\*.*\n?`),
	}

	// The snippet section runs through to the next "## " heading, which is
	// captured and re-inserted so the following section survives intact.
	exampleSnippetPattern = regexp.MustCompile(`(?is)##\s*Example Code Snippet.*?(\n## |\z)`)

	codeFencePattern   = regexp.MustCompile("```[\\s\\S]*?```")
	blankRunPattern    = regexp.MustCompile(`\n{3,}`)
	checkboxPattern    = regexp.MustCompile(`^- \[[ xX]\]`)
	backtickedToken    = regexp.MustCompile("`([^`]+)`")
	titleHeadingPrefix = "# "
)

// TicketSynthesizer invokes the generation collaborator, sanitizes its raw
// markdown against the disallowed-content policy and parses it into a
// structured ticket.
type TicketSynthesizer struct {
	generator ports.TicketContentGenerator
}

func NewTicketSynthesizer(generator ports.TicketContentGenerator) *TicketSynthesizer {
	return &TicketSynthesizer{generator: generator}
}

// Synthesize produces a ticket from the composed prompt and the raw user
// request. It never returns nil: a generation failure yields a fixed error
// ticket carrying the failure message instead of propagating.
func (s *TicketSynthesizer) Synthesize(ctx context.Context, composedPrompt, userRequest string) *models.Ticket {
	userPrompt := fmt.Sprintf(userInstructionTemplate, userRequest)

	raw, err := s.generator.GenerateTicketContent(ctx, composedPrompt, userPrompt)
	if err != nil {
		return &models.Ticket{
			Title:              "Error generating ticket",
			Description:        fmt.Sprintf("Failed to generate ticket: %v", err),
			AcceptanceCriteria: []string{},
			FilesToModify:      []string{},
		}
	}

	sanitized := sanitizeTicketMarkdown(strings.TrimSpace(raw))
	return parseTicketMarkdown(sanitized)
}

// sanitizeTicketMarkdown removes disallowed meta-field lines, the example
// snippet section, every fenced code block, collapses runs of blank lines
// and trims the result. It is idempotent: sanitizing already-sanitized
// text is a no-op.
func sanitizeTicketMarkdown(md string) string {
	cleaned := md
	for _, pattern := range disallowedFieldPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}
	cleaned = exampleSnippetPattern.ReplaceAllString(cleaned, "${1}")
	cleaned = codeFencePattern.ReplaceAllString(cleaned, "")
	cleaned = blankRunPattern.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}

// parseTicketMarkdown is total: any input, including empty text, yields a
// full ticket shape with defaults where structure is absent.
func parseTicketMarkdown(md string) *models.Ticket {
	lines := strings.Split(md, "\n")

	title := defaultTicketTitle
	for _, line := range lines {
		if strings.HasPrefix(line, titleHeadingPrefix) {
			title = strings.TrimSpace(strings.TrimPrefix(line, titleHeadingPrefix))
			break
		}
	}

	return &models.Ticket{
		Title:              title,
		Description:        md,
		AcceptanceCriteria: extractAcceptanceCriteria(lines),
		FilesToModify:      extractFilesToModify(lines),
		RawMarkdown:        md,
	}
}

// extractAcceptanceCriteria collects checkbox items inside the section
// headed "## Acceptance Criteria"; the section ends at the next "## "
// heading or end of document.
func extractAcceptanceCriteria(lines []string) []string {
	criteria := make([]string, 0)
	inSection := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "## Acceptance Criteria":
			inSection = true
		case inSection && strings.HasPrefix(line, "## "):
			return criteria
		case inSection && checkboxPattern.MatchString(trimmed):
			item := strings.TrimSpace(checkboxPattern.ReplaceAllString(trimmed, ""))
			if item != "" {
				criteria = append(criteria, item)
			}
		}
	}

	return criteria
}

// extractFilesToModify collects the first backtick-delimited token of each
// line inside the section headed "## Files to Modify"; boundary rule as in
// extractAcceptanceCriteria.
func extractFilesToModify(lines []string) []string {
	files := make([]string, 0)
	inSection := false

	for _, line := range lines {
		switch {
		case strings.TrimSpace(line) == "## Files to Modify":
			inSection = true
		case inSection && strings.HasPrefix(line, "## "):
			return files
		case inSection:
			if match := backtickedToken.FindStringSubmatch(line); match != nil {
				files = append(files, match[1])
			}
		}
	}

	return files
}

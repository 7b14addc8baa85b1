package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const rawGeneratedTicket = "# Add dark mode toggle\n" +
	"\n" +
	"## Summary\n" +
	"Adds a theme switch to the settings page.\n" +
	"\n" +
	"**Priority:** High\n" +
	"**Status:** Open\n" +
	"\n" +
	"## Example Code Snippet\n" +
	"```js\n" +
	"const theme = useTheme();\n" +
	"```\n" +
	"\n" +
	"## Acceptance Criteria\n" +
	"- [ ] Toggle persists across sessions\n" +
	"- [x] Default follows the system theme\n" +
	"\n" +
	"## Files to Modify\n" +
	"- `src/theme.js`\n" +
	"- `src/App.jsx`\n"

func TestTicketSynthesizer_Synthesize(t *testing.T) {
	t.Run("parses sanitized generator output", func(t *testing.T) {
		generator := new(MockTicketContentGenerator)
		generator.On("GenerateTicketContent", mock.Anything, "system prompt", mock.Anything).
			Return(rawGeneratedTicket, nil)

		synthesizer := NewTicketSynthesizer(generator)
		ticket := synthesizer.Synthesize(context.Background(), "system prompt", "add dark mode")

		require.NotNil(t, ticket)
		assert.Equal(t, "Add dark mode toggle", ticket.Title)
		assert.Equal(t, []string{
			"Toggle persists across sessions",
			"Default follows the system theme",
		}, ticket.AcceptanceCriteria)
		assert.Equal(t, []string{"src/theme.js", "src/App.jsx"}, ticket.FilesToModify)

		assert.NotContains(t, ticket.Description, "Priority")
		assert.NotContains(t, ticket.Description, "Status")
		assert.NotContains(t, ticket.Description, "Example Code Snippet")
		assert.NotContains(t, ticket.Description, "useTheme")
		assert.Contains(t, ticket.Description, "## Acceptance Criteria")
		generator.AssertExpectations(t)
	})

	t.Run("user prompt carries the raw request", func(t *testing.T) {
		generator := new(MockTicketContentGenerator)
		generator.On("GenerateTicketContent", mock.Anything, mock.Anything, mock.MatchedBy(func(userPrompt string) bool {
			return strings.Contains(userPrompt, "User request: add dark mode")
		})).Return("# T", nil)

		synthesizer := NewTicketSynthesizer(generator)
		synthesizer.Synthesize(context.Background(), "prompt", "add dark mode")
		generator.AssertExpectations(t)
	})

	t.Run("generation failure yields the error ticket", func(t *testing.T) {
		generator := new(MockTicketContentGenerator)
		generator.On("GenerateTicketContent", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("model unavailable"))

		synthesizer := NewTicketSynthesizer(generator)
		ticket := synthesizer.Synthesize(context.Background(), "prompt", "request")

		require.NotNil(t, ticket)
		assert.Equal(t, "Error generating ticket", ticket.Title)
		assert.Contains(t, ticket.Description, "model unavailable")
		assert.Empty(t, ticket.AcceptanceCriteria)
		assert.Empty(t, ticket.FilesToModify)
	})
}

func TestSanitizeTicketMarkdown(t *testing.T) {
	t.Run("removes meta fields snippet section and fences", func(t *testing.T) {
		sanitized := sanitizeTicketMarkdown(rawGeneratedTicket)

		assert.NotContains(t, sanitized, "**Priority:**")
		assert.NotContains(t, sanitized, "**Status:**")
		assert.NotContains(t, sanitized, "Example Code Snippet")
		assert.NotContains(t, sanitized, "```")
		assert.NotContains(t, sanitized, "\n\n\n")
		assert.Contains(t, sanitized, "## Acceptance Criteria")
		assert.Contains(t, sanitized, "## Files to Modify")
	})

	t.Run("is idempotent", func(t *testing.T) {
		once := sanitizeTicketMarkdown(rawGeneratedTicket)
		twice := sanitizeTicketMarkdown(once)
		assert.Equal(t, once, twice)
	})

	t.Run("snippet section at end of document is removed", func(t *testing.T) {
		md := "# Title\n\n## Example Code Snippet\nsome code here"
		sanitized := sanitizeTicketMarkdown(md)
		assert.Equal(t, "# Title", sanitized)
	})
}

func TestParseTicketMarkdown(t *testing.T) {
	t.Run("empty input yields defaults", func(t *testing.T) {
		ticket := parseTicketMarkdown("")

		assert.Equal(t, "Generated Ticket", ticket.Title)
		assert.Empty(t, ticket.AcceptanceCriteria)
		assert.Empty(t, ticket.FilesToModify)
	})

	t.Run("first heading wins as title", func(t *testing.T) {
		ticket := parseTicketMarkdown("# First\n\n# Second\n")
		assert.Equal(t, "First", ticket.Title)
	})

	t.Run("criteria section ends at the next heading", func(t *testing.T) {
		md := "## Acceptance Criteria\n" +
			"- [ ] inside\n" +
			"## Notes\n" +
			"- [ ] outside\n"

		ticket := parseTicketMarkdown(md)
		assert.Equal(t, []string{"inside"}, ticket.AcceptanceCriteria)
	})

	t.Run("only backticked tokens count as files", func(t *testing.T) {
		md := "## Files to Modify\n" +
			"- `src/a.go`\n" +
			"- plain text line\n" +
			"- `src/b.go` and `src/ignored.go`\n"

		ticket := parseTicketMarkdown(md)
		assert.Equal(t, []string{"src/a.go", "src/b.go"}, ticket.FilesToModify)
	})
}

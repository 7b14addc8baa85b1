package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
)

const (
	similarExcerptLimit = 3
	excerptCodeLength   = 200

	promptHeader = "You are a senior technical lead generating implementation tickets for a project with the following characteristics:"

	promptClosingInstructions = `CRITICAL INSTRUCTIONS:
1. Follow the EXACT patterns and conventions shown in the examples above
2. Use the SAME technology stack and libraries detected in the project
3. Maintain consistency with the architectural patterns identified
4. Reference ACTUAL files and structures from the project
5. Include specific implementation details based on the project's coding style
6. Consider the complexity level and scope identified in the analysis

Generate a comprehensive implementation ticket that is perfectly aligned with this project's specific characteristics and patterns.`
)

// PromptComposer renders the project context and request analysis into one
// deterministic instructional prompt: identical inputs always produce
// identical text.
type PromptComposer struct{}

func NewPromptComposer() *PromptComposer {
	return &PromptComposer{}
}

// Compose builds the contextual prompt in fixed section order.
func (c *PromptComposer) Compose(request string, pc models.ProjectContext, analysis models.RequestAnalysis) string {
	var sb strings.Builder

	sb.WriteString(promptHeader)
	sb.WriteString("\n\n")
	sb.WriteString(c.technologySection(pc.TechnologyStack))
	sb.WriteString("\n")
	sb.WriteString(c.architectureSection(pc.ArchitecturalPatterns))
	sb.WriteString("\n")
	sb.WriteString(c.conventionsSection(pc.CodingConventions))
	sb.WriteString("\n")
	sb.WriteString(c.analysisSection(analysis))
	sb.WriteString("\n")
	sb.WriteString(c.examplesSection(pc.SimilarImplementations))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("USER REQUEST: %q\n\n", request))
	sb.WriteString(promptClosingInstructions)

	return sb.String()
}

func (c *PromptComposer) technologySection(stack models.TechnologyStack) string {
	var sb strings.Builder
	sb.WriteString("TECHNOLOGY STACK:\n")

	if langs := topByCount(stack.Languages, 3); len(langs) > 0 {
		sb.WriteString(fmt.Sprintf("- Primary Languages: %s\n", strings.Join(langs, ", ")))
	}
	if fws := topByCount(stack.Frameworks, 3); len(fws) > 0 {
		sb.WriteString(fmt.Sprintf("- Frameworks: %s\n", strings.Join(fws, ", ")))
	}
	if libs := topByCount(stack.Libraries, 5); len(libs) > 0 {
		sb.WriteString(fmt.Sprintf("- Key Libraries: %s\n", strings.Join(libs, ", ")))
	}

	return sb.String()
}

func (c *PromptComposer) architectureSection(patterns []string) string {
	if len(patterns) == 0 {
		return "ARCHITECTURE: Standard application architecture\n"
	}

	var sb strings.Builder
	sb.WriteString("ARCHITECTURAL PATTERNS:\n")
	for _, pattern := range patterns {
		sb.WriteString(fmt.Sprintf("- %s\n", pattern))
	}
	return sb.String()
}

func (c *PromptComposer) conventionsSection(conventions models.CodingConventions) string {
	var sb strings.Builder
	sb.WriteString("CODING CONVENTIONS:\n")

	if style := dominantNamingStyle(conventions.Naming); style != "" {
		sb.WriteString(fmt.Sprintf("- Naming Convention: %s\n", style))
	}

	return sb.String()
}

func (c *PromptComposer) analysisSection(analysis models.RequestAnalysis) string {
	var sb strings.Builder
	sb.WriteString("USER REQUEST ANALYSIS:\n")
	sb.WriteString(fmt.Sprintf("- Intent: %s\n", analysis.Intent))
	sb.WriteString(fmt.Sprintf("- Complexity: %s\n", analysis.Complexity))
	sb.WriteString(fmt.Sprintf("- Scope: %s\n", analysis.Scope))
	sb.WriteString(fmt.Sprintf("- Keywords: %s\n", strings.Join(analysis.Keywords, ", ")))
	sb.WriteString(fmt.Sprintf("- Technology Hints: %s\n", strings.Join(analysis.TechnologyHints, ", ")))
	return sb.String()
}

func (c *PromptComposer) examplesSection(similar []models.CodeChunk) string {
	if len(similar) == 0 {
		return "EXAMPLES: No specific examples available\n"
	}

	var sb strings.Builder
	sb.WriteString("SIMILAR IMPLEMENTATIONS (for reference):\n")
	for i, impl := range similar {
		if i == similarExcerptLimit {
			break
		}
		code := impl.Code
		if len(code) > excerptCodeLength {
			code = code[:excerptCodeLength]
		}
		sb.WriteString(fmt.Sprintf("%d. File: %s\n", i+1, impl.Filename))
		sb.WriteString(fmt.Sprintf("   Language: %s\n", impl.Language))
		sb.WriteString(fmt.Sprintf("   Code: %s...\n\n", code))
	}
	return sb.String()
}

// topByCount returns up to n labels ordered by descending count, ties
// broken alphabetically so the prompt stays deterministic.
func topByCount(counts map[string]int, n int) []string {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	if len(labels) > n {
		labels = labels[:n]
	}
	return labels
}

// dominantNamingStyle is the argmax of the naming tallies, ties broken
// alphabetically.
func dominantNamingStyle(naming map[string]int) string {
	best := ""
	bestCount := 0
	styles := make([]string, 0, len(naming))
	for style := range naming {
		styles = append(styles, style)
	}
	sort.Strings(styles)

	for _, style := range styles {
		if naming[style] > bestCount {
			best = style
			bestCount = naming[style]
		}
	}
	return best
}

package services

import (
	"path"
	"regexp"
	"strings"

	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
	"github.com/Tomas-vilte/MateTicket/internal/infrastructure/dependency"
)

// detector ties a label to the code keywords that imply it. A chunk may
// match several detectors at once.
type detector struct {
	label    string
	keywords []string
}

var (
	// Declaration patterns for the three language families we classify
	// naming styles from. They only capture lowercase-leading identifiers,
	// matching the original heuristics.
	declarationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`def\s+([a-z_][a-z0-9_]*)`),
		regexp.MustCompile(`function\s+([a-z][a-zA-Z0-9]*)`),
		regexp.MustCompile(`const\s+([a-z][a-zA-Z0-9]*)\s*=`),
	}

	// Import statement patterns for the four syntactic styles scanned for
	// external dependencies, in scan order.
	importPatterns = []*regexp.Regexp{
		regexp.MustCompile(`import\s+([a-zA-Z_][a-zA-Z0-9_]*)`),
		regexp.MustCompile(`from\s+([a-zA-Z_][a-zA-Z0-9_]*)`),
		regexp.MustCompile(`require\(['"]([^'"]+)['"]\)`),
		regexp.MustCompile(`import\s+.*?from\s+['"]([^'"]+)['"]`),
	}
)

// ProjectContextBuilder aggregates ranked chunks plus raw manifests into a
// ProjectContext. Build is a pure function of its inputs and never fails;
// absence of signal yields empty collections. All tallies live in
// accumulators scoped to one invocation.
type ProjectContextBuilder struct {
	frameworks         []detector
	libraries          []detector
	manifestAnalyzer   *dependency.PackageManifestAnalyzer
	similarityScoreMin float64
	similarityCap      int
}

func NewProjectContextBuilder() *ProjectContextBuilder {
	return &ProjectContextBuilder{
		frameworks: []detector{
			{"react", []string{"react", "jsx"}},
			{"vue", []string{"vue"}},
			{"angular", []string{"angular"}},
			{"flutter", []string{"flutter"}},
			{"django", []string{"django"}},
			{"fastapi", []string{"fastapi"}},
			{"spring", []string{"spring"}},
		},
		libraries: []detector{
			{"axios", []string{"axios"}},
			{"lodash", []string{"lodash"}},
			{"moment", []string{"moment"}},
			{"pandas", []string{"pandas"}},
		},
		manifestAnalyzer:   dependency.NewPackageManifestAnalyzer(),
		similarityScoreMin: 0.7,
		similarityCap:      5,
	}
}

// Build aggregates the ranked chunks and manifests into a ProjectContext.
func (b *ProjectContextBuilder) Build(chunks []models.CodeChunk, manifests map[string]string) models.ProjectContext {
	return models.ProjectContext{
		TechnologyStack:        b.analyzeTechnologyStack(chunks),
		ArchitecturalPatterns:  b.detectArchitecturalPatterns(chunks),
		CodingConventions:      b.analyzeCodingConventions(chunks),
		SimilarImplementations: b.extractSimilarImplementations(chunks),
		BestPractices:          b.identifyBestPractices(chunks),
		Dependencies:           b.analyzeDependencies(chunks, manifests),
	}
}

func (b *ProjectContextBuilder) analyzeTechnologyStack(chunks []models.CodeChunk) models.TechnologyStack {
	stack := models.TechnologyStack{
		Languages:  make(map[string]int),
		Frameworks: make(map[string]int),
		Libraries:  make(map[string]int),
	}

	for _, chunk := range chunks {
		if chunk.Language != "" {
			stack.Languages[chunk.Language]++
		}
	}

	for _, chunk := range chunks {
		codeLower := strings.ToLower(chunk.Code)

		for _, fw := range b.frameworks {
			if containsAny(codeLower, fw.keywords) {
				stack.Frameworks[fw.label]++
			}
		}
		for _, lib := range b.libraries {
			if containsAny(codeLower, lib.keywords) {
				stack.Libraries[lib.label]++
			}
		}
	}

	return stack
}

// detectArchitecturalPatterns applies independent filename-substring
// heuristics. MVC needs all three of model/view/controller present across
// the filenames; Clean Architecture needs both domain and application.
func (b *ProjectContextBuilder) detectArchitecturalPatterns(chunks []models.CodeChunk) []string {
	filenames := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		filenames = append(filenames, strings.ToLower(chunk.Filename))
	}

	anyContains := func(sub string) bool {
		for _, f := range filenames {
			if strings.Contains(f, sub) {
				return true
			}
		}
		return false
	}

	patterns := make([]string, 0)

	if anyContains("model") && anyContains("view") && anyContains("controller") {
		patterns = append(patterns, "MVC")
	}
	if anyContains("component") || anyContains("components") {
		patterns = append(patterns, "Component-based")
	}
	if anyContains("service") {
		patterns = append(patterns, "Service Layer")
	}
	if anyContains("repository") {
		patterns = append(patterns, "Repository Pattern")
	}
	if anyContains("domain") && anyContains("application") {
		patterns = append(patterns, "Clean Architecture")
	}

	return patterns
}

func (b *ProjectContextBuilder) analyzeCodingConventions(chunks []models.CodeChunk) models.CodingConventions {
	conventions := models.CodingConventions{
		Naming: make(map[string]int),
	}

	for _, chunk := range chunks {
		for _, pattern := range declarationPatterns {
			for _, match := range pattern.FindAllStringSubmatch(chunk.Code, -1) {
				name := match[1]
				if name == "" {
					continue
				}
				switch {
				case name[0] >= 'A' && name[0] <= 'Z':
					conventions.Naming["PascalCase"]++
				case strings.Contains(name, "_"):
					conventions.Naming["snake_case"]++
				default:
					conventions.Naming["camelCase"]++
				}
			}
		}
	}

	return conventions
}

// extractSimilarImplementations keeps, per (language, file basename) group,
// the highest-scoring chunk above the 0.7 relevance bar, preserving group
// insertion order, capped at 5 entries.
func (b *ProjectContextBuilder) extractSimilarImplementations(chunks []models.CodeChunk) []models.CodeChunk {
	groupOrder := make([]string, 0)
	best := make(map[string]models.CodeChunk)

	for _, chunk := range chunks {
		if chunk.Score <= b.similarityScoreMin {
			continue
		}
		key := chunk.Language + "_" + path.Base(chunk.Filename)
		current, exists := best[key]
		if !exists {
			groupOrder = append(groupOrder, key)
			best[key] = chunk
		} else if chunk.Score > current.Score {
			best[key] = chunk
		}
	}

	similar := make([]models.CodeChunk, 0, len(groupOrder))
	for _, key := range groupOrder {
		similar = append(similar, best[key])
		if len(similar) == b.similarityCap {
			break
		}
	}

	return similar
}

func (b *ProjectContextBuilder) identifyBestPractices(chunks []models.CodeChunk) []string {
	practices := make([]string, 0)
	seen := make(map[string]bool)

	record := func(label string) {
		if !seen[label] {
			seen[label] = true
			practices = append(practices, label)
		}
	}

	for _, chunk := range chunks {
		code := chunk.Code
		codeLower := strings.ToLower(code)

		if strings.Contains(code, "try:") || strings.Contains(code, "catch") || strings.Contains(code, "except") {
			record("Error Handling")
		}
		// Loose signal: a colon next to a function/definition keyword is
		// treated as a type annotation, not parsed as one.
		if strings.Contains(code, ":") && (strings.Contains(code, "def ") || strings.Contains(code, "function")) {
			record("Type Annotations")
		}
		if strings.Contains(code, `"""`) || strings.Contains(code, "'''") || strings.Contains(code, "//") {
			record("Code Documentation")
		}
		if strings.Contains(codeLower, "test") || strings.Contains(codeLower, "spec") {
			record("Testing")
		}
	}

	return practices
}

func (b *ProjectContextBuilder) analyzeDependencies(chunks []models.CodeChunk, manifests map[string]string) models.Dependencies {
	deps := models.Dependencies{
		Runtime:     make([]string, 0),
		Development: make([]string, 0),
		External:    make([]string, 0),
	}

	if content, ok := manifests["package.json"]; ok {
		runtime, development, err := b.manifestAnalyzer.DependencyNames(content)
		if err == nil {
			deps.Runtime = runtime
			deps.Development = development
		}
	}

	seen := make(map[string]bool)
	for _, chunk := range chunks {
		for _, pattern := range importPatterns {
			for _, match := range pattern.FindAllStringSubmatch(chunk.Code, -1) {
				name := match[1]
				if name != "" && !seen[name] {
					seen[name] = true
					deps.External = append(deps.External, name)
				}
			}
		}
	}

	return deps
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

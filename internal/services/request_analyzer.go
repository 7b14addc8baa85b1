package services

import (
	"regexp"
	"strings"

	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
)

// intentBucket ties an intent to the request keywords that trigger it.
// Buckets are scanned in order and the first match wins.
type intentBucket struct {
	intent   models.Intent
	keywords []string
}

// scopeBucket works like intentBucket but for the request scope.
type scopeBucket struct {
	scope    models.Scope
	keywords []string
}

// technologyHint ties a technology label to the request keywords that
// suggest it.
type technologyHint struct {
	technology string
	keywords   []string
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// RequestAnalyzer classifies a raw request into intent, complexity and
// scope, and extracts keywords and technology hints. Classification tables
// are injected at construction so they can be tested and extended without
// touching the control flow. Analyze never fails: absent signal maps to
// the documented defaults.
type RequestAnalyzer struct {
	intentBuckets []intentBucket
	scopeBuckets  []scopeBucket
	techHints     []technologyHint
	stopWords     map[string]struct{}
}

// NewRequestAnalyzer creates an analyzer wired with the default tables.
func NewRequestAnalyzer() *RequestAnalyzer {
	return &RequestAnalyzer{
		intentBuckets: defaultIntentBuckets(),
		scopeBuckets:  defaultScopeBuckets(),
		techHints:     defaultTechnologyHints(),
		stopWords:     defaultStopWords(),
	}
}

func defaultIntentBuckets() []intentBucket {
	return []intentBucket{
		{models.IntentFeatureImplementation, []string{"add", "create", "implement", "build"}},
		{models.IntentBugFix, []string{"fix", "bug", "error", "issue"}},
		{models.IntentRefactoring, []string{"refactor", "improve", "optimize"}},
		{models.IntentSecurityUpdate, []string{"security", "vulnerability", "auth"}},
		{models.IntentPerformance, []string{"performance", "speed", "efficiency"}},
	}
}

func defaultScopeBuckets() []scopeBucket {
	return []scopeBucket{
		{models.ScopeComponent, []string{"component", "function", "class"}},
		{models.ScopeModule, []string{"module", "service", "api"}},
		{models.ScopeSystem, []string{"system", "architecture", "database"}},
	}
}

func defaultTechnologyHints() []technologyHint {
	return []technologyHint{
		{"react", []string{"react", "jsx", "component", "hook"}},
		{"vue", []string{"vue", "template", "composition"}},
		{"angular", []string{"angular", "service", "directive"}},
		{"flutter", []string{"flutter", "widget", "dart"}},
		{"python", []string{"python", "django", "flask", "fastapi"}},
		{"java", []string{"java", "spring", "maven"}},
		{"typescript", []string{"typescript", "ts", "interface", "type"}},
		{"javascript", []string{"javascript", "js", "node", "express"}},
		{"database", []string{"database", "sql", "mongodb", "postgres"}},
		{"api", []string{"api", "rest", "graphql", "endpoint"}},
		{"auth", []string{"authentication", "auth", "login", "jwt", "oauth"}},
		{"testing", []string{"test", "spec", "unit", "integration", "e2e"}},
	}
}

func defaultStopWords() map[string]struct{} {
	words := []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "is", "are", "was", "were", "be", "been", "have",
		"has", "had", "do", "does", "did", "will", "would", "could", "should",
		"may", "might", "can", "this", "that", "these", "those",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Analyze classifies the request. It is a pure synchronous computation.
func (a *RequestAnalyzer) Analyze(request string) models.RequestAnalysis {
	return models.RequestAnalysis{
		Intent:          a.classifyIntent(request),
		Complexity:      a.estimateComplexity(request),
		Scope:           a.determineScope(request),
		Keywords:        a.extractKeywords(request),
		TechnologyHints: a.extractTechnologyHints(request),
	}
}

func (a *RequestAnalyzer) classifyIntent(request string) models.Intent {
	lower := strings.ToLower(request)
	for _, bucket := range a.intentBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.intent
			}
		}
	}
	return models.IntentGeneral
}

func (a *RequestAnalyzer) estimateComplexity(request string) models.Complexity {
	words := len(strings.Fields(request))
	switch {
	case words < 10:
		return models.ComplexitySimple
	case words < 30:
		return models.ComplexityMedium
	default:
		return models.ComplexityComplex
	}
}

func (a *RequestAnalyzer) determineScope(request string) models.Scope {
	lower := strings.ToLower(request)
	for _, bucket := range a.scopeBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.scope
			}
		}
	}
	return models.ScopeComponent
}

func (a *RequestAnalyzer) extractKeywords(request string) []string {
	words := wordPattern.FindAllString(strings.ToLower(request), -1)
	keywords := make([]string, 0, len(words))
	seen := make(map[string]bool)

	for _, word := range words {
		if len(word) <= 2 {
			continue
		}
		if _, stop := a.stopWords[word]; stop {
			continue
		}
		if !seen[word] {
			seen[word] = true
			keywords = append(keywords, word)
		}
	}

	return keywords
}

func (a *RequestAnalyzer) extractTechnologyHints(request string) []string {
	lower := strings.ToLower(request)
	hints := make([]string, 0)

	for _, hint := range a.techHints {
		for _, kw := range hint.keywords {
			if strings.Contains(lower, kw) {
				hints = append(hints, hint.technology)
				break
			}
		}
	}

	return hints
}

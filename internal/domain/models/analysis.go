package models

// Intent classifies what the user is asking for.
type Intent string

const (
	IntentFeatureImplementation Intent = "feature_implementation"
	IntentBugFix                Intent = "bug_fix"
	IntentRefactoring           Intent = "refactoring"
	IntentSecurityUpdate        Intent = "security_update"
	IntentPerformance           Intent = "performance_optimization"
	IntentGeneral               Intent = "general_implementation"
)

// Complexity is a rough size estimate derived from the request length.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// Scope describes how much of the codebase the request touches.
type Scope string

const (
	ScopeComponent Scope = "component"
	ScopeModule    Scope = "module"
	ScopeSystem    Scope = "system"
)

// RequestAnalysis is the classification of a raw user request. It is
// created once per request and read-only afterwards.
type RequestAnalysis struct {
	Intent          Intent     `json:"intent"`
	Complexity      Complexity `json:"complexity"`
	Scope           Scope      `json:"scope"`
	Keywords        []string   `json:"keywords"`
	TechnologyHints []string   `json:"technology_hints"`
}

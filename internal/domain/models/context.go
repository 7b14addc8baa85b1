package models

// TechnologyStack tallies how often each language, framework and library
// shows up across the ranked chunks.
type TechnologyStack struct {
	Languages  map[string]int `json:"languages"`
	Frameworks map[string]int `json:"frameworks"`
	Libraries  map[string]int `json:"libraries"`
}

// CodingConventions holds per-style counters for identifiers captured from
// declaration patterns in the ranked chunks.
type CodingConventions struct {
	Naming map[string]int `json:"naming"`
}

// Dependencies separates manifest-declared dependencies from the ones
// discovered by scanning import statements in code.
type Dependencies struct {
	Runtime     []string `json:"runtime"`
	Development []string `json:"development"`
	External    []string `json:"external"`
}

// ProjectContext is the aggregated view of a project built from the ranked
// chunks and the raw manifests. It is built once per run and read-only
// afterwards; absent signal yields empty collections, never nil maps.
type ProjectContext struct {
	TechnologyStack        TechnologyStack   `json:"technology_stack"`
	ArchitecturalPatterns  []string          `json:"architectural_patterns"`
	CodingConventions      CodingConventions `json:"coding_conventions"`
	SimilarImplementations []CodeChunk       `json:"similar_implementations"`
	BestPractices          []string          `json:"best_practices"`
	Dependencies           Dependencies      `json:"dependencies"`
}

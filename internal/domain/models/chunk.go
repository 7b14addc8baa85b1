package models

// ChunkRecord is a raw candidate produced by the indexer. The Embedding
// field is optional; when the embedder capability is not configured the
// ranker scores candidates lexically and never reads it.
type ChunkRecord struct {
	Filename  string                 `json:"filename"`
	Code      string                 `json:"code"`
	Embedding []float32              `json:"embedding,omitempty"`
	Language  string                 `json:"language"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Location  string                 `json:"location,omitempty"`
}

// CodeChunk is a scored, located fragment of source text returned by the
// ranker. Chunks are created fresh per ranking call and never mutated.
type CodeChunk struct {
	Filename string                 `json:"filename"`
	Code     string                 `json:"code"`
	Language string                 `json:"language"`
	Score    float64                `json:"score"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Location string                 `json:"location,omitempty"`
}

// IndexResult reports the outcome of indexing a repository.
type IndexResult struct {
	Success             bool   `json:"success"`
	IndexedFiles        int    `json:"indexed_files"`
	EmbeddingsGenerated int    `json:"embeddings_generated"`
	Error               string `json:"error,omitempty"`
}

// IndexSnapshot holds everything the pipeline consumes from an indexing
// run: the candidate chunks and the raw project manifests found in the
// repository (e.g. package.json contents keyed by filename).
type IndexSnapshot struct {
	Chunks    []ChunkRecord     `json:"chunks"`
	Manifests map[string]string `json:"manifests"`
}

package indexer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
	"github.com/Tomas-vilte/MateTicket/internal/domain/ports"
	"github.com/Tomas-vilte/MateTicket/internal/logger"
)

const (
	maxFileSize   = 200 * 1024
	chunkLineSpan = 120
)

// languageByExtension maps source file extensions to the language labels
// used across the pipeline. Files outside this map are not indexed.
var languageByExtension = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".java":  "java",
	".kt":    "kotlin",
	".rb":    "ruby",
	".rs":    "rust",
	".dart":  "dart",
	".swift": "swift",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".php":   "php",
	".vue":   "vue",
	".html":  "html",
	".css":   "css",
}

// manifestFiles are the project manifests collected for dependency
// analysis, keyed by their basename.
var manifestFiles = map[string]bool{
	"package.json": true,
}

var _ ports.RepositoryIndexer = (*GitIndexer)(nil)

// GitIndexer clones a repository with the git CLI into a temporary
// directory, walks its source files and produces chunk candidates plus the
// raw project manifests. When an embedder is configured each chunk also
// gets an embedding vector, enabling the ranker's semantic mode.
type GitIndexer struct {
	embedder ports.Embedder
}

type GitIndexerOption func(*GitIndexer)

// WithEmbedder makes the indexer attach embedding vectors to every chunk.
func WithEmbedder(e ports.Embedder) GitIndexerOption {
	return func(g *GitIndexer) {
		g.embedder = e
	}
}

func NewGitIndexer(opts ...GitIndexerOption) *GitIndexer {
	g := &GitIndexer{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Index implements ports.RepositoryIndexer. Failures are reported inside
// the IndexResult: indexing is the pipeline's single fatal stage and the
// orchestrator turns an unsuccessful result into the run's error envelope.
func (g *GitIndexer) Index(ctx context.Context, repoURL, token string) (*models.IndexResult, *models.IndexSnapshot, error) {
	if repoURL == "" {
		return &models.IndexResult{Success: false, Error: "repository URL is required"}, nil, nil
	}

	workDir, err := os.MkdirTemp("", "mateticket-index-")
	if err != nil {
		return &models.IndexResult{Success: false, Error: fmt.Sprintf("failed to create work directory: %v", err)}, nil, nil
	}
	defer func() {
		if rmErr := os.RemoveAll(workDir); rmErr != nil {
			logger.Warn(ctx, "failed to clean up index work directory", "dir", workDir, "error", rmErr)
		}
	}()

	if err := g.clone(ctx, repoURL, token, workDir); err != nil {
		return &models.IndexResult{Success: false, Error: fmt.Sprintf("failed to clone repository: %v", err)}, nil, nil
	}

	snapshot, indexedFiles, err := g.walkRepository(workDir)
	if err != nil {
		return &models.IndexResult{Success: false, Error: fmt.Sprintf("failed to read repository files: %v", err)}, nil, nil
	}

	embeddings := 0
	if g.embedder != nil {
		embeddings = g.embedChunks(ctx, snapshot.Chunks)
	}

	return &models.IndexResult{
		Success:             true,
		IndexedFiles:        indexedFiles,
		EmbeddingsGenerated: embeddings,
	}, snapshot, nil
}

func (g *GitIndexer) clone(ctx context.Context, repoURL, token, dest string) error {
	cloneURL := repoURL
	if token != "" && strings.HasPrefix(repoURL, "https://") {
		cloneURL = "https://" + token + "@" + strings.TrimPrefix(repoURL, "https://")
	}

	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", cloneURL, dest)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		// The token must never leak into error messages.
		detail = strings.ReplaceAll(detail, cloneURL, repoURL)
		if detail == "" {
			return err
		}
		return fmt.Errorf("%v: %s", err, detail)
	}
	return nil
}

func (g *GitIndexer) walkRepository(root string) (*models.IndexSnapshot, int, error) {
	snapshot := &models.IndexSnapshot{
		Chunks:    make([]models.ChunkRecord, 0),
		Manifests: make(map[string]string),
	}
	indexedFiles := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == "node_modules" || d.Name() == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		relPath = filepath.ToSlash(relPath)

		if manifestFiles[d.Name()] {
			if _, exists := snapshot.Manifests[d.Name()]; !exists {
				content, readErr := os.ReadFile(path)
				if readErr == nil {
					snapshot.Manifests[d.Name()] = string(content)
				}
			}
			return nil
		}

		language, ok := languageByExtension[strings.ToLower(filepath.Ext(d.Name()))]
		if !ok {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil || info.Size() > maxFileSize {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}

		snapshot.Chunks = append(snapshot.Chunks, chunkFile(relPath, string(content), language)...)
		indexedFiles++
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return snapshot, indexedFiles, nil
}

// chunkFile splits a file into fixed line spans so no single candidate
// dominates ranking by sheer size.
func chunkFile(filename, content, language string) []models.ChunkRecord {
	lines := strings.Split(content, "\n")
	chunks := make([]models.ChunkRecord, 0, len(lines)/chunkLineSpan+1)

	for start := 0; start < len(lines); start += chunkLineSpan {
		end := start + chunkLineSpan
		if end > len(lines) {
			end = len(lines)
		}
		code := strings.Join(lines[start:end], "\n")
		if strings.TrimSpace(code) == "" {
			continue
		}

		chunks = append(chunks, models.ChunkRecord{
			Filename: filename,
			Code:     code,
			Language: language,
			Location: fmt.Sprintf("%d-%d", start+1, end),
			Metadata: map[string]interface{}{
				"has_functions": hasFunctionSignals(code),
				"has_imports":   hasImportSignals(code),
			},
		})
	}

	return chunks
}

func hasFunctionSignals(code string) bool {
	return strings.Contains(code, "func ") ||
		strings.Contains(code, "def ") ||
		strings.Contains(code, "function")
}

func hasImportSignals(code string) bool {
	return strings.Contains(code, "import") || strings.Contains(code, "require(")
}

// embedChunks attaches embedding vectors in place and returns how many
// were generated. Individual embedding failures skip the chunk: it simply
// stays lexical-only.
func (g *GitIndexer) embedChunks(ctx context.Context, chunks []models.ChunkRecord) int {
	generated := 0
	for i := range chunks {
		vector, err := g.embedder.EmbedText(ctx, chunks[i].Code)
		if err != nil {
			logger.Warn(ctx, "failed to embed chunk", "file", chunks[i].Filename, "error", err)
			continue
		}
		chunks[i].Embedding = vector
		generated++
	}
	return generated
}

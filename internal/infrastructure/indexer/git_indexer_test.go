package indexer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkFile(t *testing.T) {
	t.Run("splits long files into fixed line spans", func(t *testing.T) {
		lines := make([]string, 250)
		for i := range lines {
			lines[i] = "line content"
		}
		content := strings.Join(lines, "\n")

		chunks := chunkFile("src/big.py", content, "python")

		require.Len(t, chunks, 3)
		assert.Equal(t, "1-120", chunks[0].Location)
		assert.Equal(t, "121-240", chunks[1].Location)
		assert.Equal(t, "241-250", chunks[2].Location)
		for _, chunk := range chunks {
			assert.Equal(t, "src/big.py", chunk.Filename)
			assert.Equal(t, "python", chunk.Language)
		}
	})

	t.Run("short file yields one chunk", func(t *testing.T) {
		chunks := chunkFile("main.go", "package main\n\nfunc main() {}", "go")
		require.Len(t, chunks, 1)
		assert.Equal(t, "1-3", chunks[0].Location)
	})

	t.Run("blank spans are skipped", func(t *testing.T) {
		chunks := chunkFile("empty.go", "   \n\n  ", "go")
		assert.Empty(t, chunks)
	})

	t.Run("metadata reflects code signals", func(t *testing.T) {
		chunks := chunkFile("app.py", "import os\n\ndef main():\n    pass", "python")
		require.Len(t, chunks, 1)
		assert.Equal(t, true, chunks[0].Metadata["has_functions"])
		assert.Equal(t, true, chunks[0].Metadata["has_imports"])

		chunks = chunkFile("data.go", "var answer = 42", "go")
		require.Len(t, chunks, 1)
		assert.Equal(t, false, chunks[0].Metadata["has_functions"])
		assert.Equal(t, false, chunks[0].Metadata["has_imports"])
	})
}

func TestGitIndexer_WalkRepository(t *testing.T) {
	writeFile := func(t *testing.T, root, rel, content string) {
		t.Helper()
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	t.Run("collects source files and manifests, skips noise", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "main.go", "package main\n\nfunc main() {}")
		writeFile(t, root, "web/app.js", "const app = init()")
		writeFile(t, root, "package.json", `{"dependencies": {"react": "^18.0.0"}}`)
		writeFile(t, root, "README.md", "# readme")
		writeFile(t, root, "node_modules/react/index.js", "module.exports = {}")
		writeFile(t, root, ".git/config", "[core]")

		g := NewGitIndexer()
		snapshot, indexedFiles, err := g.walkRepository(root)

		require.NoError(t, err)
		assert.Equal(t, 2, indexedFiles)

		filenames := make([]string, 0, len(snapshot.Chunks))
		for _, chunk := range snapshot.Chunks {
			filenames = append(filenames, chunk.Filename)
		}
		assert.Contains(t, filenames, "main.go")
		assert.Contains(t, filenames, "web/app.js")
		assert.NotContains(t, filenames, "README.md")
		assert.NotContains(t, filenames, "node_modules/react/index.js")

		require.Contains(t, snapshot.Manifests, "package.json")
		assert.Contains(t, snapshot.Manifests["package.json"], "react")
	})

	t.Run("oversized files are skipped", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "huge.go", strings.Repeat("x", maxFileSize+1))
		writeFile(t, root, "small.go", "package small")

		g := NewGitIndexer()
		snapshot, indexedFiles, err := g.walkRepository(root)

		require.NoError(t, err)
		assert.Equal(t, 1, indexedFiles)
		require.Len(t, snapshot.Chunks, 1)
		assert.Equal(t, "small.go", snapshot.Chunks[0].Filename)
	})
}

func TestGitIndexer_Index(t *testing.T) {
	t.Run("empty repository URL fails inside the result", func(t *testing.T) {
		g := NewGitIndexer()
		result, snapshot, err := g.Index(context.Background(), "", "")

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
		assert.Nil(t, snapshot)
	})

	t.Run("unreachable repository fails inside the result", func(t *testing.T) {
		g := NewGitIndexer()
		result, _, err := g.Index(context.Background(), "file:///nonexistent/repo.git", "")

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "failed to clone repository")
	})
}

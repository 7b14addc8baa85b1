package services

import (
	"testing"

	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectContextBuilder_TechnologyStack(t *testing.T) {
	builder := NewProjectContextBuilder()

	t.Run("tallies languages frameworks and libraries", func(t *testing.T) {
		chunks := []models.CodeChunk{
			{Filename: "App.jsx", Language: "javascript", Code: "import React from 'react'; axios.get('/api')"},
			{Filename: "util.js", Language: "javascript", Code: "const helper = lodash.pick(obj)"},
			{Filename: "views.py", Language: "python", Code: "from django.http import JsonResponse"},
		}

		pc := builder.Build(chunks, nil)

		assert.Equal(t, 2, pc.TechnologyStack.Languages["javascript"])
		assert.Equal(t, 1, pc.TechnologyStack.Languages["python"])
		assert.Equal(t, 1, pc.TechnologyStack.Frameworks["react"])
		assert.Equal(t, 1, pc.TechnologyStack.Frameworks["django"])
		assert.Equal(t, 1, pc.TechnologyStack.Libraries["axios"])
		assert.Equal(t, 1, pc.TechnologyStack.Libraries["lodash"])
	})

	t.Run("empty input yields empty maps", func(t *testing.T) {
		pc := builder.Build(nil, nil)
		assert.Empty(t, pc.TechnologyStack.Languages)
		assert.Empty(t, pc.TechnologyStack.Frameworks)
		assert.Empty(t, pc.TechnologyStack.Libraries)
	})
}

func TestProjectContextBuilder_ArchitecturalPatterns(t *testing.T) {
	builder := NewProjectContextBuilder()

	t.Run("MVC needs model view and controller", func(t *testing.T) {
		chunks := []models.CodeChunk{
			{Filename: "app/models/user.rb"},
			{Filename: "app/views/user.erb"},
			{Filename: "app/controllers/users_controller.rb"},
		}
		pc := builder.Build(chunks, nil)
		assert.Contains(t, pc.ArchitecturalPatterns, "MVC")
	})

	t.Run("model alone is not MVC", func(t *testing.T) {
		chunks := []models.CodeChunk{{Filename: "app/models/user.rb"}}
		pc := builder.Build(chunks, nil)
		assert.NotContains(t, pc.ArchitecturalPatterns, "MVC")
	})

	t.Run("independent heuristics can coexist", func(t *testing.T) {
		chunks := []models.CodeChunk{
			{Filename: "src/components/Button.tsx"},
			{Filename: "src/services/user_service.ts"},
			{Filename: "src/repository/user_repository.ts"},
		}
		pc := builder.Build(chunks, nil)
		assert.Contains(t, pc.ArchitecturalPatterns, "Component-based")
		assert.Contains(t, pc.ArchitecturalPatterns, "Service Layer")
		assert.Contains(t, pc.ArchitecturalPatterns, "Repository Pattern")
	})

	t.Run("clean architecture needs domain and application", func(t *testing.T) {
		chunks := []models.CodeChunk{
			{Filename: "internal/domain/user.go"},
			{Filename: "internal/application/user_usecase.go"},
		}
		pc := builder.Build(chunks, nil)
		assert.Contains(t, pc.ArchitecturalPatterns, "Clean Architecture")
	})
}

func TestProjectContextBuilder_CodingConventions(t *testing.T) {
	builder := NewProjectContextBuilder()

	chunks := []models.CodeChunk{
		{Code: "def fetch_user(id):\n    pass"},
		{Code: "function renderPage() {}"},
		{Code: "const pageTitle = 'Home'"},
	}

	pc := builder.Build(chunks, nil)

	assert.Equal(t, 1, pc.CodingConventions.Naming["snake_case"])
	assert.Equal(t, 2, pc.CodingConventions.Naming["camelCase"])
}

func TestProjectContextBuilder_SimilarImplementations(t *testing.T) {
	builder := NewProjectContextBuilder()

	t.Run("keeps the best chunk per language and basename", func(t *testing.T) {
		chunks := []models.CodeChunk{
			{Filename: "a/handler.go", Language: "go", Score: 0.8},
			{Filename: "b/handler.go", Language: "go", Score: 0.9},
			{Filename: "c/router.go", Language: "go", Score: 0.75},
			{Filename: "d/low.go", Language: "go", Score: 0.6},
		}

		pc := builder.Build(chunks, nil)

		require.Len(t, pc.SimilarImplementations, 2)
		assert.Equal(t, "b/handler.go", pc.SimilarImplementations[0].Filename)
		assert.Equal(t, "c/router.go", pc.SimilarImplementations[1].Filename)
	})

	t.Run("caps the list at five groups", func(t *testing.T) {
		chunks := make([]models.CodeChunk, 0, 7)
		names := []string{"a.go", "b.go", "c.go", "d.go", "e.go", "f.go", "g.go"}
		for _, name := range names {
			chunks = append(chunks, models.CodeChunk{Filename: name, Language: "go", Score: 0.9})
		}

		pc := builder.Build(chunks, nil)
		assert.Len(t, pc.SimilarImplementations, 5)
	})
}

func TestProjectContextBuilder_BestPractices(t *testing.T) {
	builder := NewProjectContextBuilder()

	chunks := []models.CodeChunk{
		{Code: "try:\n    run()\nexcept ValueError:\n    pass"},
		{Code: "def add(a: int, b: int) -> int:\n    \"\"\"Adds two numbers.\"\"\"\n    return a + b"},
		{Code: "describe('spec', () => {})"},
	}

	pc := builder.Build(chunks, nil)

	assert.Contains(t, pc.BestPractices, "Error Handling")
	assert.Contains(t, pc.BestPractices, "Type Annotations")
	assert.Contains(t, pc.BestPractices, "Code Documentation")
	assert.Contains(t, pc.BestPractices, "Testing")
}

func TestProjectContextBuilder_Dependencies(t *testing.T) {
	builder := NewProjectContextBuilder()

	t.Run("manifest dependencies are split by section", func(t *testing.T) {
		manifests := map[string]string{
			"package.json": `{
				"dependencies": {"react": "^18.0.0", "axios": "^1.0.0"},
				"devDependencies": {"jest": "^29.0.0"}
			}`,
		}

		pc := builder.Build(nil, manifests)

		assert.Equal(t, []string{"axios", "react"}, pc.Dependencies.Runtime)
		assert.Equal(t, []string{"jest"}, pc.Dependencies.Development)
	})

	t.Run("malformed manifest leaves dependencies empty", func(t *testing.T) {
		pc := builder.Build(nil, map[string]string{"package.json": "{not json"})
		assert.Empty(t, pc.Dependencies.Runtime)
		assert.Empty(t, pc.Dependencies.Development)
	})

	t.Run("imports are collected from code", func(t *testing.T) {
		chunks := []models.CodeChunk{
			{Code: "import axios from 'axios'\nconst moment = require('moment')"},
			{Code: "from django import forms"},
		}

		pc := builder.Build(chunks, nil)

		assert.Contains(t, pc.Dependencies.External, "axios")
		assert.Contains(t, pc.Dependencies.External, "moment")
		assert.Contains(t, pc.Dependencies.External, "django")
	})
}

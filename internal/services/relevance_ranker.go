package services

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
	"github.com/Tomas-vilte/MateTicket/internal/domain/ports"
)

const (
	// DefaultTopK caps how many chunks a ranking call may return.
	DefaultTopK = 15

	// minRelevanceScore is the threshold below which candidates are dropped.
	// Every chunk surviving a ranking call has a score strictly above it.
	minRelevanceScore = 0.3
)

var queryTermPattern = regexp.MustCompile(`[a-z0-9_]+`)

// RelevanceRanker scores candidate chunks against a query in one of two
// mutually exclusive modes: semantic (cosine similarity over embeddings)
// when an embedder is configured, lexical term overlap otherwise. The mode
// is a configuration decision made once per call, never an error fallback.
type RelevanceRanker struct {
	embedder ports.Embedder
}

type RankerOption func(*RelevanceRanker)

// WithEmbedder enables the semantic mode.
func WithEmbedder(e ports.Embedder) RankerOption {
	return func(r *RelevanceRanker) {
		r.embedder = e
	}
}

func NewRelevanceRanker(opts ...RankerOption) *RelevanceRanker {
	r := &RelevanceRanker{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank scores the candidates, sorts them descending (stable, so input
// order breaks ties), drops everything at or below the relevance threshold
// and truncates to topK (DefaultTopK when topK <= 0). The lexical path
// never fails; the semantic path surfaces embedding errors to the caller
// as-is since a failing embedder is a configuration bug, not a signal to
// silently degrade.
func (r *RelevanceRanker) Rank(ctx context.Context, query string, candidates []models.ChunkRecord, topK int) ([]models.CodeChunk, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	type scored struct {
		score float64
		chunk models.ChunkRecord
	}

	scoredChunks := make([]scored, 0, len(candidates))

	if r.embedder != nil {
		queryVec, err := r.embedder.EmbedText(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to embed query: %w", err)
		}
		for _, candidate := range candidates {
			if len(candidate.Embedding) == 0 {
				continue
			}
			scoredChunks = append(scoredChunks, scored{
				score: cosineSimilarity(queryVec, candidate.Embedding),
				chunk: candidate,
			})
		}
	} else {
		terms := queryTerms(query)
		for _, candidate := range candidates {
			scoredChunks = append(scoredChunks, scored{
				score: lexicalScore(terms, candidate),
				chunk: candidate,
			})
		}
	}

	sort.SliceStable(scoredChunks, func(i, j int) bool {
		return scoredChunks[i].score > scoredChunks[j].score
	})

	results := make([]models.CodeChunk, 0, topK)
	for _, sc := range scoredChunks {
		if sc.score <= minRelevanceScore {
			continue
		}
		if len(results) == topK {
			break
		}
		results = append(results, models.CodeChunk{
			Filename: sc.chunk.Filename,
			Code:     sc.chunk.Code,
			Language: sc.chunk.Language,
			Score:    sc.score,
			Metadata: sc.chunk.Metadata,
			Location: sc.chunk.Location,
		})
	}

	return results, nil
}

// queryTerms extracts the set of alphanumeric/underscore terms from the
// lowercased query.
func queryTerms(query string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, t := range queryTermPattern.FindAllString(strings.ToLower(query), -1) {
		terms[t] = struct{}{}
	}
	return terms
}

// lexicalScore combines term overlap (70%) with a length signal (30%):
// longer fragments carry more context, capped at 10k characters.
func lexicalScore(terms map[string]struct{}, candidate models.ChunkRecord) float64 {
	text := strings.ToLower(candidate.Filename + "\n" + candidate.Code)

	matches := 0
	for term := range terms {
		if strings.Contains(text, term) {
			matches++
		}
	}

	termCount := len(terms)
	if termCount == 0 {
		termCount = 1
	}
	overlap := float64(matches) / float64(termCount)
	lengthScore := math.Min(float64(len(text))/10000.0, 1.0)

	return 0.7*overlap + 0.3*lengthScore
}

// cosineSimilarity is the dot product over the product of the L2 norms,
// defined as 0 when either norm is 0.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

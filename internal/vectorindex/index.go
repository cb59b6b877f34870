// Package vectorindex keeps the searchable snapshot of prior projects used to flag
// near-duplicate submissions.
package vectorindex

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/logger"
	"project-intake-backend/internal/vectorindex/embedding"
)

// DistanceScale maps squared L2 distance onto a 0-100 similarity score. It is calibrated
// to all-MiniLM-L6-v2, whose unit vectors put near-duplicates well under 0.5 and unrelated
// text around 1.5 or more. Re-derive it if the embedding model changes.
const DistanceScale = 1.5

// ProjectText is one project to index
type ProjectText struct {
	ID       int
	Title    string
	Synopsis string
}

// SimilarityMatch is one search hit
type SimilarityMatch struct {
	ProjectID       int     `json:"project_id"`
	Title           string  `json:"title"`
	Synopsis        string  `json:"synopsis"`
	Distance        float32 `json:"distance"`
	SimilarityScore float64 `json:"similarity_score"`
}

// entry is the metadata row aligned with one vector
type entry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Synopsis string `json:"synopsis"`
}

// snapshot is immutable once published
type snapshot struct {
	dim     int
	vectors [][]float32
	entries []entry
}

// Index is a flat exact-search index over project embeddings. Searches read the current
// snapshot without locking; Build and Load publish a new snapshot with a single pointer swap.
type Index struct {
	dir      string
	embedder embedding.Embedder
	current  atomic.Pointer[snapshot]
	mu       sync.Mutex
	log      *logger.Logger
}

// New creates an empty index persisting under dir. Nothing is read until Load.
func New(dir string, embedder embedding.Embedder) *Index {
	return &Index{
		dir:      dir,
		embedder: embedder,
		log:      logger.WithComponent("vectorindex"),
	}
}

// ComposeText is the text embedded for a project, both at build and query time.
func ComposeText(title, synopsis string) string {
	return title + ": " + synopsis
}

// Ready reports whether a snapshot has been built or loaded.
func (ix *Index) Ready() bool {
	return ix.current.Load() != nil
}

// Len returns the number of indexed projects, zero when not ready.
func (ix *Index) Len() int {
	snap := ix.current.Load()
	if snap == nil {
		return 0
	}
	return len(snap.entries)
}

// Build embeds every project, persists the artifacts, and swaps the new snapshot in.
// On any error the previously published snapshot stays in place.
func (ix *Index) Build(ctx context.Context, projects []ProjectText) error {
	if len(projects) == 0 {
		OperationsTotal.WithLabelValues("build", "error").Inc()
		return apperrors.ErrEmptyIndexInput
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	start := time.Now()
	snap, err := ix.buildSnapshot(ctx, projects)
	if err == nil {
		err = writeArtifacts(ix.dir, snap)
	}
	if err != nil {
		OperationsTotal.WithLabelValues("build", "error").Inc()
		return err
	}

	ix.current.Store(snap)
	BuildDuration.Observe(time.Since(start).Seconds())
	OperationsTotal.WithLabelValues("build", "success").Inc()
	IndexSize.Set(float64(len(snap.entries)))

	ix.log.WithFields(map[string]interface{}{
		"projects": len(snap.entries),
		"model":    ix.embedder.Name(),
		"took_ms":  time.Since(start).Milliseconds(),
	}).Info("similarity index rebuilt")
	return nil
}

func (ix *Index) buildSnapshot(ctx context.Context, projects []ProjectText) (*snapshot, error) {
	texts := make([]string, len(projects))
	entries := make([]entry, len(projects))
	for i, p := range projects {
		texts[i] = ComposeText(p.Title, p.Synopsis)
		entries[i] = entry{ID: p.ID, Name: p.Title, Synopsis: p.Synopsis}
	}

	vectors, err := ix.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed projects: %w", err)
	}
	if len(vectors) != len(projects) {
		return nil, fmt.Errorf("embed projects: got %d vectors for %d projects", len(vectors), len(projects))
	}

	dim := ix.embedder.Dimension()
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("embed projects: vector %d has dimension %d, want %d", i, len(v), dim)
		}
	}

	return &snapshot{dim: dim, vectors: vectors, entries: entries}, nil
}

// Search returns up to k nearest projects by squared L2 distance, closest first.
// Equal distances are ordered by lower project ID.
func (ix *Index) Search(ctx context.Context, title, synopsis string, k int) ([]SimilarityMatch, error) {
	snap := ix.current.Load()
	if snap == nil {
		OperationsTotal.WithLabelValues("search", "not_ready").Inc()
		return nil, apperrors.ErrIndexNotReady
	}
	if k <= 0 || len(snap.entries) == 0 {
		return []SimilarityMatch{}, nil
	}

	start := time.Now()
	defer func() { SearchDuration.Observe(time.Since(start).Seconds()) }()

	vectors, err := ix.embedder.Embed(ctx, []string{ComposeText(title, synopsis)})
	if err != nil {
		OperationsTotal.WithLabelValues("search", "error").Inc()
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) != 1 || len(vectors[0]) != snap.dim {
		OperationsTotal.WithLabelValues("search", "error").Inc()
		return nil, fmt.Errorf("embed query: unexpected vector shape")
	}
	query := vectors[0]

	type scored struct {
		pos  int
		dist float32
	}
	hits := make([]scored, len(snap.vectors))
	for i, v := range snap.vectors {
		hits[i] = scored{pos: i, dist: squaredL2(query, v)}
	}
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].dist != hits[b].dist {
			return hits[a].dist < hits[b].dist
		}
		return snap.entries[hits[a].pos].ID < snap.entries[hits[b].pos].ID
	})

	if k > len(hits) {
		k = len(hits)
	}
	matches := make([]SimilarityMatch, k)
	for i := 0; i < k; i++ {
		e := snap.entries[hits[i].pos]
		matches[i] = SimilarityMatch{
			ProjectID:       e.ID,
			Title:           e.Name,
			Synopsis:        e.Synopsis,
			Distance:        hits[i].dist,
			SimilarityScore: Score(hits[i].dist),
		}
	}

	OperationsTotal.WithLabelValues("search", "success").Inc()
	return matches, nil
}

// Load restores the persisted snapshot. It returns false with no error when nothing
// has been persisted yet.
func (ix *Index) Load() (bool, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	snap, err := readArtifacts(ix.dir, ix.embedder.Dimension())
	if err != nil {
		OperationsTotal.WithLabelValues("load", "error").Inc()
		return false, err
	}
	if snap == nil {
		return false, nil
	}

	ix.current.Store(snap)
	OperationsTotal.WithLabelValues("load", "success").Inc()
	IndexSize.Set(float64(len(snap.entries)))
	ix.log.WithField("projects", len(snap.entries)).Info("similarity index loaded")
	return true, nil
}

// Score converts a squared L2 distance into a 0-100 similarity rounded to two decimals.
func Score(distance float32) float64 {
	s := (DistanceScale - float64(distance)) / DistanceScale * 100
	s = math.Max(0, math.Min(100, s))
	return math.Round(s*100) / 100
}

func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

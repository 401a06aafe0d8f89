package search

import (
	"context"
	"log"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	defaultLimit = 20
	maxLimit     = 50
)

type Result struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Subtitle string `json:"subtitle"`
}

// Source is one searchable collection. Database-backed entity types and the
// in-memory project list sit behind the same interface.
type Source interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]Result, error)
}

type Service struct {
	sources []Source
}

func NewService(sources ...Source) *Service {
	return &Service{sources: sources}
}

// Search fans out to every source, merges in source order, boosts exact
// title matches to the front, and truncates to limit. A failing source is
// logged and contributes nothing; the rest still answer.
func (s *Service) Search(ctx context.Context, query string, limit int) []Result {
	query = strings.TrimSpace(query)
	if query == "" || len(s.sources) == 0 {
		return []Result{}
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	perSource := (limit + len(s.sources) - 1) / len(s.sources)

	collected := make([][]Result, len(s.sources))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, source := range s.sources {
		group.Go(func() error {
			results, err := source.Search(groupCtx, query, perSource)
			if err != nil {
				log.Printf("search source=%s error: %v", source.Name(), err)
				return nil
			}
			collected[i] = results
			return nil
		})
	}
	_ = group.Wait()

	merged := make([]Result, 0, limit)
	for _, results := range collected {
		merged = append(merged, results...)
	}

	lowered := strings.ToLower(query)
	sort.SliceStable(merged, func(i, j int) bool {
		return exactMatch(merged[i], lowered) && !exactMatch(merged[j], lowered)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func exactMatch(result Result, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(result.Title), loweredQuery)
}

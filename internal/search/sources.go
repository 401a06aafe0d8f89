package search

import (
	"context"
	"fmt"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"
)

type ThesisSource struct {
	Store store.Store
}

func (s ThesisSource) Name() string { return "theses" }

func (s ThesisSource) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	theses, err := s.Store.SearchTheses(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(theses))
	for _, t := range theses {
		results = append(results, Result{
			ID:       t.ThesisID,
			Title:    t.Title,
			Type:     "thesis",
			Subtitle: fmt.Sprintf("%s · %d", t.Department, t.Year),
		})
	}
	return results, nil
}

type PublicationSource struct {
	Store store.Store
}

func (s PublicationSource) Name() string { return "publications" }

func (s PublicationSource) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	publications, err := s.Store.SearchPublications(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(publications))
	for _, p := range publications {
		results = append(results, Result{
			ID:       p.PublicationID,
			Title:    p.Title,
			Type:     "publication",
			Subtitle: fmt.Sprintf("%s · %d", p.Authors, p.Year),
		})
	}
	return results, nil
}

type DatasetSource struct {
	Store store.Store
}

func (s DatasetSource) Name() string { return "datasets" }

func (s DatasetSource) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	datasets, err := s.Store.SearchDatasets(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(datasets))
	for _, d := range datasets {
		results = append(results, Result{
			ID:       d.DatasetID,
			Title:    d.Title,
			Type:     "dataset",
			Subtitle: d.Format,
		})
	}
	return results, nil
}

type ModelSource struct {
	Store store.Store
}

func (s ModelSource) Name() string { return "models" }

func (s ModelSource) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	list, err := s.Store.SearchModels(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(list))
	for _, m := range list {
		results = append(results, Result{
			ID:       m.ModelID,
			Title:    m.Title,
			Type:     "model",
			Subtitle: m.Framework,
		})
	}
	return results, nil
}

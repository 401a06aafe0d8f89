package postgres

import (
	"context"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
)

// Search queries match published rows by substring over title, abstract or
// description, and keywords. Ordering is a popularity proxy: views for most
// entities, citation count for publications.

func (s *Store) SearchTheses(ctx context.Context, query string, limit int) ([]models.Thesis, error) {
	pattern := "%" + query + "%"
	rows, err := s.pool.Query(ctx, `
		SELECT `+thesisColumns+`
		FROM theses
		WHERE status = 'published'
		  AND (title ILIKE $1 OR abstract ILIKE $1
		       OR EXISTS (SELECT 1 FROM unnest(keywords) kw WHERE kw ILIKE $1))
		ORDER BY views DESC
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var theses []models.Thesis
	for rows.Next() {
		t, err := scanThesis(rows)
		if err != nil {
			return nil, err
		}
		theses = append(theses, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return theses, nil
}

func (s *Store) SearchPublications(ctx context.Context, query string, limit int) ([]models.Publication, error) {
	pattern := "%" + query + "%"
	rows, err := s.pool.Query(ctx, `
		SELECT `+publicationColumns+`
		FROM publications
		WHERE status = 'published'
		  AND (title ILIKE $1 OR abstract ILIKE $1
		       OR EXISTS (SELECT 1 FROM unnest(keywords) kw WHERE kw ILIKE $1))
		ORDER BY citations DESC
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var publications []models.Publication
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, err
		}
		publications = append(publications, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return publications, nil
}

func (s *Store) SearchDatasets(ctx context.Context, query string, limit int) ([]models.Dataset, error) {
	pattern := "%" + query + "%"
	rows, err := s.pool.Query(ctx, `
		SELECT `+datasetColumns+`
		FROM datasets
		WHERE status = 'published'
		  AND (title ILIKE $1 OR description ILIKE $1
		       OR EXISTS (SELECT 1 FROM unnest(keywords) kw WHERE kw ILIKE $1))
		ORDER BY views DESC
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []models.Dataset
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return datasets, nil
}

func (s *Store) SearchModels(ctx context.Context, query string, limit int) ([]models.Model, error) {
	pattern := "%" + query + "%"
	rows, err := s.pool.Query(ctx, `
		SELECT `+modelColumns+`
		FROM models
		WHERE status = 'published'
		  AND (title ILIKE $1 OR description ILIKE $1
		       OR EXISTS (SELECT 1 FROM unnest(keywords) kw WHERE kw ILIKE $1))
		ORDER BY views DESC
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Model
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

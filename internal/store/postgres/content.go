package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"

	"github.com/jackc/pgx/v5"
)

const thesisColumns = `thesis_id, title, abstract, author_id, COALESCE(supervisor_id::text, ''),
	COALESCE(department, ''), year, status, keywords, views, downloads, created_at, updated_at`

const publicationColumns = `publication_id, title, abstract, authors, COALESCE(venue, ''),
	year, status, keywords, citations, views, downloads, created_at, updated_at`

const datasetColumns = `dataset_id, title, description, owner_id, COALESCE(format, ''),
	size_bytes, status, keywords, views, downloads, created_at, updated_at`

const modelColumns = `model_id, title, description, owner_id, COALESCE(framework, ''),
	status, keywords, views, downloads, created_at, updated_at`

func scanThesis(row pgx.Row) (models.Thesis, error) {
	var t models.Thesis
	err := row.Scan(&t.ThesisID, &t.Title, &t.Abstract, &t.AuthorID, &t.SupervisorID,
		&t.Department, &t.Year, &t.Status, &t.Keywords, &t.Views, &t.Downloads,
		&t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func scanPublication(row pgx.Row) (models.Publication, error) {
	var p models.Publication
	err := row.Scan(&p.PublicationID, &p.Title, &p.Abstract, &p.Authors, &p.Venue,
		&p.Year, &p.Status, &p.Keywords, &p.Citations, &p.Views, &p.Downloads,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanDataset(row pgx.Row) (models.Dataset, error) {
	var d models.Dataset
	err := row.Scan(&d.DatasetID, &d.Title, &d.Description, &d.OwnerID, &d.Format,
		&d.SizeBytes, &d.Status, &d.Keywords, &d.Views, &d.Downloads,
		&d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func scanModel(row pgx.Row) (models.Model, error) {
	var m models.Model
	err := row.Scan(&m.ModelID, &m.Title, &m.Description, &m.OwnerID, &m.Framework,
		&m.Status, &m.Keywords, &m.Views, &m.Downloads, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (s *Store) ListTheses(ctx context.Context, status string, opts store.ListOptions) ([]models.Thesis, error) {
	query := `SELECT ` + thesisColumns + ` FROM theses`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"
	query = appendLimitOffset(query, &args, opts)

	rows, err := s.pool.Query(ctx, query, args...)
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

func (s *Store) GetThesis(ctx context.Context, thesisID string) (models.Thesis, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+thesisColumns+` FROM theses WHERE thesis_id = $1`, thesisID)
	t, err := scanThesis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Thesis{}, store.ErrContentNotFound
		}
		return models.Thesis{}, err
	}
	return t, nil
}

func (s *Store) ListThesesByAuthor(ctx context.Context, authorID string) ([]models.Thesis, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+thesisColumns+`
		FROM theses
		WHERE author_id = $1
		ORDER BY created_at DESC
	`, authorID)
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

func (s *Store) ListThesesBySupervisor(ctx context.Context, supervisorID, status string) ([]models.Thesis, error) {
	query := `SELECT ` + thesisColumns + ` FROM theses WHERE supervisor_id = $1`
	args := []interface{}{supervisorID}
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
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

func (s *Store) SetThesisStatus(ctx context.Context, thesisID, action string) error {
	target := ""
	switch action {
	case "submit":
		target = models.ContentPending
	case "publish":
		target = models.ContentPublished
	case "reject":
		target = models.ContentRejected
	default:
		return fmt.Errorf("unknown thesis action %q", action)
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var status string
	row := tx.QueryRow(ctx, `
		SELECT status
		FROM theses
		WHERE thesis_id = $1
		FOR UPDATE
	`, thesisID)
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = store.ErrContentNotFound
		}
		return err
	}
	if !store.ValidContentTransition(action, status) {
		err = fmt.Errorf("thesis %s: cannot %s from status %q", thesisID, action, status)
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE theses
		SET status = $1, updated_at = NOW()
		WHERE thesis_id = $2
	`, target, thesisID)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) ListPublications(ctx context.Context, status string, opts store.ListOptions) ([]models.Publication, error) {
	query := `SELECT ` + publicationColumns + ` FROM publications`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"
	query = appendLimitOffset(query, &args, opts)

	rows, err := s.pool.Query(ctx, query, args...)
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

func (s *Store) GetPublication(ctx context.Context, publicationID string) (models.Publication, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+publicationColumns+` FROM publications WHERE publication_id = $1`, publicationID)
	p, err := scanPublication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Publication{}, store.ErrContentNotFound
		}
		return models.Publication{}, err
	}
	return p, nil
}

func (s *Store) ListDatasets(ctx context.Context, status string, opts store.ListOptions) ([]models.Dataset, error) {
	query := `SELECT ` + datasetColumns + ` FROM datasets`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"
	query = appendLimitOffset(query, &args, opts)

	rows, err := s.pool.Query(ctx, query, args...)
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

func (s *Store) GetDataset(ctx context.Context, datasetID string) (models.Dataset, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+datasetColumns+` FROM datasets WHERE dataset_id = $1`, datasetID)
	d, err := scanDataset(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Dataset{}, store.ErrContentNotFound
		}
		return models.Dataset{}, err
	}
	return d, nil
}

func (s *Store) ListModels(ctx context.Context, status string, opts store.ListOptions) ([]models.Model, error) {
	query := `SELECT ` + modelColumns + ` FROM models`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"
	query = appendLimitOffset(query, &args, opts)

	rows, err := s.pool.Query(ctx, query, args...)
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

func (s *Store) GetModel(ctx context.Context, modelID string) (models.Model, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+modelColumns+` FROM models WHERE model_id = $1`, modelID)
	m, err := scanModel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Model{}, store.ErrContentNotFound
		}
		return models.Model{}, err
	}
	return m, nil
}

func (s *Store) PopularContent(ctx context.Context, limit int) ([]store.PopularItem, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.pool.Query(ctx, `
		SELECT content_type, content_id, title, views
		FROM (
			SELECT 'thesis' AS content_type, thesis_id AS content_id, title, views FROM theses WHERE status = 'published'
			UNION ALL
			SELECT 'publication', publication_id, title, views FROM publications WHERE status = 'published'
			UNION ALL
			SELECT 'dataset', dataset_id, title, views FROM datasets WHERE status = 'published'
			UNION ALL
			SELECT 'model', model_id, title, views FROM models WHERE status = 'published'
		) combined
		ORDER BY views DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []store.PopularItem
	for rows.Next() {
		var item store.PopularItem
		if err := rows.Scan(&item.ContentType, &item.ContentID, &item.Title, &item.Views); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func appendLimitOffset(query string, args *[]interface{}, opts store.ListOptions) string {
	if opts.Limit > 0 {
		*args = append(*args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(*args))
	}
	if opts.Offset > 0 {
		*args = append(*args, opts.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(*args))
	}
	return query
}

package postgres

import (
	"context"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) LogView(ctx context.Context, input store.LogEventInput) error {
	return s.logContentEvent(ctx, "view", "views", input)
}

func (s *Store) LogDownload(ctx context.Context, input store.LogEventInput) error {
	return s.logContentEvent(ctx, "download", "downloads", input)
}

// logContentEvent appends the audit row and bumps the counter in one
// transaction, so the counter always equals the number of audit rows.
func (s *Store) logContentEvent(ctx context.Context, kind, counterCol string, input store.LogEventInput) error {
	table, ok := store.LookupContentTable(input.ContentType)
	if !ok {
		return store.ErrUnknownContentType
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

	tag, err := tx.Exec(ctx, `
		UPDATE `+table.Table+`
		SET `+counterCol+` = `+counterCol+` + 1
		WHERE `+table.IDCol+` = $1
	`, input.ContentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = store.ErrContentNotFound
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO content_events (event_id, kind, content_type, content_id, user_id, ip_address, file_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.NewString(), kind, input.ContentType, input.ContentID, input.UserID, input.IPAddress, input.FileSize)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

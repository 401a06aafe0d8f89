package postgres

import (
	"context"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"

	"github.com/google/uuid"
)

func (s *Store) InsertAudit(ctx context.Context, audit models.AuditLog) error {
	if audit.AuditID == "" {
		audit.AuditID = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO audit_logs (audit_id, actor_id, action_type, target_id, detail)
		VALUES ($1, $2, $3, $4, $5)
	`, audit.AuditID, audit.ActorID, audit.ActionType, audit.TargetID, audit.Detail)
	return err
}

func (s *Store) ListAudit(ctx context.Context, actionType string, opts store.ListOptions) ([]models.AuditLog, error) {
	query := `
		SELECT audit_id, actor_id, action_type, target_id, COALESCE(detail, ''), created_at
		FROM audit_logs
	`
	args := []interface{}{}
	if actionType != "" {
		query += " WHERE action_type = $1"
		args = append(args, actionType)
	}
	query += " ORDER BY created_at DESC"
	query = appendLimitOffset(query, &args, opts)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.AuditLog
	for rows.Next() {
		var entry models.AuditLog
		if err := rows.Scan(&entry.AuditID, &entry.ActorID, &entry.ActionType,
			&entry.TargetID, &entry.Detail, &entry.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

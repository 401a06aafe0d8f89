package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/auth"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (s *Store) Register(ctx context.Context, input store.RegisterInput) (models.User, error) {
	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return models.User{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	userID := uuid.NewString()
	email := strings.ToLower(input.Email)
	_, err = tx.Exec(ctx, `
		INSERT INTO users (user_id, email, password_hash, full_name, role,
		                   student_id, department, specialization, is_approved)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), FALSE)
	`, userID, email, passwordHash, input.FullName, input.Role,
		input.StudentID, input.Department, input.Specialization)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, store.ErrEmailTaken
		}
		return models.User{}, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO registration_requests (request_id, user_id, status)
		VALUES ($1, $2, 'pending')
	`, uuid.NewString(), userID)
	if err != nil {
		return models.User{}, err
	}

	if err = insertOutboxTx(ctx, tx, "registration.received", map[string]string{
		"user_id":   userID,
		"email":     email,
		"full_name": input.FullName,
	}); err != nil {
		return models.User{}, err
	}

	if err = tx.Commit(ctx); err != nil {
		return models.User{}, err
	}

	return models.User{
		UserID:         userID,
		Email:          email,
		FullName:       input.FullName,
		Role:           input.Role,
		StudentID:      input.StudentID,
		Department:     input.Department,
		Specialization: input.Specialization,
		IsApproved:     false,
	}, nil
}

func (s *Store) ListPendingRequests(ctx context.Context) ([]models.RegistrationRequest, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT r.request_id, r.user_id, r.status, r.created_at,
		       u.email, u.full_name, u.role
		FROM registration_requests r
		JOIN users u ON u.user_id = r.user_id
		WHERE r.status = 'pending'
		ORDER BY r.created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.RegistrationRequest
	for rows.Next() {
		var req models.RegistrationRequest
		if err := rows.Scan(&req.RequestID, &req.UserID, &req.Status, &req.CreatedAt,
			&req.Email, &req.FullName, &req.Role); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *Store) ApproveRegistration(ctx context.Context, requestID, reviewerID string) error {
	return s.reviewRegistration(ctx, requestID, reviewerID, "approve", "")
}

func (s *Store) RejectRegistration(ctx context.Context, requestID, reviewerID, reason string) error {
	return s.reviewRegistration(ctx, requestID, reviewerID, "reject", reason)
}

func (s *Store) reviewRegistration(ctx context.Context, requestID, reviewerID, action, reason string) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var userID, status string
	row := tx.QueryRow(ctx, `
		SELECT user_id, status
		FROM registration_requests
		WHERE request_id = $1
		FOR UPDATE
	`, requestID)
	if err = row.Scan(&userID, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = store.ErrRequestNotFound
		}
		return err
	}
	if !store.ValidRegistrationTransition(action, status) {
		err = store.ErrRequestNotPending
		return err
	}

	var email, fullName string
	row = tx.QueryRow(ctx, `
		SELECT email, full_name
		FROM users
		WHERE user_id = $1
	`, userID)
	if err = row.Scan(&email, &fullName); err != nil {
		return err
	}

	if action == "approve" {
		_, err = tx.Exec(ctx, `
			UPDATE registration_requests
			SET status = 'approved', reviewed_by = $1, reviewed_at = NOW()
			WHERE request_id = $2
		`, reviewerID, requestID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			UPDATE users
			SET is_approved = TRUE, approved_at = NOW()
			WHERE user_id = $1
		`, userID)
		if err != nil {
			return err
		}
		err = insertOutboxTx(ctx, tx, "registration.approved", map[string]string{
			"user_id":   userID,
			"email":     email,
			"full_name": fullName,
		})
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE registration_requests
			SET status = 'rejected', reviewed_by = $1, reviewed_at = NOW(), rejection_reason = $2
			WHERE request_id = $3
		`, reviewerID, reason, requestID)
		if err != nil {
			return err
		}
		err = insertOutboxTx(ctx, tx, "registration.rejected", map[string]string{
			"user_id":          userID,
			"email":            email,
			"full_name":        fullName,
			"rejection_reason": reason,
		})
	}
	if err != nil {
		return err
	}

	if err = insertAuditTx(ctx, tx, reviewerID, "registration."+action, requestID, reason); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) ListUsers(ctx context.Context, role string, opts store.ListOptions) ([]models.User, error) {
	query := `
		SELECT user_id, email, full_name, role, COALESCE(student_id, ''),
		       COALESCE(department, ''), COALESCE(specialization, ''),
		       is_approved, approved_at, created_at
		FROM users
	`
	args := []interface{}{}
	if role != "" {
		query += " WHERE role = $1"
		args = append(args, role)
	}
	query += " ORDER BY created_at DESC"
	query = appendLimitOffset(query, &args, opts)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Email, &user.FullName, &user.Role,
			&user.StudentID, &user.Department, &user.Specialization,
			&user.IsApproved, &user.ApprovedAt, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	row := s.pool.QueryRow(ctx, `
		SELECT user_id, email, full_name, role, COALESCE(student_id, ''),
		       COALESCE(department, ''), COALESCE(specialization, ''),
		       is_approved, approved_at, created_at
		FROM users
		WHERE user_id = $1
	`, userID)
	err := row.Scan(&user.UserID, &user.Email, &user.FullName, &user.Role,
		&user.StudentID, &user.Department, &user.Specialization,
		&user.IsApproved, &user.ApprovedAt, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, store.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// SetUserApproved toggles login access without touching the registration
// request row, so the request's terminal status stays intact.
func (s *Store) SetUserApproved(ctx context.Context, actorID, userID string, approved bool) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, `
		UPDATE users
		SET is_approved = $1
		WHERE user_id = $2
	`, approved, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = store.ErrUserNotFound
		return err
	}

	action := "user.deactivate"
	if approved {
		action = "user.reactivate"
	}
	if err = insertAuditTx(ctx, tx, actorID, action, userID, ""); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertOutboxTx(ctx context.Context, tx pgx.Tx, eventType string, payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO outbox_events (event_id, type, payload)
		VALUES ($1, $2, $3)
	`, uuid.NewString(), eventType, body)
	return err
}

func insertAuditTx(ctx context.Context, tx pgx.Tx, actorID, actionType, targetID, detail string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO audit_logs (audit_id, actor_id, action_type, target_id, detail)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), actorID, actionType, targetID, detail)
	return err
}

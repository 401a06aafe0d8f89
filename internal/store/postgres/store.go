package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/auth"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool       *pgxpool.Pool
	sessionTTL time.Duration
}

func NewStore(pool *pgxpool.Pool, sessionTTL time.Duration) *Store {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &Store{pool: pool, sessionTTL: sessionTTL}
}

func (s *Store) Login(ctx context.Context, input store.LoginInput) (store.LoginResult, error) {
	var user models.User
	var passwordHash string
	row := s.pool.QueryRow(ctx, `
		SELECT user_id, email, full_name, role, COALESCE(student_id, ''),
		       COALESCE(department, ''), COALESCE(specialization, ''),
		       is_approved, approved_at, password_hash, created_at
		FROM users
		WHERE lower(email) = lower($1)
	`, input.Email)
	err := row.Scan(&user.UserID, &user.Email, &user.FullName, &user.Role,
		&user.StudentID, &user.Department, &user.Specialization,
		&user.IsApproved, &user.ApprovedAt, &passwordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.LoginResult{}, store.ErrInvalidCredentials
		}
		return store.LoginResult{}, err
	}

	if !auth.VerifyPassword(input.Password, passwordHash) {
		return store.LoginResult{}, store.ErrInvalidCredentials
	}
	if !user.IsApproved {
		return store.LoginResult{}, store.ErrUserNotApproved
	}

	session, err := s.CreateSession(ctx, user.UserID, time.Now().UTC().Add(s.sessionTTL))
	if err != nil {
		return store.LoginResult{}, err
	}
	return store.LoginResult{User: user, Session: session}, nil
}

func (s *Store) GetSession(ctx context.Context, token string) (models.Session, models.User, error) {
	var session models.Session
	var user models.User
	row := s.pool.QueryRow(ctx, `
		SELECT s.token, s.user_id, s.expires_at,
		       u.user_id, u.email, u.full_name, u.role, COALESCE(u.student_id, ''),
		       COALESCE(u.department, ''), COALESCE(u.specialization, ''),
		       u.is_approved, u.approved_at, u.created_at
		FROM sessions s
		JOIN users u ON u.user_id = s.user_id
		WHERE s.token = $1 AND s.expires_at > NOW()
	`, token)
	err := row.Scan(&session.Token, &session.UserID, &session.ExpiresAt,
		&user.UserID, &user.Email, &user.FullName, &user.Role, &user.StudentID,
		&user.Department, &user.Specialization, &user.IsApproved, &user.ApprovedAt,
		&user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Session{}, models.User{}, store.ErrSessionNotFound
		}
		return models.Session{}, models.User{}, err
	}
	return session, user, nil
}

func (s *Store) CreateSession(ctx context.Context, userID string, expiresAt time.Time) (models.Session, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return models.Session{}, err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`, token, userID, expiresAt)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{Token: token, UserID: userID, ExpiresAt: expiresAt}, nil
}

// DeleteSession is a no-op for tokens that were never issued.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM sessions
		WHERE token = $1
	`, token)
	return err
}

func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM sessions
		WHERE expires_at <= NOW()
	`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

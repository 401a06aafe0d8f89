package store

import (
	"context"
	"time"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User    models.User
	Session models.Session
}

type RegisterInput struct {
	Email          string
	Password       string
	FullName       string
	Role           string
	StudentID      string
	Department     string
	Specialization string
}

type LogEventInput struct {
	ContentType string
	ContentID   string
	UserID      *string
	IPAddress   string
	FileSize    *int64
}

type ListOptions struct {
	Limit  int
	Offset int
}

type PopularItem struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	Title       string `json:"title"`
	Views       int    `json:"views"`
}

type OutboxEvent struct {
	EventID   string
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

type Notification struct {
	NotificationID string
	Recipient      string
	Subject        string
	Status         string
	Attempts       int
}

type Store interface {
	// Auth.
	Login(ctx context.Context, input LoginInput) (LoginResult, error)
	GetSession(ctx context.Context, token string) (models.Session, models.User, error)
	CreateSession(ctx context.Context, userID string, expiresAt time.Time) (models.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// Registration.
	Register(ctx context.Context, input RegisterInput) (models.User, error)
	ListPendingRequests(ctx context.Context) ([]models.RegistrationRequest, error)
	ApproveRegistration(ctx context.Context, requestID, reviewerID string) error
	RejectRegistration(ctx context.Context, requestID, reviewerID, reason string) error

	// User management.
	ListUsers(ctx context.Context, role string, opts ListOptions) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	SetUserApproved(ctx context.Context, actorID, userID string, approved bool) error

	// Content catalog.
	ListTheses(ctx context.Context, status string, opts ListOptions) ([]models.Thesis, error)
	GetThesis(ctx context.Context, thesisID string) (models.Thesis, error)
	ListThesesByAuthor(ctx context.Context, authorID string) ([]models.Thesis, error)
	ListThesesBySupervisor(ctx context.Context, supervisorID, status string) ([]models.Thesis, error)
	SetThesisStatus(ctx context.Context, thesisID, action string) error
	ListPublications(ctx context.Context, status string, opts ListOptions) ([]models.Publication, error)
	GetPublication(ctx context.Context, publicationID string) (models.Publication, error)
	ListDatasets(ctx context.Context, status string, opts ListOptions) ([]models.Dataset, error)
	GetDataset(ctx context.Context, datasetID string) (models.Dataset, error)
	ListModels(ctx context.Context, status string, opts ListOptions) ([]models.Model, error)
	GetModel(ctx context.Context, modelID string) (models.Model, error)
	PopularContent(ctx context.Context, limit int) ([]PopularItem, error)

	// Counters.
	LogView(ctx context.Context, input LogEventInput) error
	LogDownload(ctx context.Context, input LogEventInput) error

	// Search, one entity type per call.
	SearchTheses(ctx context.Context, query string, limit int) ([]models.Thesis, error)
	SearchPublications(ctx context.Context, query string, limit int) ([]models.Publication, error)
	SearchDatasets(ctx context.Context, query string, limit int) ([]models.Dataset, error)
	SearchModels(ctx context.Context, query string, limit int) ([]models.Model, error)

	// Notification outbox.
	ListOutboxEvents(ctx context.Context, after time.Time, limit int) ([]OutboxEvent, error)
	GetLastOffset(ctx context.Context) (time.Time, error)
	UpdateOffset(ctx context.Context, last time.Time) error
	InsertNotification(ctx context.Context, notification Notification) error
	MarkNotificationSent(ctx context.Context, notificationID string) error
	MarkNotificationFailed(ctx context.Context, notificationID, reason string) error
	InsertDLQ(ctx context.Context, notificationID, reason string) error

	// Admin audit trail.
	InsertAudit(ctx context.Context, audit models.AuditLog) error
	ListAudit(ctx context.Context, actionType string, opts ListOptions) ([]models.AuditLog, error)
}

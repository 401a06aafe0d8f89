package models

import "time"

const (
	RoleStudent    = "student"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

const (
	ContentDraft     = "draft"
	ContentPending   = "pending"
	ContentPublished = "published"
	ContentRejected  = "rejected"
)

type User struct {
	UserID         string     `json:"user_id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Role           string     `json:"role"`
	StudentID      string     `json:"student_id,omitempty"`
	Department     string     `json:"department,omitempty"`
	Specialization string     `json:"specialization,omitempty"`
	IsApproved     bool       `json:"is_approved"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RegistrationRequest struct {
	RequestID       string     `json:"request_id"`
	UserID          string     `json:"user_id"`
	Status          string     `json:"status"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`

	// Filled by list queries for the admin review screen.
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

type Thesis struct {
	ThesisID     string    `json:"thesis_id"`
	Title        string    `json:"title"`
	Abstract     string    `json:"abstract"`
	AuthorID     string    `json:"author_id"`
	SupervisorID string    `json:"supervisor_id,omitempty"`
	Department   string    `json:"department,omitempty"`
	Year         int       `json:"year"`
	Status       string    `json:"status"`
	Keywords     []string  `json:"keywords"`
	Views        int       `json:"views"`
	Downloads    int       `json:"downloads"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Publication struct {
	PublicationID string    `json:"publication_id"`
	Title         string    `json:"title"`
	Abstract      string    `json:"abstract"`
	Authors       string    `json:"authors"`
	Venue         string    `json:"venue,omitempty"`
	Year          int       `json:"year"`
	Status        string    `json:"status"`
	Keywords      []string  `json:"keywords"`
	Citations     int       `json:"citations"`
	Views         int       `json:"views"`
	Downloads     int       `json:"downloads"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Dataset struct {
	DatasetID   string    `json:"dataset_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	Format      string    `json:"format,omitempty"`
	SizeBytes   int64     `json:"size_bytes"`
	Status      string    `json:"status"`
	Keywords    []string  `json:"keywords"`
	Views       int       `json:"views"`
	Downloads   int       `json:"downloads"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Model struct {
	ModelID     string    `json:"model_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	Framework   string    `json:"framework,omitempty"`
	Status      string    `json:"status"`
	Keywords    []string  `json:"keywords"`
	Views       int       `json:"views"`
	Downloads   int       `json:"downloads"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContentEvent is one append-only audit row behind the views/downloads
// counters. Kind is "view" or "download".
type ContentEvent struct {
	EventID     string    `json:"event_id"`
	Kind        string    `json:"kind"`
	ContentType string    `json:"content_type"`
	ContentID   string    `json:"content_id"`
	UserID      *string   `json:"user_id,omitempty"`
	IPAddress   string    `json:"ip_address"`
	FileSize    *int64    `json:"file_size,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuditLog struct {
	AuditID    string    `json:"audit_id"`
	ActorID    string    `json:"actor_id"`
	ActionType string    `json:"action_type"`
	TargetID   string    `json:"target_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

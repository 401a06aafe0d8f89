package httpapi

import (
	"context"
	"time"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"
)

// fakeStore implements store.Store with overridable hooks. Methods without
// a hook return zero values.
type fakeStore struct {
	loginFn       func(ctx context.Context, input store.LoginInput) (store.LoginResult, error)
	getSessionFn  func(ctx context.Context, token string) (models.Session, models.User, error)
	deleteFn      func(ctx context.Context, token string) error
	registerFn    func(ctx context.Context, input store.RegisterInput) (models.User, error)
	listPendingFn func(ctx context.Context) ([]models.RegistrationRequest, error)
	approveFn     func(ctx context.Context, requestID, reviewerID string) error
	rejectFn      func(ctx context.Context, requestID, reviewerID, reason string) error
	logViewFn     func(ctx context.Context, input store.LogEventInput) error
	logDownloadFn func(ctx context.Context, input store.LogEventInput) error
	getThesisFn   func(ctx context.Context, thesisID string) (models.Thesis, error)
	setThesisFn   func(ctx context.Context, thesisID, action string) error
	setApprovedFn func(ctx context.Context, actorID, userID string, approved bool) error
}

func (f *fakeStore) Login(ctx context.Context, input store.LoginInput) (store.LoginResult, error) {
	if f.loginFn == nil {
		return store.LoginResult{}, store.ErrInvalidCredentials
	}
	return f.loginFn(ctx, input)
}

func (f *fakeStore) GetSession(ctx context.Context, token string) (models.Session, models.User, error) {
	if f.getSessionFn == nil {
		return models.Session{}, models.User{}, store.ErrSessionNotFound
	}
	return f.getSessionFn(ctx, token)
}

func (f *fakeStore) CreateSession(ctx context.Context, userID string, expiresAt time.Time) (models.Session, error) {
	return models.Session{}, nil
}

func (f *fakeStore) DeleteSession(ctx context.Context, token string) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, token)
}

func (f *fakeStore) DeleteExpiredSessions(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeStore) Register(ctx context.Context, input store.RegisterInput) (models.User, error) {
	if f.registerFn == nil {
		return models.User{}, nil
	}
	return f.registerFn(ctx, input)
}

func (f *fakeStore) ListPendingRequests(ctx context.Context) ([]models.RegistrationRequest, error) {
	if f.listPendingFn == nil {
		return nil, nil
	}
	return f.listPendingFn(ctx)
}

func (f *fakeStore) ApproveRegistration(ctx context.Context, requestID, reviewerID string) error {
	if f.approveFn == nil {
		return nil
	}
	return f.approveFn(ctx, requestID, reviewerID)
}

func (f *fakeStore) RejectRegistration(ctx context.Context, requestID, reviewerID, reason string) error {
	if f.rejectFn == nil {
		return nil
	}
	return f.rejectFn(ctx, requestID, reviewerID, reason)
}

func (f *fakeStore) ListUsers(ctx context.Context, role string, opts store.ListOptions) ([]models.User, error) {
	return nil, nil
}

func (f *fakeStore) GetUser(ctx context.Context, userID string) (models.User, error) {
	return models.User{}, store.ErrUserNotFound
}

func (f *fakeStore) SetUserApproved(ctx context.Context, actorID, userID string, approved bool) error {
	if f.setApprovedFn == nil {
		return nil
	}
	return f.setApprovedFn(ctx, actorID, userID, approved)
}

func (f *fakeStore) ListTheses(ctx context.Context, status string, opts store.ListOptions) ([]models.Thesis, error) {
	return nil, nil
}

func (f *fakeStore) GetThesis(ctx context.Context, thesisID string) (models.Thesis, error) {
	if f.getThesisFn == nil {
		return models.Thesis{}, store.ErrContentNotFound
	}
	return f.getThesisFn(ctx, thesisID)
}

func (f *fakeStore) ListThesesByAuthor(ctx context.Context, authorID string) ([]models.Thesis, error) {
	return nil, nil
}

func (f *fakeStore) ListThesesBySupervisor(ctx context.Context, supervisorID, status string) ([]models.Thesis, error) {
	return nil, nil
}

func (f *fakeStore) SetThesisStatus(ctx context.Context, thesisID, action string) error {
	if f.setThesisFn == nil {
		return nil
	}
	return f.setThesisFn(ctx, thesisID, action)
}

func (f *fakeStore) ListPublications(ctx context.Context, status string, opts store.ListOptions) ([]models.Publication, error) {
	return nil, nil
}

func (f *fakeStore) GetPublication(ctx context.Context, publicationID string) (models.Publication, error) {
	return models.Publication{}, store.ErrContentNotFound
}

func (f *fakeStore) ListDatasets(ctx context.Context, status string, opts store.ListOptions) ([]models.Dataset, error) {
	return nil, nil
}

func (f *fakeStore) GetDataset(ctx context.Context, datasetID string) (models.Dataset, error) {
	return models.Dataset{}, store.ErrContentNotFound
}

func (f *fakeStore) ListModels(ctx context.Context, status string, opts store.ListOptions) ([]models.Model, error) {
	return nil, nil
}

func (f *fakeStore) GetModel(ctx context.Context, modelID string) (models.Model, error) {
	return models.Model{}, store.ErrContentNotFound
}

func (f *fakeStore) PopularContent(ctx context.Context, limit int) ([]store.PopularItem, error) {
	return nil, nil
}

func (f *fakeStore) LogView(ctx context.Context, input store.LogEventInput) error {
	if f.logViewFn == nil {
		return nil
	}
	return f.logViewFn(ctx, input)
}

func (f *fakeStore) LogDownload(ctx context.Context, input store.LogEventInput) error {
	if f.logDownloadFn == nil {
		return nil
	}
	return f.logDownloadFn(ctx, input)
}

func (f *fakeStore) SearchTheses(ctx context.Context, query string, limit int) ([]models.Thesis, error) {
	return nil, nil
}

func (f *fakeStore) SearchPublications(ctx context.Context, query string, limit int) ([]models.Publication, error) {
	return nil, nil
}

func (f *fakeStore) SearchDatasets(ctx context.Context, query string, limit int) ([]models.Dataset, error) {
	return nil, nil
}

func (f *fakeStore) SearchModels(ctx context.Context, query string, limit int) ([]models.Model, error) {
	return nil, nil
}

func (f *fakeStore) ListOutboxEvents(ctx context.Context, after time.Time, limit int) ([]store.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeStore) GetLastOffset(ctx context.Context) (time.Time, error) { return time.Time{}, nil }

func (f *fakeStore) UpdateOffset(ctx context.Context, last time.Time) error { return nil }

func (f *fakeStore) InsertNotification(ctx context.Context, notification store.Notification) error {
	return nil
}

func (f *fakeStore) MarkNotificationSent(ctx context.Context, notificationID string) error {
	return nil
}

func (f *fakeStore) MarkNotificationFailed(ctx context.Context, notificationID, reason string) error {
	return nil
}

func (f *fakeStore) InsertDLQ(ctx context.Context, notificationID, reason string) error { return nil }

func (f *fakeStore) InsertAudit(ctx context.Context, audit models.AuditLog) error { return nil }

func (f *fakeStore) ListAudit(ctx context.Context, actionType string, opts store.ListOptions) ([]models.AuditLog, error) {
	return nil, nil
}

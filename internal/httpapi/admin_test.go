package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/models"
	"github.com/sazid-zero/SUST-Research-Hub-sub001/internal/store"
)

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/registrations"},
		{http.MethodPost, "/api/admin/registrations/" + testUUID + "/approve"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodPost, "/api/admin/users/" + testUUID + "/deactivate"},
		{http.MethodGet, "/api/admin/audit"},
	}

	anonymous := &fakeStore{}
	for _, tt := range paths {
		resp := httptest.NewRecorder()
		testHandler(anonymous).ServeHTTP(resp, httptest.NewRequest(tt.method, tt.path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s anonymous: expected 401, got %d", tt.method, tt.path, resp.Code)
		}
	}

	student := sessionFake(models.User{UserID: testUUID, Role: models.RoleStudent, IsApproved: true})
	for _, tt := range paths {
		resp := httptest.NewRecorder()
		req := withSession(httptest.NewRequest(tt.method, tt.path, nil))
		testHandler(student).ServeHTTP(resp, req)
		if resp.Code != http.StatusForbidden {
			t.Fatalf("%s %s as student: expected 403, got %d", tt.method, tt.path, resp.Code)
		}
	}
}

func TestApproveRegistration(t *testing.T) {
	var approvedRequest, reviewer string
	st := sessionFake(models.User{UserID: otherTestUUID, Role: models.RoleAdmin, IsApproved: true})
	st.approveFn = func(ctx context.Context, requestID, reviewerID string) error {
		approvedRequest = requestID
		reviewer = reviewerID
		return nil
	}

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/admin/registrations/"+testUUID+"/approve", nil))
	resp := httptest.NewRecorder()
	testHandler(st).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if approvedRequest != testUUID || reviewer != otherTestUUID {
		t.Fatalf("unexpected approval args: request=%q reviewer=%q", approvedRequest, reviewer)
	}
}

func TestRejectRegistrationPassesReason(t *testing.T) {
	var gotReason string
	st := sessionFake(models.User{UserID: otherTestUUID, Role: models.RoleAdmin, IsApproved: true})
	st.rejectFn = func(ctx context.Context, requestID, reviewerID, reason string) error {
		gotReason = reason
		return nil
	}

	body, _ := json.Marshal(map[string]string{"reason": "missing student id"})
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/admin/registrations/"+testUUID+"/reject", bytes.NewReader(body)))
	resp := httptest.NewRecorder()
	testHandler(st).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotReason != "missing student id" {
		t.Fatalf("expected reason forwarded, got %q", gotReason)
	}
}

func TestReviewedRequestConflicts(t *testing.T) {
	st := sessionFake(models.User{UserID: otherTestUUID, Role: models.RoleAdmin, IsApproved: true})
	st.approveFn = func(ctx context.Context, requestID, reviewerID string) error {
		return store.ErrRequestNotPending
	}

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/admin/registrations/"+testUUID+"/approve", nil))
	resp := httptest.NewRecorder()
	testHandler(st).ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for already-reviewed request, got %d", resp.Code)
	}
}

func TestDeactivateUser(t *testing.T) {
	var gotApproved = true
	var gotUser string
	st := sessionFake(models.User{UserID: otherTestUUID, Role: models.RoleAdmin, IsApproved: true})
	st.setApprovedFn = func(ctx context.Context, actorID, userID string, approved bool) error {
		gotUser = userID
		gotApproved = approved
		return nil
	}

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/admin/users/"+testUUID+"/deactivate", nil))
	resp := httptest.NewRecorder()
	testHandler(st).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotUser != testUUID || gotApproved {
		t.Fatalf("expected deactivate of %s, got user=%q approved=%v", testUUID, gotUser, gotApproved)
	}
}

func TestThesisActionPermissions(t *testing.T) {
	thesis := models.Thesis{
		ThesisID:     testUUID,
		AuthorID:     otherTestUUID,
		SupervisorID: "33333333-3333-3333-3333-333333333333",
		Status:       models.ContentPending,
	}

	// A student who is not the author cannot submit; a supervisor who is
	// not assigned cannot publish.
	st := sessionFake(models.User{UserID: testUUID, Role: models.RoleSupervisor, IsApproved: true})
	st.getThesisFn = func(ctx context.Context, thesisID string) (models.Thesis, error) {
		return thesis, nil
	}

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/theses/"+testUUID+"/actions/publish", nil))
	resp := httptest.NewRecorder()
	testHandler(st).ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("unassigned supervisor publish: expected 403, got %d", resp.Code)
	}

	assigned := sessionFake(models.User{UserID: thesis.SupervisorID, Role: models.RoleSupervisor, IsApproved: true})
	assigned.getThesisFn = st.getThesisFn
	var action string
	assigned.setThesisFn = func(ctx context.Context, thesisID, a string) error {
		action = a
		return nil
	}
	req = withSession(httptest.NewRequest(http.MethodPost, "/api/theses/"+testUUID+"/actions/publish", nil))
	resp = httptest.NewRecorder()
	testHandler(assigned).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("assigned supervisor publish: expected 200, got %d", resp.Code)
	}
	if action != "publish" {
		t.Fatalf("expected publish action, got %q", action)
	}
}

func TestThesisActionInvalidTransition(t *testing.T) {
	st := sessionFake(models.User{UserID: testUUID, Role: models.RoleStudent, IsApproved: true})
	st.getThesisFn = func(ctx context.Context, thesisID string) (models.Thesis, error) {
		return models.Thesis{ThesisID: thesisID, AuthorID: testUUID, Status: models.ContentPublished}, nil
	}

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/theses/"+testUUID+"/actions/submit", nil))
	resp := httptest.NewRecorder()
	testHandler(st).ServeHTTP(resp, req)
	if resp.Code != http.StatusConflict {
		t.Fatalf("submitting a published thesis: expected 409, got %d", resp.Code)
	}
}

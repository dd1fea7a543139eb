package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"user-admin/internal/data/entity"
	"user-admin/internal/data/remote"
	"user-admin/internal/dto/request"
	"user-admin/internal/state"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"go.uber.org/zap"
)

// stubAPI serves a fixed roster and records mutations.
type stubAPI struct {
	users   []*entity.User
	deleted []string
}

func (s *stubAPI) List(ctx context.Context) ([]*entity.User, error) {
	return s.users, nil
}

func (s *stubAPI) Get(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, &remote.StatusError{StatusCode: http.StatusNotFound}
}

func (s *stubAPI) Create(ctx context.Context, req *request.UserRequest) (*entity.User, error) {
	u := &entity.User{
		ID:        fmt.Sprintf("u%d", len(s.users)+1),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Active:    true,
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *stubAPI) Update(ctx context.Context, id string, req *request.UserRequest) (*entity.User, error) {
	return &entity.User{ID: id, Email: req.Email, FirstName: req.FirstName, LastName: req.LastName}, nil
}

func (s *stubAPI) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubAPI) SetStatus(ctx context.Context, id string, active bool) (*entity.User, error) {
	return &entity.User{ID: id, Active: active}, nil
}

func (s *stubAPI) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	return nil, &remote.StatusError{StatusCode: http.StatusNotFound}
}

func (s *stubAPI) SearchFirstName(ctx context.Context, v string) ([]*entity.User, error) {
	return s.users, nil
}

func (s *stubAPI) SearchLastName(ctx context.Context, v string) ([]*entity.User, error) {
	return s.users, nil
}

func (s *stubAPI) ByRole(ctx context.Context, role string) ([]*entity.User, error) {
	return s.users, nil
}

func (s *stubAPI) Active(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range s.users {
		if u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

func newTestApp(t *testing.T) (*App, *stubAPI) {
	t.Helper()
	api := &stubAPI{users: []*entity.User{
		{ID: "1", Email: "ana@example.com", FirstName: "Ana", LastName: "Lee", Role: entity.RoleAdmin, Active: true},
		{ID: "2", Email: "bob@example.com", FirstName: "Bob", LastName: "Ray", Active: false},
	}}

	store := state.NewStore()
	prefs := utils.NewPrefs(filepath.Join(t.TempDir(), "prefs.yaml"))
	toasts := notify.NewBuffer()
	config := &utils.Config{}

	return Wiring(api, store, prefs, toasts, config, zap.NewNop()), api
}

func doJSON(t *testing.T, app *App, method, path string, body any) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var resp utils.Response
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON envelope: %v\n%s", err, rec.Body.String())
		}
	}
	return rec, resp
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("unexpected health response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestLoadUsers_ReturnsEnvelopeWithList(t *testing.T) {
	app, _ := newTestApp(t)

	rec, resp := doJSON(t, app, http.MethodGet, "/api/console/users", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !resp.Status {
		t.Fatalf("expected status true, got %+v", resp)
	}

	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", resp.Data)
	}
	if data["count"] != float64(2) {
		t.Fatalf("expected count 2, got %v", data["count"])
	}
}

func TestCreateUser_InvalidBody(t *testing.T) {
	app, _ := newTestApp(t)

	rec, resp := doJSON(t, app, http.MethodPost, "/api/console/users",
		map[string]string{"email": "not-an-email", "firstName": "", "lastName": "Lee"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp.Status {
		t.Fatal("expected status false")
	}

	var found bool
	for _, toast := range resp.Toasts {
		if toast.Level == notify.LevelError && strings.HasPrefix(toast.Message, "Validation errors:") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected validation toast, got %v", resp.Toasts)
	}
}

func TestCreateUser_Valid(t *testing.T) {
	app, api := newTestApp(t)

	rec, resp := doJSON(t, app, http.MethodPost, "/api/console/users",
		map[string]string{"email": "cat@example.com", "firstName": "Cat", "lastName": "Fox"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %+v", rec.Code, resp)
	}
	if len(api.users) != 3 {
		t.Fatalf("user not created on the remote, have %d", len(api.users))
	}

	var found bool
	for _, toast := range resp.Toasts {
		if toast.Message == "User created successfully!" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected success toast, got %v", resp.Toasts)
	}
}

func TestDeleteUser_DeclinedConfirmIsNoOp(t *testing.T) {
	app, api := newTestApp(t)

	rec, resp := doJSON(t, app, http.MethodDelete, "/api/console/users/1?confirm=false", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp.Message != "Deletion cancelled" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if len(api.deleted) != 0 {
		t.Fatalf("declined confirm must not delete, got %v", api.deleted)
	}
}

func TestBulkDelete_EmptySelectionWarns(t *testing.T) {
	app, api := newTestApp(t)

	rec, resp := doJSON(t, app, http.MethodPost, "/api/console/bulk/delete?confirm=true", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(api.deleted) != 0 {
		t.Fatalf("empty selection must not delete, got %v", api.deleted)
	}

	var found bool
	for _, toast := range resp.Toasts {
		if toast.Level == notify.LevelWarning && toast.Message == "Please select users to delete" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected warning toast, got %v", resp.Toasts)
	}
}

func TestSelectionThenBulkDelete(t *testing.T) {
	app, api := newTestApp(t)

	// Load populates the store, selection works against rendered rows
	doJSON(t, app, http.MethodGet, "/api/console/users", nil)
	doJSON(t, app, http.MethodPost, "/api/console/selection/1", nil)
	doJSON(t, app, http.MethodPost, "/api/console/selection/2", nil)

	rec, _ := doJSON(t, app, http.MethodPost, "/api/console/bulk/delete?confirm=true", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(api.deleted) != 2 {
		t.Fatalf("expected 2 deletes, got %v", api.deleted)
	}
}

func TestExport_ServesCSVAttachment(t *testing.T) {
	app, _ := newTestApp(t)

	doJSON(t, app, http.MethodGet, "/api/console/users", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/console/export", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "users_export_") {
		t.Fatalf("expected attachment filename, got %q", cd)
	}
	if lines := strings.Count(strings.TrimSpace(rec.Body.String()), "\n"); lines != 2 {
		t.Fatalf("expected header + 2 rows, got %d newlines", lines)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	rec, resp := doJSON(t, app, http.MethodPut, "/api/console/theme", map[string]string{"theme": "dark"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if data, ok := resp.Data.(map[string]any); !ok || data["theme"] != "dark" {
		t.Fatalf("unexpected data %v", resp.Data)
	}

	_, resp = doJSON(t, app, http.MethodGet, "/api/console/theme", nil)
	if data, ok := resp.Data.(map[string]any); !ok || data["theme"] != "dark" {
		t.Fatalf("theme did not stick, got %v", resp.Data)
	}
}

func TestUnknownUser_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	rec, _ := doJSON(t, app, http.MethodGet, "/api/console/users/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

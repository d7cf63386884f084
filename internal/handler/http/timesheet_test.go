package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sanadhr/backoffice-go/internal/domain/timesheet"
	"github.com/sanadhr/backoffice-go/internal/domain/user"
	"github.com/sanadhr/backoffice-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
)

// stubTimesheetService returns canned results so the handler and routing layer
// can be exercised without a database.
type stubTimesheetService struct {
	generateCount int
	generateErr   error
	updateResult  timesheet.LineResponse
	updateErr     error
	lastUpdate    timesheet.UpdateLineRequest
}

func (s *stubTimesheetService) Generate(_ context.Context, req timesheet.GenerateRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.generateCount, s.generateErr
}

func (s *stubTimesheetService) ListLines(context.Context, string, int, int) ([]timesheet.LineResponse, error) {
	return []timesheet.LineResponse{}, nil
}

func (s *stubTimesheetService) UpdateLine(_ context.Context, req timesheet.UpdateLineRequest) (timesheet.LineResponse, error) {
	s.lastUpdate = req
	return s.updateResult, s.updateErr
}

func (s *stubTimesheetService) GetSummary(context.Context, string, int, int) (timesheet.SummaryResponse, error) {
	return timesheet.SummaryResponse{}, timesheet.ErrSummaryNotFound
}

func (s *stubTimesheetService) Approve(context.Context, timesheet.ApproveRequest) error {
	return nil
}

func (s *stubTimesheetService) RequestRevision(context.Context, timesheet.RequestRevisionRequest) error {
	return nil
}

// noopHandler satisfies the auth, employee and access handler interfaces for
// routes the test never hits.
type noopHandler struct{}

func (noopHandler) serve(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

func (h noopHandler) Login(w http.ResponseWriter, r *http.Request)        { h.serve(w, r) }
func (h noopHandler) RefreshToken(w http.ResponseWriter, r *http.Request) { h.serve(w, r) }
func (h noopHandler) Create(w http.ResponseWriter, r *http.Request)       { h.serve(w, r) }
func (h noopHandler) Get(w http.ResponseWriter, r *http.Request)          { h.serve(w, r) }
func (h noopHandler) List(w http.ResponseWriter, r *http.Request)         { h.serve(w, r) }
func (h noopHandler) Update(w http.ResponseWriter, r *http.Request)       { h.serve(w, r) }
func (h noopHandler) Delete(w http.ResponseWriter, r *http.Request)       { h.serve(w, r) }
func (h noopHandler) CreateUser(w http.ResponseWriter, r *http.Request)   { h.serve(w, r) }
func (h noopHandler) ListUsers(w http.ResponseWriter, r *http.Request)    { h.serve(w, r) }
func (h noopHandler) SetAccess(w http.ResponseWriter, r *http.Request)    { h.serve(w, r) }
func (h noopHandler) SetRole(w http.ResponseWriter, r *http.Request)      { h.serve(w, r) }

func newTestRouter(t *testing.T, svc timesheet.TimesheetService) (jwt.Service, http.Handler) {
	t.Helper()
	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)

	router := NewRouter(
		jwtService,
		noopHandler{},
		noopHandler{},
		NewTimesheetHandler(svc),
		noopHandler{},
	)
	return jwtService, router
}

func authHeader(t *testing.T, jwtService jwt.Service, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("user-1", "ops@sanadhr.com", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, handler http.Handler, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGenerateEndpoint(t *testing.T) {
	svc := &stubTimesheetService{generateCount: 12}
	jwtService, router := newTestRouter(t, svc)

	body := map[string]interface{}{"month": "08", "year": 2026, "client_number": "CL-100"}

	rec := doRequest(t, router, http.MethodPost, "/api/v1/timesheets/generate",
		authHeader(t, jwtService, user.RoleOperations), body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			LinesCreated int `json:"lines_created"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 12, resp.Data.LinesCreated)
}

func TestGenerateEndpoint_DuplicateConflict(t *testing.T) {
	svc := &stubTimesheetService{generateErr: timesheet.ErrAlreadyGenerated}
	jwtService, router := newTestRouter(t, svc)

	body := map[string]interface{}{"month": "08", "year": 2026, "client_number": "CL-100"}

	rec := doRequest(t, router, http.MethodPost, "/api/v1/timesheets/generate",
		authHeader(t, jwtService, user.RoleOperations), body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Error struct {
			Code   string `json:"code"`
			Exists bool   `json:"exists"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CONFLICT", resp.Error.Code)
	assert.True(t, resp.Error.Exists)
}

func TestGenerateEndpoint_ValidationBadRequest(t *testing.T) {
	svc := &stubTimesheetService{}
	jwtService, router := newTestRouter(t, svc)

	body := map[string]interface{}{"month": "13", "year": 2026, "client_number": "CL-100"}

	rec := doRequest(t, router, http.MethodPost, "/api/v1/timesheets/generate",
		authHeader(t, jwtService, user.RoleOperations), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateEndpoint_RequiresPermission(t *testing.T) {
	svc := &stubTimesheetService{generateCount: 1}
	jwtService, router := newTestRouter(t, svc)

	body := map[string]interface{}{"month": "08", "year": 2026, "client_number": "CL-100"}

	// Finance cannot generate timesheets.
	rec := doRequest(t, router, http.MethodPost, "/api/v1/timesheets/generate",
		authHeader(t, jwtService, user.RoleFinance), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGenerateEndpoint_RequiresAuth(t *testing.T) {
	svc := &stubTimesheetService{}
	_, router := newTestRouter(t, svc)

	body := map[string]interface{}{"month": "08", "year": 2026, "client_number": "CL-100"}

	rec := doRequest(t, router, http.MethodPost, "/api/v1/timesheets/generate", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateLineEndpoint_RejectsDisallowedField(t *testing.T) {
	svc := &stubTimesheetService{}
	jwtService, router := newTestRouter(t, svc)

	body := map[string]interface{}{"basic_salary": "9999"}

	rec := doRequest(t, router, http.MethodPatch, "/api/v1/timesheets/lines/line-1",
		authHeader(t, jwtService, user.RoleFinance), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "basic_salary")
}

func TestUpdateLineEndpoint_SetsEditorFromToken(t *testing.T) {
	svc := &stubTimesheetService{}
	jwtService, router := newTestRouter(t, svc)

	body := map[string]interface{}{"overtime_hours": "4"}

	rec := doRequest(t, router, http.MethodPatch, "/api/v1/timesheets/lines/line-1",
		authHeader(t, jwtService, user.RoleFinance), body)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "line-1", svc.lastUpdate.ID)
	require.NotNil(t, svc.lastUpdate.EditedBy)
	assert.Equal(t, "user-1", *svc.lastUpdate.EditedBy)
}

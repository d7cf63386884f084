package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sanadhr/backoffice-go/internal/domain/timesheet"
	"github.com/sanadhr/backoffice-go/internal/handler/http/middleware"
	"github.com/sanadhr/backoffice-go/internal/handler/http/response"
	timesheetService "github.com/sanadhr/backoffice-go/internal/service/timesheet"
)

type TimesheetHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListLines(w http.ResponseWriter, r *http.Request)
	UpdateLine(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	RequestRevision(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(service timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: service}
}

func (h *timesheetHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req timesheet.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	userID, _, ok := middleware.ActorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}
	req.GeneratedBy = userID

	count, err := h.timesheetService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("Generated %d timesheet lines", count), map[string]interface{}{
		"lines_created": count,
	})
}

func (h *timesheetHandlerImpl) ListLines(w http.ResponseWriter, r *http.Request) {
	clientNumber := r.URL.Query().Get("client_number")
	if clientNumber == "" {
		response.BadRequest(w, "client_number is required", nil)
		return
	}
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	lines, err := h.timesheetService.ListLines(r.Context(), clientNumber, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, lines)
}

func (h *timesheetHandlerImpl) UpdateLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Line ID is required", nil)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	req, err := timesheet.ParseLineUpdate(body)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = id

	userID, _, ok := middleware.ActorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}
	req.EditedBy = &userID

	result, err := h.timesheetService.UpdateLine(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	clientNumber := r.URL.Query().Get("client_number")
	if clientNumber == "" {
		response.BadRequest(w, "client_number is required", nil)
		return
	}
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	summary, err := h.timesheetService.GetSummary(r.Context(), clientNumber, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func (h *timesheetHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.timesheetService.Approve(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet summary approved", nil)
}

func (h *timesheetHandlerImpl) RequestRevision(w http.ResponseWriter, r *http.Request) {
	var req timesheet.RequestRevisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.timesheetService.RequestRevision(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Revision requested", nil)
}

// periodFromQuery reads month and year query parameters, falling back to the
// default reporting period (previous month until the 15th, then the current
// month) when both are absent.
func periodFromQuery(r *http.Request) (month, year int, err error) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	if monthStr == "" && yearStr == "" {
		month, year = timesheetService.ReportingPeriod(time.Now())
		return month, year, nil
	}

	month, err = strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be a number between 1 and 12")
	}
	year, err = strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, fmt.Errorf("year must be a number between 2000 and 2100")
	}
	return month, year, nil
}

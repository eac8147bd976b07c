package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/attendance"
	"github.com/shramsetu/rozgar-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	DailyRoster(w http.ResponseWriter, r *http.Request)
	RangeSummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked", result)
}

// Edit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	var req attendance.EditAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "recordID")

	result, err := h.attendanceService.Edit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

// DailyRoster implements AttendanceHandler.
func (h *attendanceHandlerImpl) DailyRoster(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	date := r.URL.Query().Get("date")

	result, err := h.attendanceService.DailyRoster(r.Context(), projectID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RangeSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) RangeSummary(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RangeFilter{
		ProjectID: chi.URLParam(r, "projectID"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.attendanceService.RangeSummary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

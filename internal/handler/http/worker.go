package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/worker"
	"github.com/shramsetu/rozgar-backend-go/internal/handler/http/response"
)

type WorkerHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListAssigned(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &workerHandlerImpl{
		workerService: workerService,
	}
}

// Register implements WorkerHandler.
func (h *workerHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req worker.RegisterWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workerService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker registered", result)
}

// Get implements WorkerHandler.
func (h *workerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.workerService.GetByID(r.Context(), chi.URLParam(r, "workerID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkerHandler.
func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worker.WorkerFilter{}

	q := r.URL.Query()
	if name := q.Get("name"); name != "" {
		filter.Name = &name
	}
	if skill := q.Get("skill"); skill != "" {
		filter.Skill = &skill
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	results, total, err := h.workerService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, response.NewMeta(filter.Page, filter.Limit, total))
}

// ListAssigned implements WorkerHandler.
func (h *workerHandlerImpl) ListAssigned(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	date := r.URL.Query().Get("date")

	results, err := h.workerService.ListAssigned(r.Context(), projectID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Assign implements WorkerHandler.
func (h *workerHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req worker.AssignWorkersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "projectID")

	if err := h.workerService.Assign(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Workers assigned", nil)
}

// Unassign implements WorkerHandler.
func (h *workerHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	workerID := chi.URLParam(r, "workerID")

	if err := h.workerService.Unassign(r.Context(), projectID, workerID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker unassigned", nil)
}

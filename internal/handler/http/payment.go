package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/payment"
	"github.com/shramsetu/rozgar-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	Projection(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{
		paymentService: paymentService,
	}
}

// Projection implements PaymentHandler.
func (h *paymentHandlerImpl) Projection(w http.ResponseWriter, r *http.Request) {
	req := payment.ProjectionRequest{
		ProjectID: chi.URLParam(r, "projectID"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.paymentService.Project(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Generate implements PaymentHandler.
func (h *paymentHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payment.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "projectID")

	result, err := h.paymentService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// List implements PaymentHandler.
func (h *paymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := payment.ProjectionRequest{
		ProjectID: chi.URLParam(r, "projectID"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	results, err := h.paymentService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

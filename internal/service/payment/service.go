package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/attendance"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/payment"
	"github.com/shramsetu/rozgar-backend-go/internal/domain/project"
)

type PaymentServiceImpl struct {
	payment.PaymentRepository
	attendance.AttendanceRepository
	project.ProjectRepository
}

func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	attendanceRepo attendance.AttendanceRepository,
	projectRepo project.ProjectRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		PaymentRepository:    paymentRepo,
		AttendanceRepository: attendanceRepo,
		ProjectRepository:    projectRepo,
	}
}

func claimsFromContext(ctx context.Context) (userID string, panchayatCode string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	panchayatCode, ok = claims["panchayat_code"].(string)
	if !ok || panchayatCode == "" {
		return "", "", fmt.Errorf("panchayat_code claim is missing or invalid")
	}

	return userID, panchayatCode, nil
}

// Project implements payment.PaymentService. NOT_MARKED days contribute
// nothing: the projection multiplies the wage by PRESENT days only.
func (p *PaymentServiceImpl) Project(ctx context.Context, req payment.ProjectionRequest) (payment.ProjectionResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.ProjectionResponse{}, err
	}

	_, panchayatCode, err := claimsFromContext(ctx)
	if err != nil {
		return payment.ProjectionResponse{}, err
	}

	proj, err := p.ProjectRepository.GetByID(ctx, req.ProjectID, panchayatCode)
	if err != nil {
		return payment.ProjectionResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	presentDays, err := p.AttendanceRepository.CountPresent(ctx, req.ProjectID, startDate, endDate)
	if err != nil {
		return payment.ProjectionResponse{}, fmt.Errorf("failed to count present days: %w", err)
	}

	total := proj.WagePerWorker.Mul(decimal.NewFromInt(presentDays))

	return payment.ProjectionResponse{
		ProjectID:     req.ProjectID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		WagePerWorker: proj.WagePerWorker.StringFixed(2),
		PresentDays:   presentDays,
		TotalPayable:  total.StringFixed(2),
	}, nil
}

// Generate implements payment.PaymentService.
func (p *PaymentServiceImpl) Generate(ctx context.Context, req payment.GenerateRequest) (payment.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.GenerateResponse{}, err
	}

	userID, panchayatCode, err := claimsFromContext(ctx)
	if err != nil {
		return payment.GenerateResponse{}, err
	}

	proj, err := p.ProjectRepository.GetByID(ctx, req.ProjectID, panchayatCode)
	if err != nil {
		return payment.GenerateResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	count, err := p.PaymentRepository.GenerateForRange(ctx, req.ProjectID, proj.WagePerWorker, startDate, endDate, userID)
	if err != nil {
		return payment.GenerateResponse{}, fmt.Errorf("failed to generate payments: %w", err)
	}

	msg := fmt.Sprintf("generated %d payment records", count)
	if count == 0 {
		msg = "no unpaid present days in range, nothing generated"
	}

	return payment.GenerateResponse{
		Count:   count,
		Message: msg,
	}, nil
}

// List implements payment.PaymentService.
func (p *PaymentServiceImpl) List(ctx context.Context, req payment.ProjectionRequest) ([]payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	_, panchayatCode, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := p.ProjectRepository.GetByID(ctx, req.ProjectID, panchayatCode); err != nil {
		return nil, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	payments, err := p.PaymentRepository.ListByProject(ctx, req.ProjectID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, pay := range payments {
		responses = append(responses, payment.ToResponse(pay))
	}
	return responses, nil
}

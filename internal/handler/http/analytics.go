package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-insights-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AnalyticsHandler interface {
	// DetectAnomalies handles GET /analytics/anomalies
	DetectAnomalies(w http.ResponseWriter, r *http.Request)
	// PredictAttrition handles POST /analytics/predict-attrition/{employeeId}
	PredictAttrition(w http.ResponseWriter, r *http.Request)
	// GenerateFeedback handles POST /analytics/generate-feedback
	GenerateFeedback(w http.ResponseWriter, r *http.Request)

	GetSummary(w http.ResponseWriter, r *http.Request)
	GetGoalPerformance(w http.ResponseWriter, r *http.Request)
	GetLeaveTrends(w http.ResponseWriter, r *http.Request)
	GenerateReportSummary(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	employeeService  employee.EmployeeService
	anomalyService   analytics.AnomalyService
	attritionService analytics.AttritionService
	feedbackService  analytics.FeedbackService
	insightsService  analytics.InsightsService
}

func NewAnalyticsHandler(
	employeeService employee.EmployeeService,
	anomalyService analytics.AnomalyService,
	attritionService analytics.AttritionService,
	feedbackService analytics.FeedbackService,
	insightsService analytics.InsightsService,
) AnalyticsHandler {
	return &analyticsHandlerImpl{
		employeeService:  employeeService,
		anomalyService:   anomalyService,
		attritionService: attritionService,
		feedbackService:  feedbackService,
		insightsService:  insightsService,
	}
}

func (h *analyticsHandlerImpl) DetectAnomalies(w http.ResponseWriter, r *http.Request) {
	anomalies, err := h.anomalyService.DetectAnomalies(r.Context())
	if err != nil {
		slog.Error("DetectAnomalies error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, anomalies)
}

func (h *analyticsHandlerImpl) PredictAttrition(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := h.employeeService.GetByID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	prediction, err := h.attritionService.PredictAttrition(r.Context(), emp)
	if err != nil {
		slog.Error("PredictAttrition error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, prediction)
}

func (h *analyticsHandlerImpl) GenerateFeedback(w http.ResponseWriter, r *http.Request) {
	var req analytics.GenerateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("GenerateFeedback decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	feedback, err := h.feedbackService.GenerateFeedback(r.Context(), req.Rating, req.Comments)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, analytics.FeedbackResponse{Feedback: feedback})
}

func (h *analyticsHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *analyticsHandlerImpl) GetGoalPerformance(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.GetGoalPerformance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *analyticsHandlerImpl) GetLeaveTrends(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.GetLeaveTrends(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *analyticsHandlerImpl) GenerateReportSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightsService.GenerateReportSummary(r.Context())
	if err != nil {
		slog.Error("GenerateReportSummary error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

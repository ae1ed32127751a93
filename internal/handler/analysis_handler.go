package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/soham0809/yardstick-backend/internal/service"
)

// AnalysisHandler handles the read-only reporting endpoints
type AnalysisHandler struct {
	reportService *service.ReportService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(reportService *service.ReportService) *AnalysisHandler {
	return &AnalysisHandler{reportService: reportService}
}

// MonthlySeriesResponse represents one month in the yearly series
type MonthlySeriesResponse struct {
	Month     int    `json:"month"`
	MonthName string `json:"monthName"`
	Amount    string `json:"amount"`
}

// CategoryDistributionResponse represents one category's spending share
type CategoryDistributionResponse struct {
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

// BudgetVsActualResponse represents one category's budget comparison
type BudgetVsActualResponse struct {
	Category  string `json:"category"`
	Budget    string `json:"budget"`
	Actual    string `json:"actual"`
	Remaining string `json:"remaining"`
}

// GetMonthlyExpenses handles GET /api/v1/analysis/monthly-expenses.
// The year query parameter defaults to the current year.
func (h *AnalysisHandler) GetMonthlyExpenses(c echo.Context) error {
	year := time.Now().UTC().Year()
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return NewValidationError(c, "Invalid year", nil)
		}
		year = parsed
	}

	series, err := h.reportService.MonthlySeries(year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("Failed to build monthly series")
		return NewInternalError(c, "Failed to build monthly series")
	}

	responses := make([]MonthlySeriesResponse, len(series))
	for i, entry := range series {
		responses[i] = MonthlySeriesResponse{
			Month:     entry.Month,
			MonthName: entry.MonthName,
			Amount:    entry.Amount.StringFixed(2),
		}
	}
	return c.JSON(http.StatusOK, responses)
}

// GetCategoryDistribution handles GET /api/v1/analysis/category-distribution.
// Month and year are both optional: month+year covers one calendar month,
// year alone the full year, neither the all-time ledger. A month without
// a year is rejected.
func (h *AnalysisHandler) GetCategoryDistribution(c echo.Context) error {
	var month, year *int

	if raw := c.QueryParam("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return NewValidationError(c, "Invalid month", nil)
		}
		month = &parsed
	}
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return NewValidationError(c, "Invalid year", nil)
		}
		year = &parsed
	}
	if month != nil && year == nil {
		return NewValidationError(c, "Month requires a year", []ValidationError{
			{Field: "year", Message: "Required when month is given"},
		})
	}

	distribution, err := h.reportService.CategoryDistribution(month, year)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build category distribution")
		return NewInternalError(c, "Failed to build category distribution")
	}

	responses := make([]CategoryDistributionResponse, len(distribution))
	for i, entry := range distribution {
		responses[i] = CategoryDistributionResponse{
			Category:   string(entry.Category),
			Amount:     entry.Amount.StringFixed(2),
			Percentage: entry.Percentage.StringFixed(2),
		}
	}
	return c.JSON(http.StatusOK, responses)
}

// GetBudgetVsActual handles GET /api/v1/analysis/budget-vs-actual.
// Month and year default to the current month and year.
func (h *AnalysisHandler) GetBudgetVsActual(c echo.Context) error {
	now := time.Now().UTC()
	month := int(now.Month())
	year := now.Year()

	if raw := c.QueryParam("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return NewValidationError(c, "Invalid month", nil)
		}
		month = parsed
	}
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return NewValidationError(c, "Invalid year", nil)
		}
		year = parsed
	}

	comparison, err := h.reportService.BudgetVsActual(month, year)
	if err != nil {
		log.Error().Err(err).Int("month", month).Int("year", year).Msg("Failed to build budget vs actual")
		return NewInternalError(c, "Failed to build budget vs actual")
	}

	responses := make([]BudgetVsActualResponse, len(comparison))
	for i, entry := range comparison {
		responses[i] = BudgetVsActualResponse{
			Category:  string(entry.Category),
			Budget:    entry.Budget.StringFixed(2),
			Actual:    entry.Actual.StringFixed(2),
			Remaining: entry.Remaining.StringFixed(2),
		}
	}
	return c.JSON(http.StatusOK, responses)
}

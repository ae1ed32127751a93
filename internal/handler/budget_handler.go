package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/soham0809/yardstick-backend/internal/domain"
	"github.com/soham0809/yardstick-backend/internal/service"
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRequest represents the set budget request body
type BudgetRequest struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// SetBudget handles POST /api/v1/budgets. Posting an existing
// (category, month, year) overwrites that budget's amount.
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	budget, err := h.budgetService.Set(&service.BudgetInput{
		Category: domain.Category(req.Category),
		Amount:   amount,
		Month:    req.Month,
		Year:     req.Year,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCategory):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "category", Message: "Must be one of the known categories"},
			})
		case errors.Is(err, domain.ErrInvalidMonth):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "month", Message: "Must be between 1 and 12"},
			})
		case errors.Is(err, domain.ErrInvalidYear):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "year", Message: "Must be a plausible year"},
			})
		}
		log.Error().Err(err).Str("category", req.Category).Int("month", req.Month).Int("year", req.Year).Msg("Failed to set budget")
		return NewInternalError(c, "Failed to set budget")
	}

	log.Info().Str("budget_id", budget.ID.String()).Str("category", string(budget.Category)).Int("month", budget.Month).Int("year", budget.Year).Msg("Budget set")

	return c.JSON(http.StatusCreated, toBudgetResponse(budget))
}

// GetBudgets handles GET /api/v1/budgets with optional month+year filter
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
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

	budgets, err := h.budgetService.List(month, year)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list budgets")
		return NewInternalError(c, "Failed to list budgets")
	}

	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = toBudgetResponse(b)
	}
	return c.JSON(http.StatusOK, responses)
}

// DeleteBudget handles DELETE /api/v1/budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	if err := h.budgetService.Delete(id); err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Str("budget_id", id.String()).Msg("Failed to delete budget")
		return NewInternalError(c, "Failed to delete budget")
	}

	log.Info().Str("budget_id", id.String()).Msg("Budget deleted")

	return c.JSON(http.StatusOK, map[string]string{"message": "Budget deleted successfully"})
}

// Helper function to convert a domain budget to an API response
func toBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		Category:  string(b.Category),
		Amount:    b.Amount.StringFixed(2),
		Month:     b.Month,
		Year:      b.Year,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

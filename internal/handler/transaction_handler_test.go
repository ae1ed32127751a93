package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/soham0809/yardstick-backend/internal/domain"
	"github.com/soham0809/yardstick-backend/internal/service"
	"github.com/soham0809/yardstick-backend/internal/testutil"
)

func newTransactionHandler() (*TransactionHandler, *testutil.MockTransactionRepository) {
	transactionRepo := testutil.NewMockTransactionRepository()
	transactionService := service.NewTransactionService(transactionRepo)
	return NewTransactionHandler(transactionService), transactionRepo
}

func TestCreateTransaction_Success(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler()

	reqBody := `{"amount": "150.00", "description": "Groceries", "date": "2024-05-10", "category": "Food"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateTransaction(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Description != "Groceries" {
		t.Errorf("Expected description 'Groceries', got %s", response.Description)
	}
	if response.Amount != "150.00" {
		t.Errorf("Expected amount '150.00', got %s", response.Amount)
	}
	if response.Category != "Food" {
		t.Errorf("Expected category 'Food', got %s", response.Category)
	}
	if response.ID == "" {
		t.Error("Expected a generated id")
	}
}

func TestCreateTransaction_DefaultsCategory(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler()

	reqBody := `{"amount": "25.00", "description": "Misc", "date": "2024-05-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Category != "Other" {
		t.Errorf("Expected category 'Other', got %s", response.Category)
	}
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler()

	tests := []struct {
		name string
		body string
	}{
		{"invalid amount", `{"amount": "abc", "description": "Misc", "date": "2024-05-10"}`},
		{"missing date", `{"amount": "10.00", "description": "Misc"}`},
		{"bad date format", `{"amount": "10.00", "description": "Misc", "date": "05/10/2024"}`},
		{"missing description", `{"amount": "10.00", "date": "2024-05-10"}`},
		{"unknown category", `{"amount": "10.00", "description": "Misc", "date": "2024-05-10", "category": "Bribes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := handler.CreateTransaction(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestGetTransaction_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/transactions/:id")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := handler.GetTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestGetTransaction_Success(t *testing.T) {
	e := echo.New()
	handler, transactionRepo := newTransactionHandler()

	transaction := &domain.Transaction{
		Amount:      decimal.NewFromInt(42),
		Description: "Bus pass",
		Date:        time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
		Category:    domain.CategoryTransportation,
	}
	transactionRepo.AddTransaction(transaction)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/transactions/:id")
	c.SetParamNames("id")
	c.SetParamValues(transaction.ID.String())

	if err := handler.GetTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Date != "2024-05-10" {
		t.Errorf("Expected date '2024-05-10', got %s", response.Date)
	}
}

func TestUpdateTransaction_Success(t *testing.T) {
	e := echo.New()
	handler, transactionRepo := newTransactionHandler()

	transaction := &domain.Transaction{
		Amount:      decimal.NewFromInt(42),
		Description: "Bus pass",
		Date:        time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
		Category:    domain.CategoryTransportation,
	}
	transactionRepo.AddTransaction(transaction)

	reqBody := `{"amount": "48.00", "description": "Monthly bus pass", "date": "2024-05-11", "category": "Transportation"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/transactions/:id")
	c.SetParamNames("id")
	c.SetParamValues(transaction.ID.String())

	if err := handler.UpdateTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Amount != "48.00" {
		t.Errorf("Expected amount '48.00', got %s", response.Amount)
	}
}

func TestUpdateTransaction_ValidationErrors(t *testing.T) {
	e := echo.New()
	handler, transactionRepo := newTransactionHandler()

	transaction := &domain.Transaction{
		Amount:      decimal.NewFromInt(42),
		Description: "Bus pass",
		Date:        time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
		Category:    domain.CategoryTransportation,
	}
	transactionRepo.AddTransaction(transaction)

	tests := []struct {
		name string
		body string
	}{
		{"invalid amount", `{"amount": "abc", "description": "Bus pass", "date": "2024-05-10"}`},
		{"missing date", `{"amount": "42.00", "description": "Bus pass"}`},
		{"bad date format", `{"amount": "42.00", "description": "Bus pass", "date": "05/10/2024"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/api/v1/transactions/:id")
			c.SetParamNames("id")
			c.SetParamValues(transaction.ID.String())

			if err := handler.UpdateTransaction(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
			if !transactionRepo.Transactions[transaction.ID].Amount.Equal(decimal.NewFromInt(42)) {
				t.Error("Expected stored transaction to be unchanged")
			}
		})
	}
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/transactions/:id")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := handler.DeleteTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteTransaction_Success(t *testing.T) {
	e := echo.New()
	handler, transactionRepo := newTransactionHandler()

	transaction := &domain.Transaction{
		Amount:      decimal.NewFromInt(10),
		Description: "Coffee",
		Date:        time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
		Category:    domain.CategoryFood,
	}
	transactionRepo.AddTransaction(transaction)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/transactions/:id")
	c.SetParamNames("id")
	c.SetParamValues(transaction.ID.String())

	if err := handler.DeleteTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if len(transactionRepo.Transactions) != 0 {
		t.Errorf("Expected transaction to be removed, %d remain", len(transactionRepo.Transactions))
	}
}

func TestGetTransactions_Empty(t *testing.T) {
	e := echo.New()
	handler, _ := newTransactionHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetTransactions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("Expected empty JSON array, got %s", body)
	}
}

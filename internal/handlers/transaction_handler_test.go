package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

type mockTransactionService struct {
	createTransactionFn   func(userID uint, categoryID *uint, amount decimal.Decimal, description string, date time.Time) (*models.Transaction, error)
	getUserTransactionsFn func(userID uint, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn  func(userID, transactionID uint) (*models.Transaction, error)
	updateTransactionFn   func(userID, transactionID uint, fields services.TransactionUpdateFields) (*models.Transaction, error)
	deleteTransactionFn   func(userID, transactionID uint) error
}

func (m *mockTransactionService) CreateTransaction(userID uint, categoryID *uint, amount decimal.Decimal, description string, date time.Time) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, categoryID, amount, description, date)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID uint, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, page, filter)
	}
	result := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &result, nil
}

func (m *mockTransactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, transactionID uint, fields services.TransactionUpdateFields) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, transactionID, fields)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID uint) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.Use(injectUserID(1))
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.GetUserTransactions)
	r.GET("/transactions/:id", handler.GetTransactionByID)
	r.PUT("/transactions/:id", handler.UpdateTransaction)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(userID uint, categoryID *uint, amount decimal.Decimal, description string, date time.Time) (*models.Transaction, error) {
				return &models.Transaction{
					Base:        models.Base{ID: 1},
					UserID:      userID,
					CategoryID:  categoryID,
					Amount:      amount,
					Description: description,
					Date:        date,
				}, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":3,"amount":"42.50","description":"lunch","date":"2026-08-10"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 when category is missing", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(_ uint, categoryID *uint, _ decimal.Decimal, _ string, _ time.Time) (*models.Transaction, error) {
				if categoryID == nil {
					return nil, apperrors.ErrCategoryRequired
				}
				return &models.Transaction{}, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_REQUIRED")
	})

	t.Run("returns 400 on foreign category", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(_ uint, _ *uint, _ decimal.Decimal, _ string, _ time.Time) (*models.Transaction, error) {
				return nil, apperrors.ErrInvalidCategory
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"category_id":99,"amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CATEGORY")
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":3,"amount":"10","date":"10-08-2026"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetUserTransactions(t *testing.T) {
	t.Run("passes filter params through", func(t *testing.T) {
		var captured services.TransactionFilter
		svc := &mockTransactionService{
			getUserTransactionsFn: func(_ uint, _ pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				captured = filter
				result := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &result, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET",
			"/transactions?start_date=2026-08-01&end_date=2026-08-31&category=Groceries&amount=49.99", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.StartDate != "2026-08-01" || captured.EndDate != "2026-08-31" {
			t.Errorf("expected date bounds to pass through, got %q / %q", captured.StartDate, captured.EndDate)
		}
		if captured.CategoryName != "Groceries" {
			t.Errorf("expected category Groceries, got %q", captured.CategoryName)
		}
		if captured.Amount != "49.99" {
			t.Errorf("expected amount 49.99, got %q", captured.Amount)
		}
	})

	t.Run("malformed filter values still return 200", func(t *testing.T) {
		svc := &mockTransactionService{
			getUserTransactionsFn: func(_ uint, _ pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				// Raw strings reach the service untouched; it decides what to drop.
				if filter.StartDate != "2024-13-40" {
					t.Errorf("expected raw start_date to pass through, got %q", filter.StartDate)
				}
				result := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &result, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?start_date=2024-13-40&amount=not-a-number", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on invalid page size", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var captured services.TransactionUpdateFields
		svc := &mockTransactionService{
			updateTransactionFn: func(_, _ uint, fields services.TransactionUpdateFields) (*models.Transaction, error) {
				captured = fields
				return &models.Transaction{Base: models.Base{ID: 5}}, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/5", `{"amount":"15.75","description":"groceries"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Amount == nil || !captured.Amount.Equal(decimal.RequireFromString("15.75")) {
			t.Error("expected amount 15.75 in update fields")
		}
		if captured.Description == nil || *captured.Description != "groceries" {
			t.Error("expected description in update fields")
		}
		if captured.CategoryID != nil || captured.Date != nil {
			t.Error("expected omitted fields to stay nil")
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockTransactionService{
			updateTransactionFn: func(_, _ uint, _ services.TransactionUpdateFields) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/42", `{"amount":"10"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockTransactionService{
			deleteTransactionFn: func(_, _ uint) error {
				return apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/42", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

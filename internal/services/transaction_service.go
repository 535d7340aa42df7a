package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// dateOnly is the accepted format for filter date bounds.
const dateOnly = "2006-01-02"

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction creates a new transaction for a user. A category is
// required and must belong to the same user; otherwise the write is
// rejected and nothing is persisted.
func (s *transactionService) CreateTransaction(
	userID uint,
	categoryID *uint,
	amount decimal.Decimal,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if categoryID == nil {
		return nil, apperrors.ErrCategoryRequired
	}

	if _, err := resolveOwned[models.Category](s.db, userID, *categoryID, apperrors.ErrInvalidCategory); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions, newest first.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("transactions.user_id = ?", userID)
	base = applyTransactionFilter(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Preload("Category").
		Scopes(pagination.Paginate(page)).
		Order("date DESC, transactions.id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// applyTransactionFilter narrows a transaction query by the supplied
// constraints. Constraints that fail to parse are dropped, not errors:
// the date range applies only when both bounds are valid YYYY-MM-DD dates,
// and the amount only when it is a valid decimal. Category name matching
// is exact and case-sensitive.
func applyTransactionFilter(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.StartDate != "" && f.EndDate != "" {
		start, startErr := time.Parse(dateOnly, f.StartDate)
		end, endErr := time.Parse(dateOnly, f.EndDate)
		if startErr == nil && endErr == nil {
			// Inclusive range: the end bound covers the whole end day.
			q = q.Where("date >= ? AND date < ?", start, end.AddDate(0, 0, 1))
		}
	}
	if f.CategoryName != "" {
		q = q.Joins("JOIN categories ON categories.id = transactions.category_id").
			Where("categories.name = ?", f.CategoryName)
	}
	if f.Amount != "" {
		if amount, err := decimal.NewFromString(f.Amount); err == nil {
			q = q.Where("amount = ?", amount)
		}
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	return resolveOwned[models.Transaction](s.db.Preload("Category"), userID, transactionID, apperrors.ErrTransactionNotFound)
}

// UpdateTransaction updates an existing transaction's fields. A changed
// category reference is re-validated against the acting user.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.CategoryID != nil {
		if _, err := resolveOwned[models.Category](s.db, userID, *fields.CategoryID, apperrors.ErrInvalidCategory); err != nil {
			return nil, err
		}
		updates["category_id"] = *fields.CategoryID
	}
	if fields.Amount != nil {
		updates["amount"] = *fields.Amount
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Date != nil {
		updates["date"] = *fields.Date
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// DeleteTransaction deletes a transaction
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := resolveOwned[models.Transaction](s.db, userID, transactionID, apperrors.ErrTransactionNotFound)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

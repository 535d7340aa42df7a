package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, email, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	GetUserCategories(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID uint) (*models.Category, error)
	UpdateCategory(userID, categoryID uint, name string, categoryType *models.CategoryType) (*models.Category, error)
	DeleteCategory(userID, categoryID uint) error
}

// TransactionFilter holds optional filter parameters for listing
// transactions. Values arrive as raw query strings: a date range is applied
// only when both bounds parse as YYYY-MM-DD dates, and the amount constraint
// only when it parses as a decimal. Malformed values drop the constraint
// silently instead of failing the request.
type TransactionFilter struct {
	StartDate    string
	EndDate      string
	CategoryName string
	Amount       string
}

// TransactionUpdateFields holds the optional fields for updating a
// transaction. Nil pointers leave the field unchanged.
type TransactionUpdateFields struct {
	CategoryID  *uint
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, categoryID *uint, amount decimal.Decimal, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, categoryID uint, amount decimal.Decimal, month time.Time) (*models.Budget, error)
	GetUserBudgets(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID uint) (*models.Budget, error)
	UpdateBudget(userID, budgetID uint, categoryID *uint, amount *decimal.Decimal, month *time.Time) (*models.Budget, error)
	DeleteBudget(userID, budgetID uint) error
}

// BudgetComparison is one budget-vs-actual entry in the monthly summary.
type BudgetComparison struct {
	Category string          `json:"category"`
	Budget   decimal.Decimal `json:"budget"`
	Actual   decimal.Decimal `json:"actual"`
}

// MonthlySummary aggregates a user's finances for one calendar month.
type MonthlySummary struct {
	TotalIncome    decimal.Decimal    `json:"total_income"`
	TotalExpenses  decimal.Decimal    `json:"total_expenses"`
	Balance        decimal.Decimal    `json:"balance"`
	BudgetVsActual []BudgetComparison `json:"budget_vs_actual"`
}

// SummaryServicer defines the contract for the financial summary computation.
// The as-of date determines the calendar month; callers pass the wall clock.
type SummaryServicer interface {
	MonthlySummary(userID uint, asOf time.Time) (*MonthlySummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}

package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a new budget for a category. The category must
// belong to the acting user. Nothing prevents multiple budgets for the
// same category and month; the summary then reports one row per budget.
func (s *budgetService) CreateBudget(userID, categoryID uint, amount decimal.Decimal, month time.Time) (*models.Budget, error) {
	if _, err := resolveOwned[models.Category](s.db, userID, categoryID, apperrors.ErrInvalidCategory); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns a paginated list of budgets for the user.
func (s *budgetService) GetUserBudgets(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Preload("Category").Scopes(pagination.Paginate(page)).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID uint) (*models.Budget, error) {
	return resolveOwned[models.Budget](s.db.Preload("Category"), userID, budgetID, apperrors.ErrBudgetNotFound)
}

// UpdateBudget updates an existing budget's fields. A changed category
// reference is re-validated against the acting user.
func (s *budgetService) UpdateBudget(userID, budgetID uint, categoryID *uint, amount *decimal.Decimal, month *time.Time) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if categoryID != nil {
		if _, err := resolveOwned[models.Category](s.db, userID, *categoryID, apperrors.ErrInvalidCategory); err != nil {
			return nil, err
		}
		updates["category_id"] = *categoryID
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if month != nil {
		updates["month"] = *month
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return budget, nil
}

// DeleteBudget deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	budget, err := resolveOwned[models.Budget](s.db, userID, budgetID, apperrors.ErrBudgetNotFound)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

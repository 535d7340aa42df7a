package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// summaryService computes the monthly financial summary.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// MonthlySummary computes total income, total expenses, balance, and
// budget-vs-actual entries for the calendar month containing asOf.
// Amounts are summed as decimals in Go so the arithmetic is exact and
// independent of the database driver. Absent categories, transactions, or
// budgets yield zero totals and an empty entry list, never an error.
func (s *summaryService) MonthlySummary(userID uint, asOf time.Time) (*MonthlySummary, error) {
	year, month, _ := asOf.Date()
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := firstDay.AddDate(0, 1, 0)

	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	typeByID := make(map[uint]models.CategoryType, len(categories))
	for _, c := range categories {
		typeByID[c.ID] = c.Type
	}

	var transactions []models.Transaction
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, firstDay, nextMonth).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	actualByCategory := make(map[uint]decimal.Decimal)
	for _, t := range transactions {
		// Uncategorized transactions contribute to neither side.
		if t.CategoryID == nil {
			continue
		}
		actualByCategory[*t.CategoryID] = actualByCategory[*t.CategoryID].Add(t.Amount)

		switch typeByID[*t.CategoryID] {
		case models.CategoryTypeIncome:
			totalIncome = totalIncome.Add(t.Amount)
		case models.CategoryTypeExpense:
			totalExpenses = totalExpenses.Add(t.Amount)
		}
	}

	// One entry per budget row in the as-of month; duplicate budgets for
	// the same category produce duplicate entries.
	var budgets []models.Budget
	if err := s.db.Preload("Category").
		Where("user_id = ? AND month >= ? AND month < ?", userID, firstDay, nextMonth).
		Order("id").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	comparisons := make([]BudgetComparison, 0, len(budgets))
	for _, b := range budgets {
		actual, ok := actualByCategory[b.CategoryID]
		if !ok {
			actual = decimal.Zero
		}
		comparisons = append(comparisons, BudgetComparison{
			Category: b.Category.Name,
			Budget:   b.Amount,
			Actual:   actual,
		})
	}

	return &MonthlySummary{
		TotalIncome:    totalIncome,
		TotalExpenses:  totalExpenses,
		Balance:        totalIncome.Sub(totalExpenses),
		BudgetVsActual: comparisons,
	}, nil
}

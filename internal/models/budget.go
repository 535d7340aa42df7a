package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents a monthly budget for a category. Only the month and
// year of Month are meaningful; the day of month is advisory. Budgets are
// deleted together with their category.
type Budget struct {
	Base
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	CategoryID uint            `gorm:"not null" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Month      time.Time       `gorm:"not null" json:"month"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}

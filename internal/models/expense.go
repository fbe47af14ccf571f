package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is money spent from a budget.
type Expense struct {
	DefaultModel
	Name     string          `json:"name" gorm:"not null" example:"Flight tickets"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);not null" example:"320.50"`
	BudgetID uuid.UUID       `json:"budgetId" gorm:"index;not null" example:"65392deb-5e92-4268-b114-297faad6cdce"`
}

// BelongsTo reports if the expense is part of the budget with the given ID.
func (e Expense) BelongsTo(budgetID uuid.UUID) bool {
	return e.BudgetID == budgetID
}

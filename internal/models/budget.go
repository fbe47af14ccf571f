package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a sum of money a user plans to spend.
//
// The owner of a budget is set on creation and never changes.
type Budget struct {
	DefaultModel
	Name     string          `json:"name" gorm:"not null" example:"Vacations"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);not null" example:"4000"`
	UserID   uuid.UUID       `json:"userId" gorm:"index;not null" example:"0b4f3a5a-0a51-4c8b-b3e3-3d5bd3d6f9e1"`
	User     User            `json:"-"`
	Expenses []Expense       `json:"expenses,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// OwnedBy reports if the budget belongs to the user with the given ID.
func (b Budget) OwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}

// Spent returns the sum of all expenses that are loaded for the budget.
func (b Budget) Spent() decimal.Decimal {
	spent := decimal.Zero
	for _, e := range b.Expenses {
		spent = spent.Add(e.Amount)
	}
	return spent
}

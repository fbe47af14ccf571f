package v1

import (
	"github.com/cashtracker/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable contains all fields of a budget that the owner can set.
type BudgetEditable struct {
	Name   string          `json:"name" binding:"required,max=255" example:"Vacations"`
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0" swaggertype:"number" example:"4000"`
}

func (e BudgetEditable) model(owner uuid.UUID) models.Budget {
	return models.Budget{
		Name:   e.Name,
		Amount: e.Amount,
		UserID: owner,
	}
}

// ExpenseEditable contains all fields of an expense that the owner can set.
type ExpenseEditable struct {
	Name   string          `json:"name" binding:"required,max=255" example:"Flight tickets"`
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0" swaggertype:"number" example:"320.50"`
}

func (e ExpenseEditable) model(budget uuid.UUID) models.Expense {
	return models.Expense{
		Name:     e.Name,
		Amount:   e.Amount,
		BudgetID: budget,
	}
}

// BudgetQueryFilter pages the budget list.
type BudgetQueryFilter struct {
	Offset uint `form:"offset"`                                   // The offset of the first budget returned
	Limit  int  `form:"limit" binding:"omitempty,min=1,max=1000"` // Maximum number of budgets to return
}

// ExpenseQueryFilter filters the expense list.
type ExpenseQueryFilter struct {
	Name string `form:"name"` // Glob pattern for the expense name, e.g. "Flight*"
}

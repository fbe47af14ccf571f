// Package repository defines the record store capabilities the cash tracker
// needs and implements them on top of gorm and in memory.
//
// All Find methods return an error wrapping models.ErrResourceNotFound if no
// record matches. Store failures wrap models.ErrGeneral.
package repository

import (
	"context"

	"github.com/cashtracker/backend/internal/models"
	"github.com/google/uuid"
)

// Page limits the records returned by list operations.
type Page struct {
	Offset int
	Limit  int // A negative limit returns all records
}

// All is the Page that does not limit results.
var All = Page{Offset: 0, Limit: -1}

// Users stores accounts.
type Users interface {
	FindByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByToken(ctx context.Context, token string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// Budgets stores budgets.
type Budgets interface {
	FindByID(ctx context.Context, id uuid.UUID) (models.Budget, error)
	ListByOwner(ctx context.Context, owner uuid.UUID, page Page) ([]models.Budget, int64, error)
	Create(ctx context.Context, budget *models.Budget) error
	Update(ctx context.Context, budget *models.Budget) error
	Delete(ctx context.Context, budget models.Budget) error
}

// Expenses stores expenses.
type Expenses interface {
	FindByID(ctx context.Context, id uuid.UUID) (models.Expense, error)
	ListByBudget(ctx context.Context, budget uuid.UUID) ([]models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) error
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, expense models.Expense) error
}

// Store bundles all repositories.
type Store struct {
	Users    Users
	Budgets  Budgets
	Expenses Expenses
}

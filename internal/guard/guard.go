// Package guard loads budgets and expenses for an authenticated user and
// enforces that the user owns them.
//
// Checks run in a fixed order: existence of the budget, ownership of the
// budget, existence of the expense, membership of the expense in the budget.
// The first failing check ends the chain.
package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/cashtracker/backend/internal/account"
	"github.com/cashtracker/backend/internal/models"
	"github.com/cashtracker/backend/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound     = errors.New("budget not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrInvalidAction      = errors.New("invalid action")
	ErrExpenseNotInBudget = errors.New("invalid action")
	ErrFault              = models.ErrGeneral
)

// Guard checks access to budgets and expenses.
type Guard struct {
	budgets  repository.Budgets
	expenses repository.Expenses
}

// New returns a Guard that loads resources from the given repositories.
func New(budgets repository.Budgets, expenses repository.Expenses) *Guard {
	return &Guard{budgets: budgets, expenses: expenses}
}

// Budget returns the budget with the given ID if it is owned by identity.
func (g *Guard) Budget(ctx context.Context, identity account.Identity, id uuid.UUID) (models.Budget, error) {
	budget, err := g.budgets.FindByID(ctx, id)
	if err != nil {
		return models.Budget{}, classify(err, ErrBudgetNotFound)
	}

	if !budget.OwnedBy(identity.UserID) {
		deniedTotal.WithLabelValues("budget").Inc()
		return models.Budget{}, ErrInvalidAction
	}

	return budget, nil
}

// Expense returns the expense with the given ID if it is part of budget.
//
// The budget must have been loaded with Budget.
func (g *Guard) Expense(ctx context.Context, budget models.Budget, id uuid.UUID) (models.Expense, error) {
	expense, err := g.expenses.FindByID(ctx, id)
	if err != nil {
		return models.Expense{}, classify(err, ErrExpenseNotFound)
	}

	if !expense.BelongsTo(budget.ID) {
		deniedTotal.WithLabelValues("expense").Inc()
		return models.Expense{}, ErrExpenseNotInBudget
	}

	return expense, nil
}

func classify(err, notFound error) error {
	if errors.Is(err, models.ErrResourceNotFound) {
		return notFound
	}

	if errors.Is(err, models.ErrGeneral) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrFault, err)
}

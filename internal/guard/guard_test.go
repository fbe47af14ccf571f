package guard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cashtracker/backend/internal/account"
	"github.com/cashtracker/backend/internal/guard"
	"github.com/cashtracker/backend/internal/models"
	"github.com/cashtracker/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	guard  *guard.Guard
	memory *repository.Memory
	store  repository.Store
}

func setup() fixture {
	memory := repository.NewMemory()
	store := memory.Store()

	return fixture{
		guard:  guard.New(store.Budgets, store.Expenses),
		memory: memory,
		store:  store,
	}
}

func (f fixture) user(t *testing.T, address string) account.Identity {
	user := models.User{Name: "Test", Email: address, Password: "x", Confirmed: true}
	require.Nil(t, f.store.Users.Create(context.Background(), &user))
	return account.Identity{UserID: user.ID, User: user}
}

func (f fixture) budget(t *testing.T, owner account.Identity) models.Budget {
	budget := models.Budget{Name: "Vacations", Amount: decimal.NewFromInt(4000), UserID: owner.UserID}
	require.Nil(t, f.store.Budgets.Create(context.Background(), &budget))
	return budget
}

func (f fixture) expense(t *testing.T, budget models.Budget) models.Expense {
	expense := models.Expense{Name: "Flight", Amount: decimal.NewFromInt(300), BudgetID: budget.ID}
	require.Nil(t, f.store.Expenses.Create(context.Background(), &expense))
	return expense
}

func TestBudgetOwnershipIsolation(t *testing.T) {
	f := setup()
	ctx := context.Background()

	owners := []account.Identity{
		f.user(t, "a@t.com"),
		f.user(t, "b@t.com"),
		f.user(t, "c@t.com"),
	}

	budgets := make(map[uuid.UUID]models.Budget)
	for _, owner := range owners {
		for i := 0; i < 2; i++ {
			b := f.budget(t, owner)
			budgets[b.ID] = b
		}
	}

	// Every user can load exactly their own budgets
	for _, identity := range owners {
		for id, b := range budgets {
			loaded, err := f.guard.Budget(ctx, identity, id)
			if b.UserID == identity.UserID {
				require.Nil(t, err)
				assert.Equal(t, id, loaded.ID)
			} else {
				assert.ErrorIs(t, err, guard.ErrInvalidAction)
				assert.Equal(t, uuid.Nil, loaded.ID, "no budget is returned when access is denied")
			}
		}
	}
}

func TestBudgetNotFound(t *testing.T) {
	f := setup()
	identity := f.user(t, "a@t.com")

	_, err := f.guard.Budget(context.Background(), identity, uuid.New())
	assert.ErrorIs(t, err, guard.ErrBudgetNotFound)
}

func TestBudgetNotFoundBeforeOwnership(t *testing.T) {
	f := setup()

	// An identity that owns nothing and a budget ID that does not exist
	_, err := f.guard.Budget(context.Background(), account.Identity{UserID: uuid.New()}, uuid.New())
	assert.ErrorIs(t, err, guard.ErrBudgetNotFound)
}

func TestBudgetFault(t *testing.T) {
	f := setup()
	identity := f.user(t, "a@t.com")
	budget := f.budget(t, identity)

	f.memory.FailWith(errors.New("database is locked"))
	_, err := f.guard.Budget(context.Background(), identity, budget.ID)
	assert.ErrorIs(t, err, guard.ErrFault)
	assert.NotErrorIs(t, err, guard.ErrBudgetNotFound)
}

func TestExpense(t *testing.T) {
	f := setup()
	ctx := context.Background()
	identity := f.user(t, "a@t.com")

	budget, err := f.guard.Budget(ctx, identity, f.budget(t, identity).ID)
	require.Nil(t, err)
	other := f.budget(t, identity)

	expense := f.expense(t, budget)
	foreign := f.expense(t, other)

	loaded, err := f.guard.Expense(ctx, budget, expense.ID)
	require.Nil(t, err)
	assert.Equal(t, expense.ID, loaded.ID)

	_, err = f.guard.Expense(ctx, budget, foreign.ID)
	assert.ErrorIs(t, err, guard.ErrExpenseNotInBudget)

	_, err = f.guard.Expense(ctx, budget, uuid.New())
	assert.ErrorIs(t, err, guard.ErrExpenseNotFound)

	f.memory.FailWith(errors.New("database is locked"))
	_, err = f.guard.Expense(ctx, budget, expense.ID)
	assert.ErrorIs(t, err, guard.ErrFault)
}

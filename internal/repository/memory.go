package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cashtracker/backend/internal/models"
	"github.com/google/uuid"
)

// Memory is a Store kept in process memory. It is safe for concurrent use
// and behaves like the gorm Store with regard to errors.
type Memory struct {
	mu       sync.Mutex
	failWith error

	users    map[uuid.UUID]models.User
	budgets  map[uuid.UUID]models.Budget
	expenses map[uuid.UUID]models.Expense
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:    make(map[uuid.UUID]models.User),
		budgets:  make(map[uuid.UUID]models.Budget),
		expenses: make(map[uuid.UUID]models.Expense),
	}
}

// Store returns the repositories backed by m.
func (m *Memory) Store() Store {
	return Store{
		Users:    memoryUsers{m},
		Budgets:  memoryBudgets{m},
		Expenses: memoryExpenses{m},
	}
}

// FailWith makes every following operation return err wrapped in
// models.ErrGeneral. Passing nil restores normal operation.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func (m *Memory) lock() error {
	m.mu.Lock()
	if m.failWith != nil {
		err := m.failWith
		m.mu.Unlock()
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}
	return nil
}

func notFound(resource string) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, resource)
}

func stamp(m *models.DefaultModel, create bool) {
	now := time.Now().In(time.UTC)
	if create {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

type memoryUsers struct{ m *Memory }

func (r memoryUsers) FindByID(_ context.Context, id uuid.UUID) (models.User, error) {
	if err := r.m.lock(); err != nil {
		return models.User{}, err
	}
	defer r.m.mu.Unlock()

	u, ok := r.m.users[id]
	if !ok {
		return models.User{}, notFound("user")
	}
	return u, nil
}

func (r memoryUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	if err := r.m.lock(); err != nil {
		return models.User{}, err
	}
	defer r.m.mu.Unlock()

	email = normalizeEmail(email)
	for _, u := range r.m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, notFound("user")
}

func (r memoryUsers) FindByToken(_ context.Context, token string) (models.User, error) {
	if err := r.m.lock(); err != nil {
		return models.User{}, err
	}
	defer r.m.mu.Unlock()

	for _, u := range r.m.users {
		if u.HasToken() && *u.Token == token {
			return u, nil
		}
	}
	return models.User{}, notFound("user")
}

func (r memoryUsers) Create(_ context.Context, user *models.User) error {
	if err := r.m.lock(); err != nil {
		return err
	}
	defer r.m.mu.Unlock()

	user.Email = normalizeEmail(user.Email)
	for _, u := range r.m.users {
		if u.Email == user.Email {
			return models.ErrEmailNotUnique
		}
	}

	stamp(&user.DefaultModel, true)
	r.m.users[user.ID] = *user
	return nil
}

func (r memoryUsers) Update(_ context.Context, user *models.User) error {
	if err := r.m.lock(); err != nil {
		return err
	}
	defer r.m.mu.Unlock()

	stored, ok := r.m.users[user.ID]
	if !ok {
		return notFound("user")
	}

	stored.Name = user.Name
	stored.Password = user.Password
	stored.Token = user.Token
	stored.Confirmed = user.Confirmed
	stamp(&stored.DefaultModel, false)

	r.m.users[user.ID] = stored
	*user = stored
	return nil
}

type memoryBudgets struct{ m *Memory }

func (r memoryBudgets) FindByID(_ context.Context, id uuid.UUID) (models.Budget, error) {
	if err := r.m.lock(); err != nil {
		return models.Budget{}, err
	}
	defer r.m.mu.Unlock()

	b, ok := r.m.budgets[id]
	if !ok {
		return models.Budget{}, notFound("budget")
	}

	b.Expenses = r.m.expensesOf(id)
	return b, nil
}

func (r memoryBudgets) ListByOwner(_ context.Context, owner uuid.UUID, page Page) ([]models.Budget, int64, error) {
	if err := r.m.lock(); err != nil {
		return nil, 0, err
	}
	defer r.m.mu.Unlock()

	budgets := make([]models.Budget, 0)
	for _, b := range r.m.budgets {
		if b.UserID == owner {
			budgets = append(budgets, b)
		}
	}

	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.After(budgets[j].CreatedAt)
	})

	total := int64(len(budgets))
	if page.Offset >= len(budgets) {
		return []models.Budget{}, total, nil
	}

	budgets = budgets[page.Offset:]
	if page.Limit >= 0 && page.Limit < len(budgets) {
		budgets = budgets[:page.Limit]
	}

	return budgets, total, nil
}

func (r memoryBudgets) Create(_ context.Context, budget *models.Budget) error {
	if err := r.m.lock(); err != nil {
		return err
	}
	defer r.m.mu.Unlock()

	stamp(&budget.DefaultModel, true)
	stored := *budget
	stored.Expenses = nil
	r.m.budgets[budget.ID] = stored
	return nil
}

func (r memoryBudgets) Update(_ context.Context, budget *models.Budget) error {
	if err := r.m.lock(); err != nil {
		return err
	}
	defer r.m.mu.Unlock()

	stored, ok := r.m.budgets[budget.ID]
	if !ok {
		return notFound("budget")
	}

	stored.Name = budget.Name
	stored.Amount = budget.Amount
	stamp(&stored.DefaultModel, false)
	r.m.budgets[budget.ID] = stored

	budget.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r memoryBudgets) Delete(_ context.Context, budget models.Budget) error {
	if err := r.m.lock(); err != nil {
		return err
	}
	defer r.m.mu.Unlock()

	delete(r.m.budgets, budget.ID)
	for id, e := range r.m.expenses {
		if e.BudgetID == budget.ID {
			delete(r.m.expenses, id)
		}
	}
	return nil
}

type memoryExpenses struct{ m *Memory }

func (r memoryExpenses) FindByID(_ context.Context, id uuid.UUID) (models.Expense, error) {
	if err := r.m.lock(); err != nil {
		return models.Expense{}, err
	}
	defer r.m.mu.Unlock()

	e, ok := r.m.expenses[id]
	if !ok {
		return models.Expense{}, notFound("expense")
	}
	return e, nil
}

func (r memoryExpenses) ListByBudget(_ context.Context, budget uuid.UUID) ([]models.Expense, error) {
	if err := r.m.lock(); err != nil {
		return nil, err
	}
	defer r.m.mu.Unlock()

	return r.m.expensesOf(budget), nil
}

func (r memoryExpenses) Create(_ context.Context, expense *models.Expense) error {
	if err := r.m.lock(); err != nil {
		return err
	}
	defer r.m.mu.Unlock()

	if _, ok := r.m.budgets[expense.BudgetID]; !ok {
		return notFound("budget")
	}

	stamp(&expense.DefaultModel, true)
	r.m.expenses[expense.ID] = *expense
	return nil
}

func (r memoryExpenses) Update(_ context.Context, expense *models.Expense) error {
	if err := r.m.lock(); err != nil {
		return err
	}
	defer r.m.mu.Unlock()

	stored, ok := r.m.expenses[expense.ID]
	if !ok {
		return notFound("expense")
	}

	stored.Name = expense.Name
	stored.Amount = expense.Amount
	stamp(&stored.DefaultModel, false)
	r.m.expenses[expense.ID] = stored

	expense.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r memoryExpenses) Delete(_ context.Context, expense models.Expense) error {
	if err := r.m.lock(); err != nil {
		return err
	}
	defer r.m.mu.Unlock()

	delete(r.m.expenses, expense.ID)
	return nil
}

// expensesOf must be called with m.mu held.
func (m *Memory) expensesOf(budget uuid.UUID) []models.Expense {
	expenses := make([]models.Expense, 0)
	for _, e := range m.expenses {
		if e.BudgetID == budget {
			expenses = append(expenses, e)
		}
	}

	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].CreatedAt.Before(expenses[j].CreatedAt)
	})
	return expenses
}

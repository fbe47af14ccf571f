package repository

import (
	"context"
	"strings"

	"github.com/cashtracker/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewGorm returns a Store backed by the database.
func NewGorm(db *gorm.DB) Store {
	return Store{
		Users:    gormUsers{db: db},
		Budgets:  gormBudgets{db: db},
		Expenses: gormExpenses{db: db},
	}
}

type gormUsers struct {
	db *gorm.DB
}

func (r gormUsers) FindByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return user, err
}

func (r gormUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", normalizeEmail(email)).Error
	return user, err
}

func (r gormUsers) FindByToken(ctx context.Context, token string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "token = ?", token).Error
	return user, err
}

func (r gormUsers) Create(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	return r.db.WithContext(ctx).Create(user).Error
}

func (r gormUsers) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).
		Model(user).
		Select("Name", "Password", "Token", "Confirmed").
		Updates(user).
		Error
}

type gormBudgets struct {
	db *gorm.DB
}

func (r gormBudgets) FindByID(ctx context.Context, id uuid.UUID) (models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).
		Preload("Expenses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&budget, "id = ?", id).
		Error
	return budget, err
}

func (r gormBudgets) ListByOwner(ctx context.Context, owner uuid.UUID, page Page) ([]models.Budget, int64, error) {
	var budgets []models.Budget

	q := r.db.WithContext(ctx).
		Model(&models.Budget{}).
		Where("user_id = ?", owner).
		Session(&gorm.Session{})

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		return nil, 0, err
	}

	err = q.Order("created_at DESC").Offset(page.Offset).Limit(page.Limit).Find(&budgets).Error
	if err != nil {
		return nil, 0, err
	}

	return budgets, count, nil
}

func (r gormBudgets) Create(ctx context.Context, budget *models.Budget) error {
	return r.db.WithContext(ctx).Omit("User", "Expenses").Create(budget).Error
}

// Update writes name and amount. The owner of a budget never changes.
func (r gormBudgets) Update(ctx context.Context, budget *models.Budget) error {
	return r.db.WithContext(ctx).
		Model(budget).
		Select("Name", "Amount").
		Updates(budget).
		Error
}

func (r gormBudgets) Delete(ctx context.Context, budget models.Budget) error {
	return r.db.WithContext(ctx).Select("Expenses").Delete(&budget).Error
}

type gormExpenses struct {
	db *gorm.DB
}

func (r gormExpenses) FindByID(ctx context.Context, id uuid.UUID) (models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	return expense, err
}

func (r gormExpenses) ListByBudget(ctx context.Context, budget uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Where("budget_id = ?", budget).
		Order("created_at ASC").
		Find(&expenses).
		Error
	return expenses, err
}

func (r gormExpenses) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// Update writes name and amount. Expenses cannot be moved between budgets.
func (r gormExpenses) Update(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).
		Model(expense).
		Select("Name", "Amount").
		Updates(expense).
		Error
}

func (r gormExpenses) Delete(ctx context.Context, expense models.Expense) error {
	return r.db.WithContext(ctx).Delete(&expense).Error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

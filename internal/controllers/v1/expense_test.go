package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cashtracker/backend/internal/models"
	"github.com/cashtracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpensesCRUD() {
	token := suite.createUser("t@t.com")
	budget := suite.createBudget(token, "Vacations")
	expense := suite.createExpense(token, budget.ID, "Flights", 320.5)

	suite.Assert().Equal(budget.ID, expense.BudgetID)
	suite.Assert().True(decimal.RequireFromString("320.5").Equal(expense.Amount))

	path := fmt.Sprintf("/api/budgets/%s/expenses/%s", budget.ID, expense.ID)

	r := suite.request(http.MethodGet, path, nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	r = suite.request(http.MethodPut, path, map[string]any{"name": "Trains", "amount": 80}, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	r = suite.request(http.MethodGet, path, nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	var updated models.Expense
	test.DecodeResponse(suite.T(), r, &updated)
	suite.Assert().Equal("Trains", updated.Name)
	suite.Assert().True(decimal.NewFromInt(80).Equal(updated.Amount))
	suite.Assert().Equal(budget.ID, updated.BudgetID)

	r = suite.request(http.MethodDelete, path, nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	var msg string
	test.DecodeResponse(suite.T(), r, &msg)
	suite.Assert().Equal("expense deleted", msg)

	r = suite.request(http.MethodGet, path, nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, r)
	suite.Assert().Equal("expense not found", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalid() {
	token := suite.createUser("t@t.com")
	budget := suite.createBudget(token, "Vacations")
	path := fmt.Sprintf("/api/budgets/%s/expenses", budget.ID)

	errs := suite.validationErrors(suite.request(http.MethodPost, path, map[string]any{}, test.Bearer(token)))
	suite.Assert().Len(errs, 2)

	errs = suite.validationErrors(suite.request(http.MethodPost, path, map[string]any{"name": "Flights", "amount": -1}, test.Bearer(token)))
	suite.Require().Len(errs, 1)
	suite.Assert().Equal("amount", errs[0].Path)

	// Shape errors win over a budget that does not exist
	errs = suite.validationErrors(suite.request(http.MethodPost, "/api/budgets/"+uuid.New().String()+"/expenses", map[string]any{}, test.Bearer(token)))
	suite.Assert().Len(errs, 2)

	errs = suite.validationErrors(suite.request(http.MethodGet, path+"/not-a-uuid", nil, test.Bearer(token)))
	suite.Require().Len(errs, 1)
	suite.Assert().Equal("expenseId", errs[0].Path)
	suite.Assert().Equal("params", errs[0].Location)
}

func (suite *TestSuiteStandard) TestExpensesFilter() {
	token := suite.createUser("t@t.com")
	budget := suite.createBudget(token, "Vacations")

	suite.createExpense(token, budget.ID, "Flight there", 300)
	suite.createExpense(token, budget.ID, "Flight back", 280)
	suite.createExpense(token, budget.ID, "Hotel", 500)

	tests := []struct {
		query string
		len   int
	}{
		{"", 3},
		{"?name=Flight*", 2},
		{"?name=*back", 1},
		{"?name=Hotel", 1},
		{"?name=Museum", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(_ *testing.T) {
			r := suite.request(http.MethodGet, fmt.Sprintf("/api/budgets/%s/expenses%s", budget.ID, tt.query), nil, test.Bearer(token))
			test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

			var expenses []models.Expense
			test.DecodeResponse(suite.T(), r, &expenses)
			suite.Assert().Len(expenses, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesOfOtherBudget() {
	token := suite.createUser("t@t.com")
	vacations := suite.createBudget(token, "Vacations")
	groceries := suite.createBudget(token, "Groceries")
	expense := suite.createExpense(token, vacations.ID, "Flights", 300)

	// The expense exists, but not in the addressed budget
	path := fmt.Sprintf("/api/budgets/%s/expenses/%s", groceries.ID, expense.ID)
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		r := suite.request(method, path, nil, test.Bearer(token))
		test.AssertHTTPStatus(suite.T(), http.StatusForbidden, r)
		suite.Assert().Equal("invalid action", test.DecodeError(suite.T(), r.Body.Bytes()))
	}

	r := suite.request(http.MethodPut, path, map[string]any{"name": "Bread", "amount": 3}, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, r)

	r = suite.request(http.MethodGet, fmt.Sprintf("/api/budgets/%s/expenses/%s", vacations.ID, expense.ID), nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	var unchanged models.Expense
	test.DecodeResponse(suite.T(), r, &unchanged)
	suite.Assert().Equal("Flights", unchanged.Name)
}

func (suite *TestSuiteStandard) TestExpensesOfOtherUser() {
	owner := suite.createUser("owner@t.com")
	other := suite.createUser("other@t.com")

	budget := suite.createBudget(owner, "Vacations")
	expense := suite.createExpense(owner, budget.ID, "Flights", 300)

	// Ownership of the budget is checked before the expense is looked up
	for _, id := range []uuid.UUID{expense.ID, uuid.New()} {
		r := suite.request(http.MethodGet, fmt.Sprintf("/api/budgets/%s/expenses/%s", budget.ID, id), nil, test.Bearer(other))
		test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, r)
		suite.Assert().Equal("invalid action", test.DecodeError(suite.T(), r.Body.Bytes()))
	}
}

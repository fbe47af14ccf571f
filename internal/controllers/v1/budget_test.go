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

func (suite *TestSuiteStandard) TestBudgetsUnauthenticated() {
	r := suite.request(http.MethodGet, "/api/budgets", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, r)
	suite.Assert().Equal("unauthorized", test.DecodeError(suite.T(), r.Body.Bytes()))

	tests := []struct {
		name   string
		header map[string]string
	}{
		{"Not a JWT", test.Bearer("not_valid")},
		{"Wrong scheme", map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}},
		{"Scheme only", map[string]string{"Authorization": "Bearer"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(_ *testing.T) {
			r := suite.request(http.MethodGet, "/api/budgets", nil, tt.header)
			test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, r)
			suite.Assert().Equal("invalid token", test.DecodeError(suite.T(), r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsValidationBeforeAuthentication() {
	// The body is checked before the missing token
	errs := suite.validationErrors(suite.request(http.MethodPost, "/api/budgets", map[string]any{}))
	suite.Require().Len(errs, 2)
	suite.Assert().Equal("name", errs[0].Path)
	suite.Assert().Equal("amount", errs[1].Path)

	errs = suite.validationErrors(suite.request(http.MethodGet, "/api/budgets/1", nil))
	suite.Require().Len(errs, 1)
	suite.Assert().Equal("params", errs[0].Location)
	suite.Assert().Equal("budgetId", errs[0].Path)
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	token := suite.createUser("t@t.com")

	tests := []struct {
		name  string
		body  any
		paths []string
	}{
		{"Negative amount", map[string]any{"name": "Vacations", "amount": -5}, []string{"amount"}},
		{"Zero amount", map[string]any{"name": "Vacations", "amount": 0}, []string{"amount"}},
		{"Missing name", map[string]any{"amount": 100}, []string{"name"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(_ *testing.T) {
			errs := suite.validationErrors(suite.request(http.MethodPost, "/api/budgets", tt.body, test.Bearer(token)))
			suite.Require().Len(errs, len(tt.paths))
			for i, path := range tt.paths {
				suite.Assert().Equal(path, errs[i].Path)
				suite.Assert().Equal("body", errs[i].Location)
			}
		})
	}

	r := suite.request(http.MethodPost, "/api/budgets", "", test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, r)
	suite.Assert().Equal("the request body must not be empty", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPost, "/api/budgets", `{"name": "Vacations", "amount": "abc"}`, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, r)

	suite.Assert().Empty(suite.listBudgets(token))
}

func (suite *TestSuiteStandard) TestBudgetsCRUD() {
	token := suite.createUser("t@t.com")
	budget := suite.createBudget(token, "Vacations")

	suite.Assert().Equal("Vacations", budget.Name)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(budget.Amount))

	path := fmt.Sprintf("/api/budgets/%s", budget.ID)

	r := suite.request(http.MethodPut, path, map[string]any{"name": "Holidays", "amount": 1500.5}, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	var msg string
	test.DecodeResponse(suite.T(), r, &msg)
	suite.Assert().Equal("budget updated", msg)

	suite.createExpense(token, budget.ID, "Flights", 300)

	r = suite.request(http.MethodGet, path, nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	var updated models.Budget
	test.DecodeResponse(suite.T(), r, &updated)
	suite.Assert().Equal("Holidays", updated.Name)
	suite.Assert().True(decimal.RequireFromString("1500.5").Equal(updated.Amount))
	suite.Assert().Equal(budget.UserID, updated.UserID)
	suite.Require().Len(updated.Expenses, 1)
	suite.Assert().True(decimal.NewFromInt(300).Equal(updated.Spent()))

	r = suite.request(http.MethodDelete, path, nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	r = suite.request(http.MethodGet, path, nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, r)
	suite.Assert().Equal("budget not found", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodGet, path+"/expenses", nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, r)
}

func (suite *TestSuiteStandard) TestBudgetsNotFound() {
	token := suite.createUser("t@t.com")

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		r := suite.request(method, "/api/budgets/"+uuid.New().String(), nil, test.Bearer(token))
		test.AssertHTTPStatus(suite.T(), http.StatusNotFound, r)
		suite.Assert().Equal("budget not found", test.DecodeError(suite.T(), r.Body.Bytes()))
	}
}

func (suite *TestSuiteStandard) TestBudgetsOwnership() {
	owner := suite.createUser("owner@t.com")
	other := suite.createUser("other@t.com")

	budget := suite.createBudget(owner, "Vacations")
	path := fmt.Sprintf("/api/budgets/%s", budget.ID)

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, path, nil},
		{http.MethodPut, path, map[string]any{"name": "Mine now", "amount": 1}},
		{http.MethodDelete, path, nil},
		{http.MethodGet, path + "/expenses", nil},
		{http.MethodPost, path + "/expenses", map[string]any{"name": "Sneaky", "amount": 1}},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(_ *testing.T) {
			r := suite.request(tt.method, tt.path, tt.body, test.Bearer(other))
			test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, r)
			suite.Assert().Equal("invalid action", test.DecodeError(suite.T(), r.Body.Bytes()))
		})
	}

	// Nothing changed for the owner
	suite.Require().Len(suite.listBudgets(owner), 1)
	suite.Assert().Equal("Vacations", suite.listBudgets(owner)[0].Name)
	suite.Assert().Empty(suite.listBudgets(other))

	r := suite.request(http.MethodGet, path+"/expenses", nil, test.Bearer(owner))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), r, &expenses)
	suite.Assert().Empty(expenses)
}

func (suite *TestSuiteStandard) TestBudgetsPaging() {
	token := suite.createUser("t@t.com")
	for i := range 5 {
		suite.createBudget(token, fmt.Sprintf("Budget %d", i))
	}

	// Another user's budgets never show up
	suite.createBudget(suite.createUser("other@t.com"), "Other")

	tests := []struct {
		query string
		len   int
	}{
		{"", 5},
		{"?limit=2", 2},
		{"?offset=3", 2},
		{"?offset=4&limit=3", 1},
		{"?offset=10", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(_ *testing.T) {
			r := suite.request(http.MethodGet, "/api/budgets"+tt.query, nil, test.Bearer(token))
			test.AssertHTTPStatus(suite.T(), http.StatusOK, r)
			suite.Assert().Equal("5", r.Header().Get("X-Total-Count"))

			var budgets []models.Budget
			test.DecodeResponse(suite.T(), r, &budgets)
			suite.Assert().Len(budgets, tt.len)
		})
	}

	for _, query := range []string{"?limit=abc", "?limit=5000", "?offset=-1"} {
		r := suite.request(http.MethodGet, "/api/budgets"+query, nil, test.Bearer(token))
		test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, r)
	}
}

func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	token := suite.createUser("t@t.com")
	suite.CloseDB()

	r := suite.request(http.MethodGet, "/api/budgets/"+uuid.New().String(), nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, r)
	suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

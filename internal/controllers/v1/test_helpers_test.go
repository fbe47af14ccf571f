package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/cashtracker/backend/internal/httputil"
	"github.com/cashtracker/backend/internal/models"
	"github.com/cashtracker/backend/test"
	"github.com/google/uuid"
)

// createUser registers and confirms an account and returns a session token for it.
func (suite *TestSuiteStandard) createUser(address string) string {
	r := suite.request(http.MethodPost, "/api/auth/create-account", map[string]any{
		"name":     "Test",
		"email":    address,
		"password": "password",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, r)

	r = suite.request(http.MethodPost, "/api/auth/confirm-account", map[string]any{"token": suite.notifier.last().Token})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	return suite.login(address, "password")
}

func (suite *TestSuiteStandard) login(address, password string) string {
	r := suite.request(http.MethodPost, "/api/auth/login", map[string]any{
		"email":    address,
		"password": password,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	var token string
	test.DecodeResponse(suite.T(), r, &token)
	return token
}

// createBudget creates a budget and returns it.
func (suite *TestSuiteStandard) createBudget(token, name string) models.Budget {
	r := suite.request(http.MethodPost, "/api/budgets", map[string]any{"name": name, "amount": 1000}, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, r)

	for _, b := range suite.listBudgets(token) {
		if b.Name == name {
			return b
		}
	}

	suite.FailNow("created budget is not listed", name)
	return models.Budget{}
}

func (suite *TestSuiteStandard) listBudgets(token string) []models.Budget {
	r := suite.request(http.MethodGet, "/api/budgets", nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), r, &budgets)
	return budgets
}

// createExpense creates an expense and returns it.
func (suite *TestSuiteStandard) createExpense(token string, budget uuid.UUID, name string, amount float64) models.Expense {
	path := fmt.Sprintf("/api/budgets/%s/expenses", budget)

	r := suite.request(http.MethodPost, path, map[string]any{"name": name, "amount": amount}, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, r)

	r = suite.request(http.MethodGet, path+"?name="+url.QueryEscape(name), nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), r, &expenses)
	suite.Require().Len(expenses, 1)

	return expenses[0]
}

// validationErrors decodes the list of a validation error response.
func (suite *TestSuiteStandard) validationErrors(r *httptest.ResponseRecorder) []httputil.ValidationError {
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, r)

	var v httputil.ValidationErrors
	test.DecodeResponse(suite.T(), r, &v)
	return v.Errors
}

package v1_test

import (
	"net/http"
	"testing"

	"github.com/cashtracker/backend/internal/models"
	"github.com/cashtracker/backend/test"
)

func (suite *TestSuiteStandard) TestCreateAccount() {
	r := suite.request(http.MethodPost, "/api/auth/create-account", map[string]any{
		"name":     "T",
		"email":    "t@t.com",
		"password": "password",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, r)
	suite.Assert().NotContains(r.Body.String(), "errors")

	// Same address again
	r = suite.request(http.MethodPost, "/api/auth/create-account", map[string]any{
		"name":     "T",
		"email":    "t@t.com",
		"password": "password",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, r)
	suite.Assert().Equal("duplicate email", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCreateAccountValidation() {
	tests := []struct {
		name  string
		body  map[string]any
		paths []string
	}{
		{"Empty form", map[string]any{}, []string{"name", "email", "password"}},
		{"Invalid email", map[string]any{"name": "T", "email": "not_valid", "password": "12345678"}, []string{"email"}},
		{"Short password", map[string]any{"name": "T", "email": "t@t.com", "password": "short"}, []string{"password"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(_ *testing.T) {
			r := suite.request(http.MethodPost, "/api/auth/create-account", tt.body)
			errs := suite.validationErrors(r)

			suite.Require().Len(errs, len(tt.paths))
			for i, path := range tt.paths {
				suite.Assert().Equal(path, errs[i].Path)
			}
		})
	}

	suite.Assert().Empty(suite.notifier.events, "no mail is sent for invalid requests")
}

func (suite *TestSuiteStandard) TestConfirmAccount() {
	r := suite.request(http.MethodPost, "/api/auth/create-account", map[string]any{
		"name":     "T",
		"email":    "t@t.com",
		"password": "password",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, r)
	token := suite.notifier.last().Token

	// Malformed tokens are rejected by validation, not by lookup
	errs := suite.validationErrors(suite.request(http.MethodPost, "/api/auth/confirm-account", map[string]any{"token": "not_valid"}))
	suite.Require().Len(errs, 1)
	suite.Assert().Equal("token", errs[0].Path)

	// A well-formed token that nobody holds
	unknown := "123456"
	if unknown == token {
		unknown = "654321"
	}
	r = suite.request(http.MethodPost, "/api/auth/confirm-account", map[string]any{"token": unknown})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, r)
	suite.Assert().Equal("invalid token", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPost, "/api/auth/confirm-account", map[string]any{"token": token})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	var msg string
	test.DecodeResponse(suite.T(), r, &msg)
	suite.Assert().Equal("account confirmed", msg)

	// Tokens can only be used once
	r = suite.request(http.MethodPost, "/api/auth/confirm-account", map[string]any{"token": token})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, r)
	suite.Assert().Equal("invalid token", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestLogin() {
	errs := suite.validationErrors(suite.request(http.MethodPost, "/api/auth/login", map[string]any{}))
	suite.Assert().Len(errs, 2)

	r := suite.request(http.MethodPost, "/api/auth/login", map[string]any{"email": "nobody@t.com", "password": "password"})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, r)
	suite.Assert().Equal("user not found", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPost, "/api/auth/create-account", map[string]any{"name": "T", "email": "t@t.com", "password": "password"})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, r)

	// Unconfirmed accounts are rejected before the password is checked
	for _, password := range []string{"password", "wrongPassword"} {
		r = suite.request(http.MethodPost, "/api/auth/login", map[string]any{"email": "t@t.com", "password": password})
		test.AssertHTTPStatus(suite.T(), http.StatusForbidden, r)
		suite.Assert().Equal("not confirmed", test.DecodeError(suite.T(), r.Body.Bytes()))
	}

	r = suite.request(http.MethodPost, "/api/auth/confirm-account", map[string]any{"token": suite.notifier.last().Token})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	r = suite.request(http.MethodPost, "/api/auth/login", map[string]any{"email": "t@t.com", "password": "wrongPassword"})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, r)
	suite.Assert().Equal("incorrect password", test.DecodeError(suite.T(), r.Body.Bytes()))

	token := suite.login("t@t.com", "password")
	suite.Assert().NotEmpty(token)
}

func (suite *TestSuiteStandard) TestGetUser() {
	token := suite.createUser("t@t.com")

	r := suite.request(http.MethodGet, "/api/auth/user", nil, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)
	suite.Assert().NotContains(r.Body.String(), "password")

	var user models.User
	test.DecodeResponse(suite.T(), r, &user)
	suite.Assert().Equal("t@t.com", user.Email)
	suite.Assert().True(user.Confirmed)

	r = suite.request(http.MethodGet, "/api/auth/user", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, r)
	suite.Assert().Equal("unauthorized", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestPasswordReset() {
	suite.createUser("t@t.com")

	r := suite.request(http.MethodPost, "/api/auth/forgot-password", map[string]any{"email": "nobody@t.com"})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, r)

	r = suite.request(http.MethodPost, "/api/auth/forgot-password", map[string]any{"email": "t@t.com"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)
	token := suite.notifier.last().Token

	unknown := "000000"
	if unknown == token {
		unknown = "111111"
	}

	r = suite.request(http.MethodPost, "/api/auth/validate-token", map[string]any{"token": unknown})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, r)
	suite.Assert().Equal("invalid token", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPost, "/api/auth/validate-token", map[string]any{"token": token})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	errs := suite.validationErrors(suite.request(http.MethodPost, "/api/auth/reset-password/abc", map[string]any{"password": "new-password"}))
	suite.Require().Len(errs, 1)
	suite.Assert().Equal("params", errs[0].Location)

	r = suite.request(http.MethodPost, "/api/auth/reset-password/"+token, map[string]any{"password": "new-password"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	r = suite.request(http.MethodPost, "/api/auth/reset-password/"+token, map[string]any{"password": "new-password"})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, r)

	suite.login("t@t.com", "new-password")
}

func (suite *TestSuiteStandard) TestUpdateAndCheckPassword() {
	token := suite.createUser("t@t.com")

	r := suite.request(http.MethodPost, "/api/auth/check-password", map[string]any{"password": "password"}, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	r = suite.request(http.MethodPost, "/api/auth/check-password", map[string]any{"password": "nope"}, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, r)
	suite.Assert().Equal("incorrect password", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPost, "/api/auth/update-password", map[string]any{"current_password": "nope", "password": "new-password"}, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, r)

	r = suite.request(http.MethodPost, "/api/auth/update-password", map[string]any{"current_password": "password", "password": "new-password"}, test.Bearer(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, r)

	suite.login("t@t.com", "new-password")
}

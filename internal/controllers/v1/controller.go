// Package v1 contains the HTTP handlers of the cash tracker API.
//
// Every handler runs the same pipeline: the shape of the request is
// validated, then the user is authenticated, then the addressed budget and
// expense are loaded and checked for ownership. Only then the operation
// itself runs. The first failing stage writes the response.
package v1

import (
	"github.com/cashtracker/backend/internal/account"
	"github.com/cashtracker/backend/internal/guard"
	"github.com/cashtracker/backend/internal/httputil"
	"github.com/cashtracker/backend/internal/repository"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	Accounts *account.Service
	Guard    *guard.Guard
	Store    repository.Store
}

// New returns a Controller for store.
func New(store repository.Store, accounts *account.Service) Controller {
	return Controller{
		Accounts: accounts,
		Guard:    guard.New(store.Budgets, store.Expenses),
		Store:    store,
	}
}

// authenticate returns the identity of the user making the request.
// If the request is not authenticated, it writes the error response
// and returns false.
func (co Controller) authenticate(c *gin.Context) (account.Identity, bool) {
	identity, err := co.Accounts.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		httputil.Error(c, err)
		return account.Identity{}, false
	}

	return identity, true
}

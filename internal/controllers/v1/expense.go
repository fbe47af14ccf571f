package v1

import (
	"net/http"

	"github.com/cashtracker/backend/internal/httputil"
	"github.com/cashtracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed. The group must have a budgetId parameter.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:expenseId", OptionsExpenseDetail)
		r.GET("/:expenseId", co.GetExpense)
		r.PUT("/:expenseId", co.UpdateExpense)
		r.DELETE("/:expenseId", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			budgetId	path	string	true	"ID of the budget"
// @Router			/budgets/{budgetId}/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			budgetId	path	string	true	"ID of the budget"
// @Param			expenseId	path	string	true	"ID of the expense"
// @Router			/budgets/{budgetId}/expenses/{expenseId} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// expenseIDs parses the budget and expense IDs of the request path.
func expenseIDs(c *gin.Context) (uuid.UUID, uuid.UUID, error) {
	budgetID, err := httputil.UUIDFromParam(c, "budgetId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	expenseID, err := httputil.UUIDFromParam(c, "expenseId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return budgetID, expenseID, nil
}

// @Summary		List expenses
// @Description	Returns the expenses of a budget, oldest first
// @Tags			Expenses
// @Produce		json
// @Security		Bearer
// @Success		200			{array}		models.Expense
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			budgetId	path		string	true	"ID of the budget"
// @Param			name		query		string	false	"Glob pattern the name of the expense must match, e.g. 'Flight*'"
// @Router			/budgets/{budgetId}/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	id, err := httputil.UUIDFromParam(c, "budgetId")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var filter ExpenseQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httputil.Error(c, err)
		return
	}

	identity, ok := co.authenticate(c)
	if !ok {
		return
	}

	budget, err := co.Guard.Budget(c.Request.Context(), identity, id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	expenses, err := co.Store.Expenses.ListByBudget(c.Request.Context(), budget.ID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	if filter.Name != "" {
		expenses = slices.DeleteFunc(expenses, func(e models.Expense) bool {
			return !glob.Glob(filter.Name, e.Name)
		})
	}

	c.JSON(http.StatusOK, expenses)
}

// @Summary		Create expense
// @Description	Creates a new expense in a budget of the authenticated user
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Success		201			{string}	string
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			budgetId	path		string			true	"ID of the budget"
// @Param			expense		body		ExpenseEditable	true	"Expense"
// @Router			/budgets/{budgetId}/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	id, err := httputil.UUIDFromParam(c, "budgetId")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var data ExpenseEditable
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	identity, ok := co.authenticate(c)
	if !ok {
		return
	}

	budget, err := co.Guard.Budget(c.Request.Context(), identity, id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	expense := data.model(budget.ID)
	if err := co.Store.Expenses.Create(c.Request.Context(), &expense); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, "expense created")
}

// @Summary		Get expense
// @Description	Returns an expense of a budget of the authenticated user
// @Tags			Expenses
// @Produce		json
// @Security		Bearer
// @Success		200			{object}	models.Expense
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		403			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			budgetId	path		string	true	"ID of the budget"
// @Param			expenseId	path		string	true	"ID of the expense"
// @Router			/budgets/{budgetId}/expenses/{expenseId} [get]
func (co Controller) GetExpense(c *gin.Context) {
	budgetID, expenseID, err := expenseIDs(c)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	identity, ok := co.authenticate(c)
	if !ok {
		return
	}

	budget, err := co.Guard.Budget(c.Request.Context(), identity, budgetID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	expense, err := co.Guard.Expense(c.Request.Context(), budget, expenseID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Update expense
// @Description	Updates name and amount of an expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Success		200			{string}	string
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		403			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			budgetId	path		string			true	"ID of the budget"
// @Param			expenseId	path		string			true	"ID of the expense"
// @Param			expense		body		ExpenseEditable	true	"Expense"
// @Router			/budgets/{budgetId}/expenses/{expenseId} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	budgetID, expenseID, err := expenseIDs(c)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var data ExpenseEditable
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	identity, ok := co.authenticate(c)
	if !ok {
		return
	}

	budget, err := co.Guard.Budget(c.Request.Context(), identity, budgetID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	expense, err := co.Guard.Expense(c.Request.Context(), budget, expenseID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	expense.Name = data.Name
	expense.Amount = data.Amount
	if err := co.Store.Expenses.Update(c.Request.Context(), &expense); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, "expense updated")
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Produce		json
// @Security		Bearer
// @Success		200			{string}	string
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		403			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			budgetId	path		string	true	"ID of the budget"
// @Param			expenseId	path		string	true	"ID of the expense"
// @Router			/budgets/{budgetId}/expenses/{expenseId} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	budgetID, expenseID, err := expenseIDs(c)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	identity, ok := co.authenticate(c)
	if !ok {
		return
	}

	budget, err := co.Guard.Budget(c.Request.Context(), identity, budgetID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	expense, err := co.Guard.Expense(c.Request.Context(), budget, expenseID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	if err := co.Store.Expenses.Delete(c.Request.Context(), expense); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, "expense deleted")
}

package v1

import (
	"net/http"
	"strconv"

	"github.com/cashtracker/backend/internal/httputil"
	"github.com/cashtracker/backend/internal/repository"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets and their
// expenses with the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:budgetId", OptionsBudgetDetail)
		r.GET("/:budgetId", co.GetBudget)
		r.PUT("/:budgetId", co.UpdateBudget)
		r.DELETE("/:budgetId", co.DeleteBudget)
	}

	co.RegisterExpenseRoutes(r.Group("/:budgetId/expenses"))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			budgetId	path	string	true	"ID of the budget"
// @Router			/budgets/{budgetId} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List budgets
// @Description	Returns the budgets of the authenticated user, newest first
// @Description	The total number of budgets is sent in the X-Total-Count header.
// @Tags			Budgets
// @Produce		json
// @Security		Bearer
// @Success		200		{array}		models.Budget
// @Failure		400		{object}	httputil.ValidationErrors
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			offset	query		uint	false	"The offset of the first budget returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of budgets to return. Defaults to all."
// @Router			/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httputil.Error(c, err)
		return
	}

	identity, ok := co.authenticate(c)
	if !ok {
		return
	}

	page := repository.Page{Offset: int(filter.Offset), Limit: -1}
	if c.Request.URL.Query().Has("limit") {
		page.Limit = filter.Limit
	}

	budgets, total, err := co.Store.Budgets.ListByOwner(c.Request.Context(), identity.UserID, page)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, budgets)
}

// @Summary		Create budget
// @Description	Creates a new budget owned by the authenticated user
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Success		201		{string}	string
// @Failure		400		{object}	httputil.ValidationErrors
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var data BudgetEditable
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	identity, ok := co.authenticate(c)
	if !ok {
		return
	}

	budget := data.model(identity.UserID)
	if err := co.Store.Budgets.Create(c.Request.Context(), &budget); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, "budget created")
}

// @Summary		Get budget
// @Description	Returns a budget of the authenticated user with all its expenses
// @Tags			Budgets
// @Produce		json
// @Security		Bearer
// @Success		200			{object}	models.Budget
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			budgetId	path		string	true	"ID of the budget"
// @Router			/budgets/{budgetId} [get]
func (co Controller) GetBudget(c *gin.Context) {
	id, err := httputil.UUIDFromParam(c, "budgetId")
	if err != nil {
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

	c.JSON(http.StatusOK, budget)
}

// @Summary		Update budget
// @Description	Updates name and amount of a budget of the authenticated user
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Success		200			{string}	string
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			budgetId	path		string			true	"ID of the budget"
// @Param			budget		body		BudgetEditable	true	"Budget"
// @Router			/budgets/{budgetId} [put]
func (co Controller) UpdateBudget(c *gin.Context) {
	id, err := httputil.UUIDFromParam(c, "budgetId")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var data BudgetEditable
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

	budget.Name = data.Name
	budget.Amount = data.Amount
	if err := co.Store.Budgets.Update(c.Request.Context(), &budget); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, "budget updated")
}

// @Summary		Delete budget
// @Description	Deletes a budget of the authenticated user and all its expenses
// @Tags			Budgets
// @Produce		json
// @Security		Bearer
// @Success		200			{string}	string
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			budgetId	path		string	true	"ID of the budget"
// @Router			/budgets/{budgetId} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	id, err := httputil.UUIDFromParam(c, "budgetId")
	if err != nil {
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

	if err := co.Store.Budgets.Delete(c.Request.Context(), budget); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, "budget deleted")
}

package v1

import (
	"net/http"

	"github.com/cashtracker/backend/internal/auth"
	"github.com/cashtracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for accounts and sessions with
// the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.POST("/create-account", co.CreateAccount)
	r.POST("/confirm-account", co.ConfirmAccount)
	r.POST("/login", co.Login)
	r.POST("/forgot-password", co.ForgotPassword)
	r.POST("/validate-token", co.ValidateToken)
	r.POST("/reset-password/:token", co.ResetPassword)
	r.GET("/user", co.GetUser)
	r.POST("/update-password", co.UpdatePassword)
	r.POST("/check-password", co.CheckPassword)
}

// @Summary		Create account
// @Description	Creates an unconfirmed account and mails a confirmation token to the address
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{string}	string
// @Failure		400		{object}	httputil.ValidationErrors
// @Failure		409		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			account	body		CreateAccount	true	"Account"
// @Router			/auth/create-account [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var data CreateAccount
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	err := co.Accounts.Register(c.Request.Context(), data.Name, data.Email, data.Password)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, "account created, check your email to confirm it")
}

// @Summary		Confirm account
// @Description	Confirms the account holding the token. A token can only be used once.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{string}	string
// @Failure		400		{object}	httputil.ValidationErrors
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			token	body		Token	true	"Token"
// @Router			/auth/confirm-account [post]
func (co Controller) ConfirmAccount(c *gin.Context) {
	var data Token
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	if err := co.Accounts.Confirm(c.Request.Context(), data.Token); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, "account confirmed")
}

// @Summary		Log in
// @Description	Returns a session token for a confirmed account
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{string}	string
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		403			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			credentials	body		Login	true	"Credentials"
// @Router			/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var data Login
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	token, err := co.Accounts.Login(c.Request.Context(), data.Email, data.Password)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// @Summary		Forgot password
// @Description	Mails a token to reset the password of the account
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{string}	string
// @Failure		400		{object}	httputil.ValidationErrors
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			email	body		ForgotPassword	true	"Email"
// @Router			/auth/forgot-password [post]
func (co Controller) ForgotPassword(c *gin.Context) {
	var data ForgotPassword
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	if err := co.Accounts.ForgotPassword(c.Request.Context(), data.Email); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, "check your email for instructions")
}

// @Summary		Validate token
// @Description	Checks that a password reset token is valid
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{string}	string
// @Failure		400		{object}	httputil.ValidationErrors
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			token	body		Token	true	"Token"
// @Router			/auth/validate-token [post]
func (co Controller) ValidateToken(c *gin.Context) {
	var data Token
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	if err := co.Accounts.ValidateToken(c.Request.Context(), data.Token); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, "valid token, set your new password")
}

// @Summary		Reset password
// @Description	Sets a new password for the account holding the token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{string}	string
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			token		path		string		true	"Token"
// @Param			password	body		NewPassword	true	"Password"
// @Router			/auth/reset-password/{token} [post]
func (co Controller) ResetPassword(c *gin.Context) {
	token := c.Param("token")
	if !auth.IsToken(token) {
		httputil.Error(c, httputil.Invalid(httputil.LocationParams, "token", token, "token is not a valid token"))
		return
	}

	var data NewPassword
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	if err := co.Accounts.ResetPassword(c.Request.Context(), token, data.Password); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, "password updated")
}

// @Summary		Get user
// @Description	Returns the authenticated user
// @Tags			Auth
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	models.User
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/auth/user [get]
func (co Controller) GetUser(c *gin.Context) {
	identity, ok := co.authenticate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, identity.User)
}

// @Summary		Update password
// @Description	Replaces the password of the authenticated user
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Success		200			{string}	string
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			passwords	body		UpdatePassword	true	"Passwords"
// @Router			/auth/update-password [post]
func (co Controller) UpdatePassword(c *gin.Context) {
	var data UpdatePassword
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	identity, ok := co.authenticate(c)
	if !ok {
		return
	}

	err := co.Accounts.UpdatePassword(c.Request.Context(), identity, data.CurrentPassword, data.Password)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, "password updated")
}

// @Summary		Check password
// @Description	Checks the password of the authenticated user
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Success		200			{string}	string
// @Failure		400			{object}	httputil.ValidationErrors
// @Failure		401			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			password	body		CheckPassword	true	"Password"
// @Router			/auth/check-password [post]
func (co Controller) CheckPassword(c *gin.Context) {
	var data CheckPassword
	if err := httputil.BindData(c, &data); err != nil {
		httputil.Error(c, err)
		return
	}

	identity, ok := co.authenticate(c)
	if !ok {
		return
	}

	if err := co.Accounts.CheckPassword(c.Request.Context(), identity, data.Password); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, "correct password")
}

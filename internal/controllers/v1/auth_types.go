package v1

type CreateAccount struct {
	Name     string `json:"name" binding:"required,max=100" example:"Juan Román"`
	Email    string `json:"email" binding:"required,email" example:"juan@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"correct horse battery"`
}

type Token struct {
	Token string `json:"token" binding:"required,token" example:"042424"`
}

type Login struct {
	Email    string `json:"email" binding:"required,email" example:"juan@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery"`
}

type ForgotPassword struct {
	Email string `json:"email" binding:"required,email" example:"juan@example.com"`
}

type NewPassword struct {
	Password string `json:"password" binding:"required,min=8,max=72" example:"correct horse battery"`
}

type UpdatePassword struct {
	CurrentPassword string `json:"current_password" binding:"required" example:"correct horse battery"`
	Password        string `json:"password" binding:"required,min=8,max=72" example:"staple battery horse"`
}

type CheckPassword struct {
	Password string `json:"password" binding:"required" example:"correct horse battery"`
}

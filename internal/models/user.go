package models

// User is an account of the cash tracker.
//
// A user is either unconfirmed and holds the confirmation token that was
// mailed to them, or confirmed without a pending token. The password reset
// flow reuses Token on confirmed users.
type User struct {
	DefaultModel
	Name      string  `json:"name" gorm:"not null" example:"Juan Román"`
	Email     string  `json:"email" gorm:"uniqueIndex;not null" example:"juan@example.com"`
	Password  string  `json:"-" gorm:"not null"`
	Token     *string `json:"-" gorm:"index"`
	Confirmed bool    `json:"confirmed" gorm:"not null;default:false"`
}

// HasToken reports if the user holds a pending confirmation or reset token.
func (u User) HasToken() bool {
	return u.Token != nil && *u.Token != ""
}

// SetToken stores a pending token. An empty string clears it.
func (u *User) SetToken(token string) {
	if token == "" {
		u.Token = nil
		return
	}
	u.Token = &token
}

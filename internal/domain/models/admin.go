package models

import "modernband/internal/domain"

// Admin is the signed-in administrator as returned by the backend's /signin.
type Admin struct {
	ID           domain.Stringish `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	MobileNumber string           `json:"mobileNumber"`
	Username     string           `json:"username"`
	IsAdmin      bool             `json:"isAdmin"`
	Token        string           `json:"token,omitempty"`
}

// PublicAdmin omits the backend token.
type PublicAdmin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Username     string `json:"username"`
	IsAdmin      bool   `json:"isAdmin"`
}

func (a Admin) ToPublic() PublicAdmin {
	return PublicAdmin{
		ID:           a.ID.String(),
		Name:         a.Name,
		Email:        a.Email,
		MobileNumber: a.MobileNumber,
		Username:     a.Username,
		IsAdmin:      a.IsAdmin,
	}
}

// BearerToken is the backend token, or the username when the backend issued none.
func (a Admin) BearerToken() string {
	if a.Token != "" {
		return a.Token
	}
	return a.Username
}

// AdminRequest is the settings form for creating another administrator.
type AdminRequest struct {
	Name            string `json:"name" form:"name" validate:"min=3"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	MobileNumber    string `json:"mobileNumber" form:"mobileNumber" validate:"phone"`
	Username        string `json:"username" form:"username" validate:"min=3"`
	Password        string `json:"password" form:"password" validate:"min=6"`
	ConfirmPassword string `json:"confirmPassword,omitempty" form:"confirmPassword" validate:"eqfield=Password"`
}

// LoginRequest is the admin sign-in form.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"min=3"`
	Password string `json:"password" form:"password" validate:"min=6"`
}

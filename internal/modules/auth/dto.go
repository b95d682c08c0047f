package auth

import "github.com/roar-media/core/internal/models"

// LoginDTO is the request body for POST /login.
type LoginDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupDTO is the request body for POST /signup.
type SignupDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// userResponse is the identity shape consumed by the front end's user
// context.
type userResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

func toUserResponse(u *models.UserModel) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

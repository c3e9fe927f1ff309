package dto

import "github.com/studify/studify-api/internal/models"

// UserDTO is the public-safe user summary returned by auth endpoints.
// The password hash never leaves the server.
type UserDTO struct {
	ID     uint64 `json:"id_usuario"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:     user.ID,
		Nombre: user.Nombre,
		Email:  user.Email,
	}
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// VerifyResponse is returned by the token verification endpoint.
type VerifyResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

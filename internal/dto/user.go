package dto

import "github.com/yukikurage/campus-wellness-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// SessionDTO describes the current session and where the client should go next
type SessionDTO struct {
	Username string `json:"username"`
	Message  string `json:"message,omitempty"`
	Screen   string `json:"screen"`
}

// ScreenDTO is one entry of the main navigation
type ScreenDTO struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Path   string `json:"path"`
	Method string `json:"method"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

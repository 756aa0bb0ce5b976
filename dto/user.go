package dto

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisteredUser is the profile echoed back on registration. The password
// hash never leaves the server.
type RegisteredUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

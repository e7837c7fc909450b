package dto

// RegisterRequest is the teacher self-registration payload.
type RegisterRequest struct {
	FirstName      string `json:"first_name"      binding:"required,min=1,max=100"`
	LastName       string `json:"last_name"       binding:"required,min=1,max=100"`
	Email          string `json:"email"           binding:"required,email"`
	Phone          string `json:"phone"           binding:"omitempty,max=30"`
	Password       string `json:"password"        binding:"required,min=8,max=72"`
	RegistrationID string `json:"registration_id" binding:"omitempty,max=50"`
	City           string `json:"city"            binding:"omitempty,max=100"`
	District       string `json:"district"        binding:"omitempty,max=100"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the token refresh payload.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

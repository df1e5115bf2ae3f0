package contract

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64,hasdigit,hasupper,haslower"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=64"`
}

// AuthResponse is the body for register/login, mirroring the legacy
// code/message/token envelope clients already parse.
type AuthResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type ValidateResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

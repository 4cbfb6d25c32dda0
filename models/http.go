package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login: the authenticated account
// plus a bearer session token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ForgotPasswordRequest is the JSON body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyResetCodeRequest is the JSON body of POST /api/auth/verify-reset-code.
type VerifyResetCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordRequest is the JSON body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// ErrorResponse is the JSON error envelope. The message is always one of the
// stable, user-safe sentinel texts; internals are never echoed back.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success/error envelope used by endpoints
// that have no entity to return. Password-recovery endpoints deliberately
// return the same message whether or not the target account exists.
type MessageResponse struct {
	Message string `json:"message"`
}

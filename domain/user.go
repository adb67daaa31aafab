package domain

var (
	MessageSuccessLogin  = "logged in successfully"
	MessageSuccessLogout = "logged out successfully"

	MessageFailedLogin  = "failed to log in"
	MessageFailedLogout = "failed to log out"
	MessageFailedExport = "failed to export data"

	ErrInvalidCredentials = NewError(ErrUnauthorized, "invalid username or password")
	ErrSessionRequired    = NewError(ErrUnauthorized, "login required")
	ErrUsernameTaken      = NewError(ErrConflict, "username is already taken")
	ErrUserNotFound       = NewError(ErrNotFound, "user not found")

	ErrMalformedHash    = NewError(ErrCredential, "stored password hash is malformed")
	ErrPasswordMismatch = NewError(ErrCredential, "password does not match")
)

type (
	LoginRequest struct {
		Username string `json:"username" form:"username" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	CreateUserRequest struct {
		Username string `validate:"required,min=3,max=64"`
		Password string `validate:"required,min=8"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
)

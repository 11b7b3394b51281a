package models

// AuthToken is the issued credential returned by login
type AuthToken struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	IsAdmin   bool   `json:"isAdmin,omitempty"`
}

// LoginRequest is the payload for phone-based login
type LoginRequest struct {
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// GrantAdminRequest is the payload for promoting a user to admin
type GrantAdminRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// BootstrapAdminRequest is the payload for seeding the first admin
type BootstrapAdminRequest struct {
	Email string `json:"email"`
}

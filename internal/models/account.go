package models

import "time"

// Role represents staff roles for the rental desk API.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleAgent  Role = "agent"
	RoleViewer Role = "viewer"
)

// IsValidRole checks if a role is valid.
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleAgent, RoleViewer:
		return true
	default:
		return false
	}
}

// Account is a staff login for the rental desk.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents a staff registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginResponse represents a successful login response.
type LoginResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

// Claims represents JWT claims for an authenticated account.
type Claims struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	Exp       int64  `json:"exp"`
}

// HasPermission checks if an account role may perform an action. Admins
// may do everything, agents everything except account management, viewers
// only reads.
func (a *Account) HasPermission(action string) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleAgent:
		return action != "manage_accounts"
	case RoleViewer:
		switch action {
		case "view_vehicles", "view_customers", "view_bookings", "quote_rental":
			return true
		}
		return false
	default:
		return false
	}
}

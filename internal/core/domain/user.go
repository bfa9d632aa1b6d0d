package domain

// User represents an application user able to post operations.
type User struct {
	UserID         string `json:"userID"` // Primary Key (UUID)
	Email          string `json:"email"`
	HashedPassword string `json:"-"`
	IsActive       bool   `json:"isActive"`
	IsAdmin        bool   `json:"isAdmin"`
	AuditFields
}

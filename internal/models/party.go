package models

// Party represents a row of the parties table.
type Party struct {
	PartyID string `db:"party_id"`
	Name    string `db:"name"`
	Type    string `db:"type"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Address string `db:"address"`
	AuditFields
}

// User represents a row of the users table.
type User struct {
	UserID         string `db:"user_id"`
	Email          string `db:"email"`
	HashedPassword string `db:"hashed_password"`
	IsActive       bool   `db:"is_active"`
	IsAdmin        bool   `db:"is_admin"`
	AuditFields
}

package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Avatar       *string  `db:"avatar"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

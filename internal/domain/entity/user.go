package entity

import "time"

// Roles válidos para User.
const (
	RoleRegular = 0
	RoleAdmin   = 1
)

// User representa un usuario del sistema. Username es la clave natural;
// Invoice.CreatedBy lo referencia por valor, sin FK.
type User struct {
	Username     string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano
	IsActive     bool
	Role         int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewUser construye un usuario activo con created/updated sellados en now.
func NewUser(username, name, passwordHash string, role int, now time.Time) *User {
	ts := StampTime(now)
	return &User{
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		IsActive:     true,
		Role:         role,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

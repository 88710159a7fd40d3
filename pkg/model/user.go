package model

import "time"

type Role string

const (
	RoleUser      Role = "USER"
	RolePengelola Role = "PENGELOLA"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RolePengelola, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" validate:"omitempty,e164"`
	Role      Role      `json:"role" validate:"required,oneof=USER PENGELOLA ADMIN"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

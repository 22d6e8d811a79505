package entity

import "time"

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

// DeletedUserName is substituted when a post owner can no longer be resolved.
const DeletedUserName = "Deleted User"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  string    `json:"-"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

package domain

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	// RoleNone is never stored; it is the resolver's answer for a user with
	// no membership row who is not the creator.
	RoleNone Role = ""
)

type Membership struct {
	GroupID   int64     `json:"group_id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	UserEmail string    `json:"user_email"`
	UserName  string    `json:"user_name"`
	JoinedAt  time.Time `json:"joined_at"`
}

package domain

import "time"

type GroupVisibility string

const (
	GroupVisibilityPublic  GroupVisibility = "public"
	GroupVisibilityPrivate GroupVisibility = "private"
)

type GroupStatus string

const (
	GroupStatusActive   GroupStatus = "active"
	GroupStatusArchived GroupStatus = "archived"
)

type Group struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Visibility     GroupVisibility `json:"visibility"`
	Status         GroupStatus     `json:"status"`
	CreatedBy      string          `json:"created_by"`
	CreatedByEmail string          `json:"created_by_email"`
	// CurrentAdmin is the designated owner after a transfer. Empty until the
	// creator hands the group off. The creator keeps admin rights regardless.
	CurrentAdmin string `json:"current_admin,omitempty"`
	// MemberCount is a cached denormalization of the membership table. It is
	// reconciled best-effort, not transactionally; COUNT(*) over memberships
	// is authoritative.
	MemberCount int32     `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupSettings carries the admin-editable fields. Nil pointers mean
// "leave unchanged".
type GroupSettings struct {
	Name        *string
	Description *string
	Visibility  *GroupVisibility
}

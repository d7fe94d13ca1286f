package domain

import "time"

type JoinRequestStatus string

const (
	JoinRequestStatusPending  JoinRequestStatus = "pending"
	JoinRequestStatusApproved JoinRequestStatus = "approved"
	JoinRequestStatusRejected JoinRequestStatus = "rejected"
)

type JoinRequest struct {
	ID        int64             `json:"id"`
	GroupID   int64             `json:"group_id"`
	UserID    string            `json:"user_id"`
	UserEmail string            `json:"user_email"`
	UserName  string            `json:"user_name"`
	Status    JoinRequestStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	// Set when an admin approves or rejects the request.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	ProcessedBy *string    `json:"processed_by,omitempty"`
}

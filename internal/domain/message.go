package domain

import "time"

// Message is append-only; there is no edit or delete.
type Message struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"group_id"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	UserName  string    `json:"user_name"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

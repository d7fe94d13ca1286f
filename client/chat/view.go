package chat

import (
	"sync"
	"time"

	"studygroups-backend/internal/domain"
)

// Entry is one rendered line of a chat view. Pending entries are optimistic
// local echoes that the server has not confirmed yet.
type Entry struct {
	domain.Message
	Pending bool `json:"pending,omitempty"`
}

type pendingEntry struct {
	localID int64
	msg     domain.Message
}

// View holds the message state for one open group chat: the server-confirmed
// history plus any optimistic sends still in flight. Safe for concurrent use
// by the poller and the sender.
type View struct {
	mu        sync.RWMutex
	groupID   int64
	confirmed []domain.Message
	pending   []pendingEntry
	nextLocal int64
}

func NewView(groupID int64) *View {
	return &View{groupID: groupID}
}

func (v *View) GroupID() int64 {
	return v.groupID
}

// applyFetched replaces the confirmed history with the server's view.
// Pending entries survive; they are resolved by confirm or rollback, not by
// polling.
func (v *View) applyFetched(msgs []domain.Message) {
	v.mu.Lock()
	v.confirmed = msgs
	v.mu.Unlock()
}

// addPending appends an optimistic local echo and returns its handle.
func (v *View) addPending(userID, userEmail, userName, body string) int64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.nextLocal++
	id := v.nextLocal
	v.pending = append(v.pending, pendingEntry{
		localID: id,
		msg: domain.Message{
			GroupID:   v.groupID,
			UserID:    userID,
			UserEmail: userEmail,
			UserName:  userName,
			Body:      body,
			CreatedAt: time.Now(),
		},
	})
	return id
}

// confirm swaps the optimistic echo for the server's persisted message.
func (v *View) confirm(localID int64, msg domain.Message) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.removePendingLocked(localID)
	v.confirmed = append(v.confirmed, msg)
}

// rollback drops the optimistic echo after a failed send.
func (v *View) rollback(localID int64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.removePendingLocked(localID)
}

func (v *View) removePendingLocked(localID int64) {
	for i, p := range v.pending {
		if p.localID == localID {
			v.pending = append(v.pending[:i], v.pending[i+1:]...)
			return
		}
	}
}

// Snapshot returns the entries to render: confirmed history in server order,
// then pending echoes in send order.
func (v *View) Snapshot() []Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()

	entries := make([]Entry, 0, len(v.confirmed)+len(v.pending))
	for _, m := range v.confirmed {
		entries = append(entries, Entry{Message: m})
	}
	for _, p := range v.pending {
		entries = append(entries, Entry{Message: p.msg, Pending: true})
	}
	return entries
}

// PendingCount reports how many sends are still unconfirmed.
func (v *View) PendingCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.pending)
}

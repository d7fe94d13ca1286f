package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"studygroups-backend/internal/domain"
)

// DefaultPollInterval is the fixed refresh cadence for an open chat view.
const DefaultPollInterval = 5 * time.Second

// Sender identifies the local user for optimistic echoes.
type Sender struct {
	UserID string
	Email  string
	Name   string
}

// Poller keeps one chat view fresh. It owns a single timer: calling Start
// while a previous run is active cancels that run first, so a view never has
// two refresh loops racing. Transient fetch errors are recorded and polling
// continues; an expired session stops the loop for good.
type Poller struct {
	api      API
	view     *View
	user     Sender
	interval time.Duration
	onUpdate func()

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	stateMu     sync.RWMutex
	lastErr     error
	authExpired bool
}

func NewPoller(api API, view *View, user Sender, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		api:      api,
		view:     view,
		user:     user,
		interval: interval,
	}
}

// SetOnUpdate installs a callback invoked after every successful refresh,
// from the poller's goroutine.
func (p *Poller) SetOnUpdate(fn func()) {
	p.onUpdate = fn
}

// Start begins polling until ctx is cancelled, Stop is called, or the
// session expires. Any previous run is cancelled and drained first.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	p.stateMu.Lock()
	p.lastErr = nil
	p.authExpired = false
	p.stateMu.Unlock()

	go p.run(ctx, done)
}

// Stop cancels the active run and waits for its goroutine to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Poller) stopLocked() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	p.done = nil
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	if !p.fetch(ctx) {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.fetch(ctx) {
				return
			}
		}
	}
}

// fetch refreshes the view once. It reports false when polling must stop.
func (p *Poller) fetch(ctx context.Context) bool {
	msgs, err := p.api.ListMessages(ctx, p.view.GroupID())
	switch {
	case err == nil:
		p.view.applyFetched(msgs)
		p.setErr(nil)
		if p.onUpdate != nil {
			p.onUpdate()
		}
		return true
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, domain.ErrAuthExpired):
		p.stateMu.Lock()
		p.lastErr = err
		p.authExpired = true
		p.stateMu.Unlock()
		return false
	default:
		// Transient. Keep the stale view and try again next tick.
		p.setErr(err)
		return true
	}
}

// Send posts a message with an optimistic local echo. The echo is rolled
// back if the server rejects the send.
func (p *Poller) Send(ctx context.Context, body string) (*domain.Message, error) {
	localID := p.view.addPending(p.user.UserID, p.user.Email, p.user.Name, body)

	msg, err := p.api.SendMessage(ctx, p.view.GroupID(), body)
	if err != nil {
		p.view.rollback(localID)
		return nil, err
	}

	p.view.confirm(localID, *msg)
	return msg, nil
}

// LastErr returns the most recent fetch error, or nil after a clean refresh.
func (p *Poller) LastErr() error {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	return p.lastErr
}

// AuthExpired reports whether polling stopped because the session died.
func (p *Poller) AuthExpired() bool {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	return p.authExpired
}

// Running reports whether a poll loop is currently active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

func (p *Poller) setErr(err error) {
	p.stateMu.Lock()
	p.lastErr = err
	p.stateMu.Unlock()
}

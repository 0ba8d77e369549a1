package editor

import (
	"sync"
	"time"

	"viukon-cms/logging"
)

const DefaultToastTTL = 3 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	Kind    Kind
	Message string
}

// SaveStatus tracks the explicit "save order now" action.
type SaveStatus int

const (
	SaveIdle SaveStatus = iota
	SavePending
	SaveSucceeded
	SaveFailed
)

func (s SaveStatus) String() string {
	switch s {
	case SavePending:
		return "pending"
	case SaveSucceeded:
		return "success"
	case SaveFailed:
		return "error"
	default:
		return "idle"
	}
}

type Notifier interface {
	Notify(n Notification)
	SetSaveStatus(s SaveStatus)
}

// Toasts shows one notification at a time and dismisses it after a TTL.
type Toasts struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notification
	seq     uint64
	status  SaveStatus
}

func NewToasts(ttl time.Duration) *Toasts {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &Toasts{ttl: ttl}
}

func (t *Toasts) Notify(n Notification) {
	t.mu.Lock()
	t.current = &n
	t.seq++
	seq := t.seq
	t.mu.Unlock()

	logging.Logger.Debugf("Event ID: EDITOR_NOTIFICATION, Description: [%s] %s", n.Kind, n.Message)

	time.AfterFunc(t.ttl, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		// A newer toast replaced this one and owns its own timer.
		if t.seq == seq {
			t.current = nil
		}
	})
}

// Current returns the visible notification, if any.
func (t *Toasts) Current() (Notification, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return Notification{}, false
	}
	return *t.current, true
}

func (t *Toasts) SetSaveStatus(s SaveStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = s
}

func (t *Toasts) SaveStatus() SaveStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

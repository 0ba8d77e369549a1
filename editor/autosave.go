package editor

import (
	"context"
	"sync"
	"time"

	"viukon-cms/logging"
	"viukon-cms/models"
)

const (
	DefaultDebounce    = 500 * time.Millisecond
	DefaultSaveTimeout = 15 * time.Second
)

// Saver persists the whole document.
type Saver interface {
	ReplaceDocument(ctx context.Context, doc *models.SiteData) error
}

type AutosaveOptions struct {
	Debounce time.Duration
	// SaveTimeout bounds one background save, including client retries.
	SaveTimeout time.Duration
}

// Autosaver persists the store's document a debounce window after the last
// change. A save always sends the document as it is when the timer fires.
type Autosaver struct {
	store    *Store
	saver    Saver
	notifier Notifier
	debounce time.Duration
	timeout  time.Duration

	mu      sync.Mutex
	enabled bool
	closed  bool
	timer   *time.Timer
	gen     uint64

	// saveMu keeps one save in flight at a time.
	saveMu sync.Mutex

	unsubscribe func()
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

func NewAutosaver(store *Store, saver Saver, notifier Notifier, opts AutosaveOptions) *Autosaver {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = DefaultSaveTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	a := &Autosaver{
		store:    store,
		saver:    saver,
		notifier: notifier,
		debounce: opts.Debounce,
		timeout:  opts.SaveTimeout,
		ctx:      ctx,
		cancel:   cancel,
	}
	a.unsubscribe = store.Subscribe(func(*models.SiteData, uint64) { a.schedule() })
	return a
}

// Enable starts reacting to changes. Changes before Enable, such as the
// initial load, are never saved.
func (a *Autosaver) Enable() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.closed {
		a.enabled = true
	}
}

// Pending reports whether a debounced save is waiting to fire.
func (a *Autosaver) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timer != nil
}

func (a *Autosaver) schedule() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled || a.closed {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(a.debounce, func() { a.fire(gen) })
}

func (a *Autosaver) fire(gen uint64) {
	a.mu.Lock()
	// Superseded by a later schedule or a SaveNow.
	if a.closed || a.timer == nil || a.gen != gen {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	a.wg.Add(1)
	a.mu.Unlock()
	defer a.wg.Done()

	ctx, cancel := context.WithTimeout(a.ctx, a.timeout)
	defer cancel()

	if err := a.persist(ctx); err != nil {
		a.notifier.Notify(Notification{Kind: KindError, Message: "Failed to save changes: " + err.Error()})
		return
	}
	a.notifier.Notify(Notification{Kind: KindSuccess, Message: "Changes saved"})
}

// SaveNow cancels any pending debounce and saves immediately. Its outcome
// is reported through the notifier's save status as well as a toast.
func (a *Autosaver) SaveNow(ctx context.Context) error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	a.notifier.SetSaveStatus(SavePending)
	if err := a.persist(ctx); err != nil {
		a.notifier.SetSaveStatus(SaveFailed)
		a.notifier.Notify(Notification{Kind: KindError, Message: "Failed to save order: " + err.Error()})
		return err
	}
	a.notifier.SetSaveStatus(SaveSucceeded)
	a.notifier.Notify(Notification{Kind: KindSuccess, Message: "Order saved"})
	return nil
}

func (a *Autosaver) persist(ctx context.Context) error {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()

	doc, version := a.store.Snapshot()
	if err := a.saver.ReplaceDocument(ctx, doc); err != nil {
		logging.Logger.Warnf("Event ID: AUTOSAVE_FAILED, Description: Saving version %d failed: %v", version, err)
		return err
	}
	logging.Logger.Debugf("Event ID: AUTOSAVE_SUCCESS, Description: Saved version %d", version)
	return nil
}

// Close drops any pending save and waits for a running one to finish.
func (a *Autosaver) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.enabled = false
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	a.unsubscribe()
	a.cancel()
	a.wg.Wait()
}

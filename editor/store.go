package editor

import (
	"sync"

	"viukon-cms/logging"
	"viukon-cms/models"
)

// Listener receives a private copy of the document after each change.
// Listeners of concurrent dispatches may run concurrently and out of
// version order.
type Listener func(doc *models.SiteData, version uint64)

// Store owns the site document. Every change goes through Dispatch.
type Store struct {
	mu        sync.Mutex
	doc       *models.SiteData
	version   uint64
	listeners map[int]Listener
	nextID    int
}

func NewStore(initial *models.SiteData) *Store {
	doc := initial.Clone()
	if doc == nil {
		doc = models.DefaultSiteData()
	}
	doc.Normalize()
	return &Store{doc: doc, listeners: make(map[int]Listener)}
}

// Dispatch applies cmd. A failed command leaves the document untouched and
// notifies nobody.
func (s *Store) Dispatch(cmd Command) error {
	s.mu.Lock()
	next := s.doc.Clone()
	if err := Reduce(next, cmd); err != nil {
		s.mu.Unlock()
		logging.Logger.Debugf("Event ID: EDITOR_COMMAND_REJECTED, Description: %s rejected: %v", cmd.commandName(), err)
		return err
	}
	s.doc = next
	s.version++
	version := s.version
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next.Clone(), version)
	}
	return nil
}

// Snapshot returns a copy of the current document and its version.
func (s *Store) Snapshot() (*models.SiteData, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone(), s.version
}

func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
		})
	}
}

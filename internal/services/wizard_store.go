package services

import (
	"sync"
	"time"

	"modernband/internal/booking"
	"modernband/internal/domain"
)

// WizardStore holds live wizards. Callers only ever see clones.
type WizardStore interface {
	Put(w *booking.Wizard)
	Get(id string) (*booking.Wizard, error)
	Modify(id string, fn func(w *booking.Wizard) error) (*booking.Wizard, error)
	Delete(id string) error
}

// MemoryWizardStore keeps wizards in process memory and forgets them after TTL of inactivity.
type MemoryWizardStore struct {
	mu    sync.Mutex
	items map[string]*booking.Wizard
	TTL   time.Duration
	Now   func() time.Time
}

func NewMemoryWizardStore(ttl time.Duration) *MemoryWizardStore {
	return &MemoryWizardStore{items: map[string]*booking.Wizard{}, TTL: ttl}
}

func (s *MemoryWizardStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *MemoryWizardStore) Put(w *booking.Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	c := w.Clone()
	c.UpdatedAt = s.now()
	s.items[c.ID] = c
}

func (s *MemoryWizardStore) Get(id string) (*booking.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	return w.Clone(), nil
}

// Modify runs fn under the store lock. When fn fails the wizard is left as fn left it
// and no snapshot is returned; wizard methods do not mutate on error.
func (s *MemoryWizardStore) Modify(id string, fn func(w *booking.Wizard) error) (*booking.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	if err := fn(w); err != nil {
		return nil, err
	}
	w.UpdatedAt = s.now()
	return w.Clone(), nil
}

// Delete forgets the wizard. A wizard whose submission is in flight is kept so
// the booking the backend creates still has somewhere to land.
func (s *MemoryWizardStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.items[id]; ok && w.Submitting {
		return domain.ConflictError{Msg: booking.ErrSubmitting.Error(), Err: booking.ErrSubmitting}
	}
	delete(s.items, id)
	return nil
}

// Len counts live wizards, expired ones included until the next sweep.
func (s *MemoryWizardStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *MemoryWizardStore) lookupLocked(id string) (*booking.Wizard, error) {
	w, ok := s.items[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "booking form"}
	}
	if s.expired(w) && !w.Submitting {
		delete(s.items, id)
		return nil, domain.NotFoundError{Resource: "booking form"}
	}
	return w, nil
}

func (s *MemoryWizardStore) expired(w *booking.Wizard) bool {
	return s.TTL > 0 && s.now().Sub(w.UpdatedAt) > s.TTL
}

func (s *MemoryWizardStore) sweepLocked() {
	for id, w := range s.items {
		if s.expired(w) && !w.Submitting {
			delete(s.items, id)
		}
	}
}

package contact

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu       sync.RWMutex
	contacts map[string]*Contact
	order    []string // insertion order, oldest first
	emails   map[string]struct{}
}

// NewMockService creates a new mock service.
func NewMockService() *MockService {
	return &MockService{
		contacts: make(map[string]*Contact),
		emails:   make(map[string]struct{}),
	}
}

func (m *MockService) Submit(_ context.Context, params SubmitParams) (*Contact, error) {
	if err := validateSubmission(params); err != nil {
		return nil, err
	}
	p := params.normalized()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.emails[p.Email]; exists {
		return nil, ErrEmailExists
	}

	now := time.Now().UTC()
	c := &Contact{
		ID:        uuid.NewString(),
		Name:      p.Name,
		Email:     p.Email,
		Subject:   p.Subject,
		Message:   p.Message,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.contacts[c.ID] = c
	m.order = append(m.order, c.ID)
	m.emails[p.Email] = struct{}{}
	return snapshot(c), nil
}

func (m *MockService) List(_ context.Context) ([]*Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Reverse insertion order gives newest-first even when two submissions
	// share a creation timestamp.
	contacts := make([]*Contact, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		contacts = append(contacts, snapshot(m.contacts[m.order[i]]))
	}
	return contacts, nil
}

func (m *MockService) UpdateStatus(_ context.Context, id string, newStatus Status) (*Contact, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}
	if id == "" {
		return nil, ErrIDRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, exists := m.contacts[id]
	if !exists {
		return nil, ErrNotFound
	}

	c.Status = newStatus
	c.UpdatedAt = time.Now().UTC()
	return snapshot(c), nil
}

// Clear removes all contacts (useful for test cleanup).
func (m *MockService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts = make(map[string]*Contact)
	m.order = nil
	m.emails = make(map[string]struct{})
}

func snapshot(c *Contact) *Contact {
	copied := *c
	return &copied
}

// Compile-time interface check
var _ Service = (*MockService)(nil)

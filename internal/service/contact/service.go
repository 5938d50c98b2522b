package contact

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	// ErrFieldsRequired is returned when any submission field is empty.
	ErrFieldsRequired = errors.New("all fields are required")
	// ErrEmailExists is returned when a submission reuses an existing email.
	ErrEmailExists = errors.New("contact email already exists")
	// ErrNotFound is returned when no contact matches the given ID.
	ErrNotFound = errors.New("contact not found")
	// ErrInvalidStatus is returned for a status outside the triage workflow.
	ErrInvalidStatus = errors.New("invalid contact status")
	// ErrIDRequired is returned when a contact ID is empty.
	ErrIDRequired = errors.New("contact ID is required")
)

// Status is the triage state of a contact message.
type Status string

// Triage workflow states. Every contact starts as pending; any state is
// reachable from any other through UpdateStatus.
const (
	StatusPending Status = "pending"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// Statuses lists the valid states in workflow order.
var Statuses = []Status{StatusPending, StatusRead, StatusReplied}

// Valid reports whether s is one of the workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusRead, StatusReplied:
		return true
	}
	return false
}

// Contact represents a stored contact-form submission.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubmitParams for creating a contact.
type SubmitParams struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Service defines contact operations.
//
// Implementations must validate and normalize input:
//   - Submit rejects empty fields before touching storage, trims all four
//     text fields and applies the per-field constraints in validate.go
//   - Email uniqueness is enforced at the storage layer
//   - UpdateStatus validates the status, then the ID, before any store access
//   - UpdateStatus refreshes UpdatedAt even when the status is unchanged
type Service interface {
	Submit(ctx context.Context, params SubmitParams) (*Contact, error)
	List(ctx context.Context) ([]*Contact, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Contact, error)
}

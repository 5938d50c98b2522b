package contact

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/janisto/contact-inbox/internal/platform/logging"
)

// DefaultCollection is the Firestore collection used when none is configured.
const DefaultCollection = "contacts"

// Audit actor labels. Submissions come from the public form, status changes
// from the internal review view.
const (
	actorPublic   = "public"
	actorOperator = "operator"
)

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrFieldsRequired):
		return "fields_required"
	case errors.As(err, &verr):
		return "validation_failed"
	case errors.Is(err, ErrEmailExists):
		return "email_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidStatus):
		return "invalid_status"
	case errors.Is(err, ErrIDRequired):
		return "id_required"
	default:
		return "internal_error"
	}
}

// firestoreContact maps to the Firestore document structure.
type firestoreContact struct {
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Subject   string    `firestore:"subject"`
	Message   string    `firestore:"message"`
	Status    string    `firestore:"status"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (fc firestoreContact) toContact(id string) *Contact {
	return &Contact{
		ID:        id,
		Name:      fc.Name,
		Email:     fc.Email,
		Subject:   fc.Subject,
		Message:   fc.Message,
		Status:    Status(fc.Status),
		CreatedAt: fc.CreatedAt,
		UpdatedAt: fc.UpdatedAt,
	}
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreStore creates a new Firestore-backed store. An empty collection
// name falls back to DefaultCollection.
func NewFirestoreStore(client *firestore.Client, collection string) *FirestoreStore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &FirestoreStore{client: client, collection: collection}
}

// Submit validates the submission and creates a new contact inside a
// transaction. The transactional email lookup before the create is what
// enforces uniqueness: a concurrent duplicate serializes against this
// transaction and fails with ErrEmailExists rather than overwriting.
func (s *FirestoreStore) Submit(ctx context.Context, params SubmitParams) (*Contact, error) {
	if err := validateSubmission(params); err != nil {
		applog.LogAuditEvent(ctx, "create", actorPublic, "contact", "", "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}
	p := params.normalized()

	docRef := s.client.Collection(s.collection).Doc(uuid.NewString())
	now := time.Now().UTC()

	var result *Contact

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		dup := s.client.Collection(s.collection).Where("email", "==", p.Email).Limit(1)
		docs, err := tx.Documents(dup).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return ErrEmailExists
		}

		fc := firestoreContact{
			Name:      p.Name,
			Email:     p.Email,
			Subject:   p.Subject,
			Message:   p.Message,
			Status:    string(StatusPending),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Create(docRef, fc); err != nil {
			return err
		}

		result = fc.toContact(docRef.ID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "create", actorPublic, "contact", docRef.ID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", actorPublic, "contact", docRef.ID, "success", nil)

	return result, nil
}

// List returns all contacts ordered by creation time, newest first. The
// ordering is part of the contract; the review view relies on it.
func (s *FirestoreStore) List(ctx context.Context) ([]*Contact, error) {
	iter := s.client.Collection(s.collection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	docs, err := iter.GetAll()
	if err != nil {
		return nil, err
	}

	contacts := make([]*Contact, 0, len(docs))
	for _, doc := range docs {
		var fc firestoreContact
		if err := doc.DataTo(&fc); err != nil {
			return nil, err
		}
		contacts = append(contacts, fc.toContact(doc.Ref.ID))
	}
	return contacts, nil
}

// UpdateStatus moves a contact to the given workflow state and refreshes its
// update timestamp. Setting the current status again still refreshes the
// timestamp; the operation records that the message was re-triaged.
func (s *FirestoreStore) UpdateStatus(ctx context.Context, id string, newStatus Status) (*Contact, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}
	if id == "" {
		return nil, ErrIDRequired
	}

	docRef := s.client.Collection(s.collection).Doc(id)

	var result *Contact

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fc firestoreContact
		if err := doc.DataTo(&fc); err != nil {
			return err
		}

		fc.Status = string(newStatus)
		fc.UpdatedAt = time.Now().UTC()

		if err := tx.Set(docRef, fc); err != nil {
			return err
		}

		result = fc.toContact(id)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "update_status", actorOperator, "contact", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "update_status", actorOperator, "contact", id, "success",
		map[string]any{"status": string(newStatus)})

	return result, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)

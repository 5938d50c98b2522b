package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/janisto/contact-inbox/internal/testutil"
)

func setupFirestoreTest(t *testing.T) (*FirestoreStore, func()) {
	t.Helper()

	testutil.SkipIfFirestoreUnavailable(t)
	testutil.SetupEmulator(t)
	testutil.ClearFirestore(t)

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, testutil.ProjectID)
	if err != nil {
		t.Fatalf("failed to create Firestore client: %v", err)
	}

	store := NewFirestoreStore(client, "")
	cleanup := func() {
		testutil.ClearFirestore(t)
		_ = client.Close()
	}

	return store, cleanup
}

func TestFirestoreSubmit(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	c, err := store.Submit(ctx, SubmitParams{
		Name:    "  Ann  ",
		Email:   " ann@x.com ",
		Subject: "Hi",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.ID == "" {
		t.Error("expected a generated ID")
	}
	if c.Name != "Ann" {
		t.Errorf("expected trimmed name Ann, got %q", c.Name)
	}
	if c.Email != "ann@x.com" {
		t.Errorf("expected trimmed email, got %q", c.Email)
	}
	if c.Status != StatusPending {
		t.Errorf("expected status pending, got %s", c.Status)
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestFirestoreSubmitMissingField(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	_, err := store.Submit(ctx, SubmitParams{Name: "Ann", Email: "ann@x.com", Subject: "Hi"})
	if !errors.Is(err, ErrFieldsRequired) {
		t.Fatalf("expected ErrFieldsRequired, got %v", err)
	}

	contacts, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 0 {
		t.Fatalf("expected nothing persisted, got %d contacts", len(contacts))
	}
}

func TestFirestoreSubmitDuplicateEmail(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := store.Submit(ctx, validParams()); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	second := validParams()
	second.Name = "Someone Else"
	second.Email = "  ann@x.com  "
	if _, err := store.Submit(ctx, second); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	contacts, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("expected exactly one contact, got %d", len(contacts))
	}
}

func TestFirestoreListNewestFirst(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		p := validParams()
		p.Email = email
		if _, err := store.Submit(ctx, p); err != nil {
			t.Fatalf("submit %s failed: %v", email, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	contacts, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(contacts))
	}
	for i, want := range []string{"c@x.com", "b@x.com", "a@x.com"} {
		if contacts[i].Email != want {
			t.Errorf("position %d: expected %s, got %s", i, want, contacts[i].Email)
		}
	}
}

func TestFirestoreUpdateStatus(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	created, err := store.Submit(ctx, validParams())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	updated, err := store.UpdateStatus(ctx, created.ID, StatusRead)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusRead {
		t.Errorf("expected status read, got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(created.CreatedAt) {
		t.Error("expected UpdatedAt to advance past CreatedAt")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected CreatedAt to be immutable")
	}
}

func TestFirestoreUpdateStatusNotFound(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := store.UpdateStatus(ctx, "nonexistent", StatusReplied); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFirestoreUpdateStatusValidatesInput(t *testing.T) {
	store, cleanup := setupFirestoreTest(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := store.UpdateStatus(ctx, "some-id", Status("archived")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := store.UpdateStatus(ctx, "", StatusRead); !errors.Is(err, ErrIDRequired) {
		t.Fatalf("expected ErrIDRequired, got %v", err)
	}
}

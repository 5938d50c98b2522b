package firebase

import (
	"context"
	"errors"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// ErrProjectIDMissing reports that no Firestore project has been configured.
// This is a fatal configuration error; there is no fallback store.
var ErrProjectIDMissing = errors.New("firestore project ID is not configured")

// Config holds Firebase configuration.
type Config struct {
	ProjectID                    string
	GoogleApplicationCredentials string // Path to service account JSON (optional)
}

// Client is an explicit connection handle to Firestore. The connection is
// established lazily on the first Connect call and reused afterwards;
// connecting again is a no-op that returns the same client (or the same
// error, if the first attempt failed).
type Client struct {
	cfg Config

	once      sync.Once
	firestore *firestore.Client
	err       error
}

// NewClient creates an unconnected handle. No I/O happens until Connect.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// Connect establishes the Firestore client if needed and returns it.
func (c *Client) Connect(ctx context.Context) (*firestore.Client, error) {
	c.once.Do(func() {
		c.firestore, c.err = dial(ctx, c.cfg)
	})
	return c.firestore, c.err
}

// Close releases the underlying Firestore client, if one was established.
func (c *Client) Close() error {
	if c.firestore != nil {
		return c.firestore.Close()
	}
	return nil
}

func dial(ctx context.Context, cfg Config) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, ErrProjectIDMissing
	}

	var opts []option.ClientOption
	if cfg.GoogleApplicationCredentials != "" {
		creds, err := os.ReadFile(cfg.GoogleApplicationCredentials)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, err
	}
	return fbApp.Firestore(ctx)
}

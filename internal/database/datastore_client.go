package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/datastore"

	"github.com/peopleops/employee-registry/internal/logger"
)

// Store owns the datastore client handle for the process lifetime. It is
// constructed by the entry point and shared read-only by all requests; the
// handle is only usable between Connect and Disconnect.
type Store struct {
	projectID  string
	databaseID string
	kind       string
	client     *datastore.Client
}

func NewStore(projectID, databaseID, kind string) *Store {
	return &Store{
		projectID:  projectID,
		databaseID: databaseID,
		kind:       kind,
	}
}

// Connect establishes the datastore client and verifies the connection with
// a ping. Uniqueness of employee_id needs no index setup here: entities are
// keyed by it, so the insert mutation is the constraint.
func (s *Store) Connect(ctx context.Context) error {
	logger.InfoLog(ctx, "Connecting to datastore (project=%s database=%s kind=%s)",
		s.projectID, s.databaseID, s.kind)

	var (
		client *datastore.Client
		err    error
	)
	if s.databaseID != "" {
		client, err = datastore.NewClientWithDatabase(ctx, s.projectID, s.databaseID)
	} else {
		client, err = datastore.NewClient(ctx, s.projectID)
	}
	if err != nil {
		return fmt.Errorf("failed to create datastore client: %w", err)
	}
	s.client = client

	if err := s.Ping(ctx); err != nil {
		return fmt.Errorf("datastore ping failed: %w", err)
	}

	logger.InfoLog(ctx, "Successfully connected to datastore")
	return nil
}

// Disconnect releases the client. Safe to call when never connected.
func (s *Store) Disconnect() error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

// Handle returns the live client, failing fast if Connect has not succeeded.
func (s *Store) Handle() (*datastore.Client, error) {
	if s.client == nil {
		return nil, fmt.Errorf("datastore is not connected")
	}
	return s.client, nil
}

// Kind is the entity kind (collection name) employee documents live under.
func (s *Store) Kind() string {
	return s.kind
}

// Ping runs a cheap keys-only probe against the employee kind.
func (s *Store) Ping(ctx context.Context) error {
	client, err := s.Handle()
	if err != nil {
		return err
	}
	q := datastore.NewQuery(s.kind).KeysOnly().Limit(1)
	if _, err := client.GetAll(ctx, q, nil); err != nil {
		return err
	}
	return nil
}

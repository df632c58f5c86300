package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/gatherly/rsvp-backend-go/internal/pkg/database"
)

// TestDatabaseSetup wraps the shared test database connection
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to the test database, skipping the calling
// test when TEST_DATABASE_URL is not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := database.NewPostgreSQLDB(dsn, 4, 1)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	t.Cleanup(db.Close)
	return &TestDatabaseSetup{DB: db}
}

// TruncateAllTables clears every table touched by the tests
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"session_events",
		"circle_members",
		"rsvps",
		"invite_circles",
		"invites",
	}

	for _, table := range tables {
		if _, err := s.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

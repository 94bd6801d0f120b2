// Package spannertest connects integration tests to the Spanner emulator.
package spannertest

import (
	"context"
	"fmt"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/karting-service/internal/models/m_booking"
	"github.com/light-bringer/karting-service/internal/models/m_client"
	"github.com/light-bringer/karting-service/internal/models/m_kart"
	"github.com/light-bringer/karting-service/internal/models/m_outbox"
)

const defaultDB = "projects/test-project/instances/test-instance/databases/karting-test"

// Setup creates a client against a migrated emulator database and empties
// every table before and after the test.
func Setup(t *testing.T) *spanner.Client {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}

	client, err := spanner.NewClient(context.Background(), Database())
	require.NoError(t, err, "failed to create Spanner client")

	Clean(t, client)
	t.Cleanup(func() {
		Clean(t, client)
		client.Close()
	})
	return client
}

// Database returns KARTING_TEST_SPANNER_DATABASE or the emulator default.
func Database() string {
	if db := os.Getenv("KARTING_TEST_SPANNER_DATABASE"); db != "" {
		return db
	}
	return defaultDB
}

// Clean truncates all tables for test isolation.
func Clean(t *testing.T, client *spanner.Client) {
	t.Helper()

	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		spanner.Delete(m_outbox.TableName, spanner.AllKeys()),
		spanner.Delete(m_booking.TableName, spanner.AllKeys()),
		spanner.Delete(m_kart.TableName, spanner.AllKeys()),
		spanner.Delete(m_client.TableName, spanner.AllKeys()),
	})
	require.NoError(t, err, "failed to clean database")
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expected int64) {
	t.Helper()

	iter := client.Single().Query(context.Background(), spanner.Statement{
		SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	})
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count))
	require.Equal(t, expected, count, "unexpected row count in table %s", table)
}

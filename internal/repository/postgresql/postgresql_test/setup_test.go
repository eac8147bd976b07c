package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/shramsetu/rozgar-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// testDatabase connects to the database named by TEST_DATABASE_URL. Tests
// that need a live database skip when it is not set.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}

func truncateAll(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"attendance_edits",
		"attendance_records",
		"payments",
		"project_workers",
		"projects",
		"workers",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T, db *database.DB, name, panchayatCode string) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (id, name, email, role, panchayat_code, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, 'supervisor', $3, NOW(), NOW())
		RETURNING id
	`, name, name+"@test.local", panchayatCode).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestProject(t *testing.T, db *database.DB, name, panchayatCode string) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO projects (id, name, location, panchayat_code, start_date, end_date, status, wage_per_worker, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'Test GP', $2, '2026-03-01', '2026-03-31', 'active', 300.00, NOW(), NOW())
		RETURNING id
	`, name, panchayatCode).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestWorker(t *testing.T, db *database.DB, name, jobCardID, panchayatCode string) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO workers (id, name, job_card_id, panchayat_code, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW(), NOW())
		RETURNING id
	`, name, jobCardID, panchayatCode).Scan(&id)
	require.NoError(t, err)
	return id
}

package pgsql

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_journal_entries_transaction_id"}

	assert.True(t, isUniqueViolation(uniqueErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("failed to insert journal entry: %w", uniqueErr)))

	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(fmt.Errorf("connection refused")))
	// Foreign key violation carries a different SQLSTATE.
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

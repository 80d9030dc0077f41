package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// failingPool answers every query with err
type failingPool struct {
	err error
}

func (p failingPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, p.err
}

func (p failingPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, p.err
}

func (p failingPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, p.err
}

func (p failingPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func openWithPool(t *testing.T, pool gorm.ConnPool) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestAdminExistsMissingRow(t *testing.T) {
	db := openWithPool(t, failingPool{err: gorm.ErrRecordNotFound})

	exists, err := adminExists(db, "admin@shop.test")

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAdminExistsReturnsLookupFailure(t *testing.T) {
	connErr := errors.New("connection reset by peer")
	db := openWithPool(t, failingPool{err: connErr})

	exists, err := adminExists(db, "admin@shop.test")

	assert.ErrorIs(t, err, connErr)
	assert.False(t, exists)
}

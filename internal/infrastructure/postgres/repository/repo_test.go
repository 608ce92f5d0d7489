package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/trazai/lojista-service/internal/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestPendingCommissionByStore_FiltersDeletedStores(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultOrderRepository(db)

	oldest := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"store_id", "store_name", "blocked", "oldest_pending"}).
		AddRow("store-1", "Cantina da Vila", false, oldest)

	// The aggregation joins stores by hand, so it has to restate the
	// soft-delete scope itself.
	mock.ExpectQuery(`stores\.deleted_at IS NULL`).WillReturnRows(rows)

	pending, err := repo.PendingCommissionByStore()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "store-1", pending[0].StoreID)
	assert.Equal(t, "Cantina da Vila", pending[0].StoreName)
	assert.False(t, pending[0].Blocked)
	assert.True(t, oldest.Equal(pending[0].OldestPending))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetBlocked_ReportsMissingStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultStoreRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "stores" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.SetBlocked("ghost-store", true)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetBlocked_FlipsFlag(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultStoreRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "stores" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SetBlocked("store-1", false)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStore_NeverWritesBlockedColumn(t *testing.T) {
	// Custom matcher so any UPDATE touching the blocked column fails the
	// expectation, whatever the rest of the statement looks like.
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(
		sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
			if strings.Contains(actualSQL, `"blocked"`) {
				return fmt.Errorf("statement writes the blocked column: %s", actualSQL)
			}
			return nil
		})))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	repo := NewDefaultStoreRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.UpdateStore(&domain.Store{
		ID:       "store-1",
		Name:     "Cantina da Vila",
		Phone:    "+55 11 99999-0000",
		Category: "restaurante",
		Open:     true,
		Blocked:  true,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

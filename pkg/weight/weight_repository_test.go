package weight

import (
	"Matrafl-Backend/domain"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestGetWeightByDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWeightRepository(db)
	userID := uuid.New()
	id := uuid.New()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "weight", "measured_at", "created_at", "updated_at"}).
		AddRow(id.String(), userID.String(), 80.5, day, day, day)
	mock.ExpectQuery(`SELECT \* FROM "weights" WHERE user_id = \$1 AND measured_at = \$2 ORDER BY created_at asc`).
		WillReturnRows(rows)

	w, err := repo.GetWeightByDate(context.Background(), userID.String(), day)

	require.NoError(t, err)
	assert.Equal(t, id, w.ID)
	assert.InDelta(t, 80.5, w.Weight, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWeightByDateWithoutRow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWeightService(NewWeightRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "weights"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w, err := svc.GetWeightByDate(context.Background(), uuid.NewString(), time.Now())

	require.NoError(t, err)
	assert.Nil(t, w)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWeightOfAnotherUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWeightService(NewWeightRepository(db))
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "weight", "measured_at", "created_at", "updated_at"}).
		AddRow(id.String(), uuid.NewString(), 70.0, now, now, now)
	mock.ExpectQuery(`SELECT \* FROM "weights" WHERE id = \$1`).WillReturnRows(rows)

	err := svc.DeleteWeight(context.Background(), id.String(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrForbidden)
	require.NoError(t, mock.ExpectationsWereMet())
}

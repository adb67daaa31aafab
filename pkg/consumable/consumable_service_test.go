package consumable

import (
	"Matrafl-Backend/domain"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeConsumableRepository struct {
	items []domain.ConsumableSummary
	since time.Time
}

func (r *fakeConsumableRepository) GetConsumableSummaries(_ context.Context, _ string, since time.Time) ([]domain.ConsumableSummary, error) {
	r.since = since
	return r.items, nil
}

func TestGetConsumablesLooksBackSevenDays(t *testing.T) {
	repo := &fakeConsumableRepository{items: []domain.ConsumableSummary{
		{ID: "1", Name: "Rice", CreatedAt: now.AddDate(0, -1, 0)},
		{ID: "2", Name: "Egg", IsStarred: true, CreatedAt: now.AddDate(0, -1, 0)},
	}}
	svc := &consumableService{consumableRepository: repo, now: func() time.Time { return now }}

	ranked, err := svc.GetConsumables(context.Background(), "user")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), repo.since)
	assert.Equal(t, []string{"Egg", "Rice"}, names(ranked))
}

func TestGetConsumableSummaries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	columns := []string{"id", "name", "is_starred", "created_at", "last_consumed_at", "consumed_count"}
	created := now.AddDate(0, -1, 0)
	lastEaten := now.AddDate(0, 0, -1)

	mock.ExpectQuery(`SELECT foods\.id, .* FROM "foods" LEFT JOIN consumptions ON consumptions\.food_id = foods\.id .* WHERE foods\.user_id = \$\d+ AND foods\.hidden_at IS NULL GROUP BY`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("f1", "Egg", true, created, lastEaten, int64(3)).
			AddRow("f2", "Rice", false, created, nil, int64(0)))
	mock.ExpectQuery(`SELECT recipes\.id, .* FROM "recipes" LEFT JOIN consumptions ON consumptions\.recipe_id = recipes\.id`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("r1", "Omelette", false, created, nil, int64(0)))

	items, err := NewConsumableRepository(db).GetConsumableSummaries(context.Background(), "user", now.AddDate(0, 0, -7))

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, domain.ConsumableFood, items[0].Type)
	assert.True(t, items[0].IsStarred)
	assert.Equal(t, int64(3), items[0].ConsumedCount)
	require.NotNil(t, items[0].LastConsumedAt)
	assert.Nil(t, items[1].LastConsumedAt)
	assert.Equal(t, domain.ConsumableRecipe, items[2].Type)
	assert.Equal(t, "Omelette", items[2].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

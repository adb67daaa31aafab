package export

import (
	"Matrafl-Backend/domain"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestExportAll(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	userID := uuid.NewString()
	foodID := uuid.NewString()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	exportedAt := time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "weights" WHERE user_id = \$1 ORDER BY created_at asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "weight", "measured_at", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), userID, 80.0, day, day, day))
	mock.ExpectQuery(`SELECT \* FROM "foods" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "kcal", "fat", "carbs", "protein", "hidden_at", "starred_at", "created_at", "updated_at"}).
			AddRow(foodID, userID, "Egg", 70.0, 5.0, 0.5, 6.0, nil, day, day, day))
	mock.ExpectQuery(`SELECT \* FROM "consumptions" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "food_id", "recipe_id", "quantity", "consumed_at", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), userID, foodID, nil, 2.0, day, day, day))
	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "ingredients" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := &exportService{exportRepository: NewExportRepository(db), now: func() time.Time { return exportedAt }}
	doc, err := svc.ExportAll(context.Background(), userID)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, userID, doc.UserID)
	assert.Equal(t, exportedAt, doc.ExportedAt)
	require.Len(t, doc.Weights, 1)
	assert.Equal(t, "2024-01-01", doc.Weights[0].MeasuredAt)
	require.Len(t, doc.Foods, 1)
	assert.Nil(t, doc.Foods[0].HiddenAt)
	require.Len(t, doc.Consumptions, 1)
	require.NotNil(t, doc.Consumptions[0].FoodID)
	assert.Equal(t, foodID, *doc.Consumptions[0].FoodID)
	assert.Nil(t, doc.Consumptions[0].RecipeID)
	assert.Empty(t, doc.Recipes)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	for _, key := range []string{"user_id", "exported_at", "weights", "foods", "consumptions", "recipes", "ingredients"} {
		assert.Contains(t, keys, key)
	}
	assert.JSONEq(t, "[]", string(keys["recipes"]))
	assert.Equal(t, "2024-02-03-matrafl.json", domain.ExportFilename(doc.ExportedAt))
}

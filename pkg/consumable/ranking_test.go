package consumable

import (
	"Matrafl-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := now.AddDate(0, 0, -n)
	return &t
}

func old() time.Time { return now.AddDate(0, -1, 0) }

func names(ranked []domain.RankedConsumable) []string {
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Name)
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		item domain.ConsumableSummary
		want int64
	}{
		{"plain", domain.ConsumableSummary{CreatedAt: old()}, 0},
		{"starred", domain.ConsumableSummary{IsStarred: true, CreatedAt: old()}, 100},
		{"consumed today once", domain.ConsumableSummary{LastConsumedAt: daysAgo(0), ConsumedCount: 1, CreatedAt: old()}, 110},
		{"consumed three days ago twice", domain.ConsumableSummary{LastConsumedAt: daysAgo(3), ConsumedCount: 2, CreatedAt: old()}, 117},
		{"consumed later today counts as today", domain.ConsumableSummary{LastConsumedAt: &[]time.Time{now.Add(6 * time.Hour)}[0], ConsumedCount: 1, CreatedAt: old()}, 110},
		{"brand new", domain.ConsumableSummary{CreatedAt: now.Add(-2 * time.Minute)}, 1000},
		{"five minutes is no longer new", domain.ConsumableSummary{CreatedAt: now.Add(-5 * time.Minute)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.item, now))
		})
	}
}

func TestRecentConsumptionBeatsStar(t *testing.T) {
	items := []domain.ConsumableSummary{
		{Type: domain.ConsumableFood, ID: "a", Name: "A", IsStarred: true, CreatedAt: old()},
		{Type: domain.ConsumableFood, ID: "b", Name: "B", LastConsumedAt: daysAgo(0), ConsumedCount: 1, CreatedAt: old()},
	}

	ranked := Rank(items, now)

	assert.Equal(t, []string{"B", "A"}, names(ranked))
	assert.Equal(t, int64(110), ranked[0].Score)
	assert.Equal(t, int64(100), ranked[1].Score)
}

func TestTiesFallBackToName(t *testing.T) {
	items := []domain.ConsumableSummary{
		{Type: domain.ConsumableRecipe, ID: "2", Name: "Pancakes", IsStarred: true, CreatedAt: old()},
		{Type: domain.ConsumableFood, ID: "1", Name: "Apple", IsStarred: true, CreatedAt: old()},
		{Type: domain.ConsumableFood, ID: "3", Name: "Zucchini", CreatedAt: old()},
	}

	assert.Equal(t, []string{"Apple", "Pancakes", "Zucchini"}, names(Rank(items, now)))
}

func TestNewItemOutranksEverything(t *testing.T) {
	items := []domain.ConsumableSummary{
		{ID: "1", Name: "Favourite", IsStarred: true, LastConsumedAt: daysAgo(0), ConsumedCount: 20, CreatedAt: old()},
		{ID: "2", Name: "Just added", CreatedAt: now.Add(-2 * time.Minute)},
	}

	ranked := Rank(items, now)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Just added", ranked[0].Name)
}

func TestRankIsDeterministic(t *testing.T) {
	items := []domain.ConsumableSummary{
		{Type: domain.ConsumableRecipe, ID: "r1", Name: "Soup", CreatedAt: old()},
		{Type: domain.ConsumableFood, ID: "f2", Name: "Soup", CreatedAt: old()},
		{Type: domain.ConsumableFood, ID: "f1", Name: "Soup", CreatedAt: old()},
	}
	reversed := []domain.ConsumableSummary{items[2], items[1], items[0]}

	a := Rank(items, now)
	b := Rank(reversed, now)

	assert.Equal(t, a, b)
	assert.Equal(t, "f1", a[0].ID)
	assert.Equal(t, domain.ConsumableRecipe, a[2].Type)
}

package consumable

import (
	"Matrafl-Backend/domain"
	"sort"
	"time"
)

const (
	starredBonus   = 100
	recencyBase    = 100
	perConsumption = 10
	newItemBonus   = 1000
	newItemWindow  = 5 * time.Minute
	// RecentDays is the trailing window for recency and frequency.
	RecentDays = 7
)

// Score rates how likely an item is to be logged next. now is passed in so
// the result depends only on the arguments.
func Score(item domain.ConsumableSummary, now time.Time) int64 {
	var score int64

	if item.IsStarred {
		score += starredBonus
	}
	if item.LastConsumedAt != nil {
		score += recencyBase - daysBetween(*item.LastConsumedAt, now)
	}
	score += perConsumption * item.ConsumedCount
	if now.Sub(item.CreatedAt) < newItemWindow {
		score += newItemBonus
	}
	return score
}

// daysBetween counts calendar days from then to now, never negative.
func daysBetween(then, now time.Time) int64 {
	days := int64(truncateDay(now).Sub(truncateDay(then)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Rank orders items by descending score, then by name. Type and id break any
// remaining tie so the order is total.
func Rank(items []domain.ConsumableSummary, now time.Time) []domain.RankedConsumable {
	ranked := make([]domain.RankedConsumable, 0, len(items))
	for _, item := range items {
		ranked = append(ranked, domain.RankedConsumable{ConsumableSummary: item, Score: Score(item, now)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.ID < b.ID
	})
	return ranked
}

package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"relecloud-backend/internal/domains/destination/model"
)

// rankByPopularity orders destinations by engagement: review count first,
// then average rating, both descending. A destination without reviews has an
// absent average, which sorts below any numeric value, so zero-review
// destinations always land last - more reviews always outranks a better
// rating with fewer reviews. Full ties keep their incoming (insertion)
// order; the store's default ordering is never relied upon.
func rankByPopularity(items []model.DestinationWithStats) []model.DestinationWithStats {
	ranked := make([]model.DestinationWithStats, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ReviewCount != ranked[j].ReviewCount {
			return ranked[i].ReviewCount > ranked[j].ReviewCount
		}
		return ratingLess(ranked[j].AvgRating, ranked[i].AvgRating)
	})

	return ranked
}

// ratingLess compares average ratings treating absent as lower than any value
func ratingLess(a, b *float64) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return true
	case b == nil:
		return false
	default:
		return *a < *b
	}
}

// roundRating rounds an average rating to one decimal place
func roundRating(avg float64) float64 {
	rounded, _ := decimal.NewFromFloat(avg).Round(1).Float64()
	return rounded
}

// roundRatingPtr rounds a nullable average, preserving absence
func roundRatingPtr(avg *float64) *float64 {
	if avg == nil {
		return nil
	}
	rounded := roundRating(*avg)
	return &rounded
}

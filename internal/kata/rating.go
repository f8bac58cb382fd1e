package kata

import "github.com/aalvaropc/kata/internal/domain"

// MinRating is the inclusive threshold used by FilterByRating.
const MinRating = 4

// FilterByRating returns, in input order, the items rated MinRating or above.
// The input slice is not modified.
func FilterByRating(items []domain.RatedItem) []domain.RatedItem {
	out := make([]domain.RatedItem, 0, len(items))
	for _, it := range items {
		if it.Rating >= MinRating {
			out = append(out, it)
		}
	}
	return out
}

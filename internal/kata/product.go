package kata

import "github.com/aalvaropc/kata/internal/domain"

// MostExpensive returns the product with the strictly greatest price.
// Ties keep the earliest product; ok is false for an empty input.
func MostExpensive(products []domain.Product) (best domain.Product, ok bool) {
	if len(products) == 0 {
		return domain.Product{}, false
	}
	best = products[0]
	for _, p := range products[1:] {
		if p.Price > best.Price {
			best = p
		}
	}
	return best, true
}

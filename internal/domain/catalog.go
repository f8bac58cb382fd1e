package domain

// RatedItem is a titled entry with a numeric rating.
type RatedItem struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}

// Product is a named entry with a price. Products are compared by price only.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

package catalogmodel

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// Stock is the amount of a product that can still be sold.
type Stock struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}

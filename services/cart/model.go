package cart

import (
	"github.com/MarcGrol/shopcart/services/catalog/catalogmodel"
)

const (
	MessageOutOfStock   = "Requested quantity is out of stock"
	MessageAddFailed    = "Error adding product"
	MessageRemoveFailed = "Error removing product"
	MessageUpdateFailed = "Error changing product amount"
)

// Product is one entry of the cart: the catalog product plus the amount in the cart.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Amount   int     `json:"amount"`
}

func newProduct(p catalogmodel.Product, amount int) Product {
	return Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Amount:   amount,
	}
}

// UpdateProductAmount carries the absolute amount wanted for a product.
type UpdateProductAmount struct {
	ProductID int `form:"productId" json:"productId"`
	Amount    int `form:"amount" json:"amount"`
}

type CartView struct {
	Products []Product   `json:"products"`
	Size     int         `json:"size"`
	Amounts  map[int]int `json:"amounts"`
}

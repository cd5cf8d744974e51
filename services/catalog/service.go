package catalog

import (
	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mystore"
	"github.com/MarcGrol/shopcart/services/catalog/catalogmodel"
)

type service struct {
	productStore mystore.Store[catalogmodel.Product]
	stockStore   mystore.Store[catalogmodel.Stock]
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(productStore mystore.Store[catalogmodel.Product], stockStore mystore.Store[catalogmodel.Stock], logger mylog.Logger) *service {
	return &service{
		productStore: productStore,
		stockStore:   stockStore,
		logger:       logger,
	}
}

package catalog

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/MarcGrol/shopcart/lib/myerrors"
	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/services/catalog/catalogmodel"
)

func (s *service) listProducts(c context.Context) ([]catalogmodel.Product, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch all products")

	products, err := s.productStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})

	return products, nil
}

func (s *service) getProduct(c context.Context, productID int) (catalogmodel.Product, error) {
	s.logger.Log(c, strconv.Itoa(productID), mylog.SeverityInfo, "Fetch product %d", productID)

	product, found, err := s.productStore.Get(c, strconv.Itoa(productID))
	if err != nil {
		return catalogmodel.Product{}, myerrors.NewInternalError(err)
	}
	if !found {
		return catalogmodel.Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with id %d not found", productID))
	}

	return product, nil
}

func (s *service) getStock(c context.Context, productID int) (catalogmodel.Stock, error) {
	s.logger.Log(c, strconv.Itoa(productID), mylog.SeverityInfo, "Fetch stock of product %d", productID)

	stock, found, err := s.stockStore.Get(c, strconv.Itoa(productID))
	if err != nil {
		return catalogmodel.Stock{}, myerrors.NewInternalError(err)
	}
	if !found {
		return catalogmodel.Stock{}, myerrors.NewNotFoundError(fmt.Errorf("stock of product %d not found", productID))
	}

	return stock, nil
}

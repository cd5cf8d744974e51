package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/services/catalog/catalogmodel"
)

//go:embed catalog.json
var catalogJSON []byte

type seedData struct {
	Products []catalogmodel.Product `json:"products"`
	Stock    []catalogmodel.Stock   `json:"stock"`
}

// Seed fills the stores with the demo catalog.
func (s *service) Seed(c context.Context) error {
	data := seedData{}
	err := json.Unmarshal(catalogJSON, &data)
	if err != nil {
		return fmt.Errorf("error parsing catalog seed: %s", err)
	}

	for _, p := range data.Products {
		err := s.productStore.Put(c, strconv.Itoa(p.ID), p)
		if err != nil {
			return fmt.Errorf("error seeding product %d: %s", p.ID, err)
		}
	}

	for _, st := range data.Stock {
		err := s.stockStore.Put(c, strconv.Itoa(st.ID), st)
		if err != nil {
			return fmt.Errorf("error seeding stock %d: %s", st.ID, err)
		}
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Seeded catalog with %d products and %d stock records", len(data.Products), len(data.Stock))

	return nil
}

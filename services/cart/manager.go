package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/MarcGrol/shopcart/lib/mylog"
	"github.com/MarcGrol/shopcart/lib/mystorage"
	"github.com/MarcGrol/shopcart/lib/mytoast"
	"github.com/MarcGrol/shopcart/services/catalog/catalogclient"
	"github.com/MarcGrol/shopcart/services/catalog/catalogmodel"
)

var errOutOfStock = errors.New("requested amount exceeds stock")

// Manager owns the cart. Every successful mutation is written to storage
// before it becomes visible in memory. Failures are never returned: they are
// reported to the user as a toast.
type Manager struct {
	sync.Mutex
	cart       []Product
	storageKey string
	storage    mystorage.LocalStorage
	catalog    catalogclient.Catalog
	toaster    mytoast.Toaster
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewManager(storageKey string, storage mystorage.LocalStorage, catalog catalogclient.Catalog, toaster mytoast.Toaster, logger mylog.Logger) *Manager {
	return &Manager{
		cart:       []Product{},
		storageKey: storageKey,
		storage:    storage,
		catalog:    catalog,
		toaster:    toaster,
		logger:     logger,
	}
}

// Load reads the persisted cart. A missing or unreadable value yields an empty cart.
func (m *Manager) Load(c context.Context) error {
	value, found, err := m.storage.GetItem(c, m.storageKey)
	if err != nil {
		return fmt.Errorf("error loading cart: %w", err)
	}

	cart := []Product{}
	if found {
		parsed, err := parseCart(value)
		if err != nil {
			m.logger.Log(c, m.storageKey, mylog.SeverityWarn, "Ignoring unreadable cart in storage: %s", err)
		} else {
			cart = parsed
		}
	}

	m.Lock()
	m.cart = cart
	m.Unlock()

	m.logger.Log(c, m.storageKey, mylog.SeverityInfo, "Loaded cart with %d products", len(cart))

	return nil
}

func (m *Manager) Cart() []Product {
	m.Lock()
	defer m.Unlock()

	return clone(m.cart)
}

// View is a consistent snapshot of the cart with the figures the storefront
// shows: the number of distinct products and the amount per product id.
func (m *Manager) View() CartView {
	m.Lock()
	defer m.Unlock()

	amounts := make(map[int]int, len(m.cart))
	for _, p := range m.cart {
		amounts[p.ID] = p.Amount
	}

	return CartView{
		Products: clone(m.cart),
		Size:     len(m.cart),
		Amounts:  amounts,
	}
}

func (m *Manager) AddProduct(c context.Context, productID int) {
	err := m.addProduct(c, productID)
	if err != nil {
		m.report(c, productID, err, MessageAddFailed)
	}
}

func (m *Manager) RemoveProduct(c context.Context, productID int) {
	err := m.removeProduct(c, productID)
	if err != nil {
		m.report(c, productID, err, MessageRemoveFailed)
	}
}

func (m *Manager) UpdateProductAmount(c context.Context, req UpdateProductAmount) {
	err := m.updateProductAmount(c, req)
	if err != nil {
		m.report(c, req.ProductID, err, MessageUpdateFailed)
	}
}

func (m *Manager) addProduct(c context.Context, productID int) error {
	m.logger.Log(c, strconv.Itoa(productID), mylog.SeverityInfo, "Add product %d", productID)

	productExists, exists := find(m.Cart(), productID)

	stock, err := m.fetchStock(c, productID)
	if err != nil {
		return err
	}

	if exists && productExists.Amount+1 > stock.Amount {
		return errOutOfStock
	}

	var product catalogmodel.Product
	if !exists {
		if stock.Amount < 1 {
			return errOutOfStock
		}

		var found bool
		product, found, err = m.catalog.GetProduct(c, productID)
		if err != nil {
			return fmt.Errorf("error fetching product %d: %w", productID, err)
		}
		if !found {
			return fmt.Errorf("product %d not found", productID)
		}
	}

	// The cart may have changed while the lookups were in flight.
	return m.commit(c, func(cart []Product) ([]Product, error) {
		idx := indexOf(cart, productID)
		if idx < 0 {
			if exists {
				return cart, nil
			}
			return append(cart, newProduct(product, 1)), nil
		}

		newAmount := cart[idx].Amount + 1
		if newAmount > stock.Amount {
			return nil, errOutOfStock
		}
		cart[idx].Amount = newAmount

		return cart, nil
	})
}

func (m *Manager) removeProduct(c context.Context, productID int) error {
	m.logger.Log(c, strconv.Itoa(productID), mylog.SeverityInfo, "Remove product %d", productID)

	return m.commit(c, func(cart []Product) ([]Product, error) {
		idx := indexOf(cart, productID)
		if idx < 0 {
			return nil, fmt.Errorf("product %d not in cart", productID)
		}

		return append(cart[:idx], cart[idx+1:]...), nil
	})
}

func (m *Manager) updateProductAmount(c context.Context, req UpdateProductAmount) error {
	if req.Amount <= 0 {
		return nil
	}

	m.logger.Log(c, strconv.Itoa(req.ProductID), mylog.SeverityInfo, "Update amount of product %d to %d", req.ProductID, req.Amount)

	stock, err := m.fetchStock(c, req.ProductID)
	if err != nil {
		return err
	}

	if req.Amount > stock.Amount {
		return errOutOfStock
	}

	return m.commit(c, func(cart []Product) ([]Product, error) {
		idx := indexOf(cart, req.ProductID)
		if idx >= 0 {
			cart[idx].Amount = req.Amount
		}

		return cart, nil
	})
}

func (m *Manager) fetchStock(c context.Context, productID int) (catalogmodel.Stock, error) {
	stock, found, err := m.catalog.GetStock(c, productID)
	if err != nil {
		return catalogmodel.Stock{}, fmt.Errorf("error fetching stock of product %d: %w", productID, err)
	}
	if !found {
		return catalogmodel.Stock{}, fmt.Errorf("stock of product %d not found", productID)
	}

	return stock, nil
}

// commit applies mutate to a copy of the current cart, persists the result and
// only then makes it the current cart.
func (m *Manager) commit(c context.Context, mutate func(cart []Product) ([]Product, error)) error {
	m.Lock()
	defer m.Unlock()

	newCart, err := mutate(clone(m.cart))
	if err != nil {
		return err
	}

	value, err := json.Marshal(newCart)
	if err != nil {
		return fmt.Errorf("error serializing cart: %w", err)
	}

	err = m.storage.SetItem(c, m.storageKey, string(value))
	if err != nil {
		return fmt.Errorf("error persisting cart: %w", err)
	}

	m.cart = newCart

	return nil
}

func (m *Manager) report(c context.Context, productID int, err error, fallbackMessage string) {
	if errors.Is(err, errOutOfStock) {
		m.logger.Log(c, strconv.Itoa(productID), mylog.SeverityInfo, "Product %d: %s", productID, err)
		m.toaster.Error(c, MessageOutOfStock)
		return
	}

	m.logger.Log(c, strconv.Itoa(productID), mylog.SeverityWarn, "Product %d: %s", productID, err)
	m.toaster.Error(c, fallbackMessage)
}

func parseCart(value string) ([]Product, error) {
	cart := []Product{}
	err := json.Unmarshal([]byte(value), &cart)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return []Product{}, nil
	}

	seen := map[int]bool{}
	for _, p := range cart {
		if p.Amount < 1 {
			return nil, fmt.Errorf("product %d has amount %d", p.ID, p.Amount)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("product %d occurs more than once", p.ID)
		}
		seen[p.ID] = true
	}

	return cart, nil
}

func find(cart []Product, productID int) (Product, bool) {
	idx := indexOf(cart, productID)
	if idx < 0 {
		return Product{}, false
	}
	return cart[idx], true
}

func indexOf(cart []Product, productID int) int {
	for i, p := range cart {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

func clone(cart []Product) []Product {
	cloned := make([]Product, len(cart))
	copy(cloned, cart)
	return cloned
}

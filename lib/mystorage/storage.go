package mystorage

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopcart/lib/mystore"
)

// StorageItem is one key/value pair as persisted by the underlying store.
type StorageItem struct {
	Key   string
	Value string `datastore:",noindex"`
}

//go:generate mockgen -source=storage.go -package mystorage -destination storage_mock.go LocalStorage
type LocalStorage interface {
	GetItem(c context.Context, key string) (string, bool, error)
	SetItem(c context.Context, key string, value string) error
}

type localStorage struct {
	store mystore.Store[StorageItem]
}

func New(store mystore.Store[StorageItem]) LocalStorage {
	return &localStorage{
		store: store,
	}
}

func (s *localStorage) GetItem(c context.Context, key string) (string, bool, error) {
	item, found, err := s.store.Get(c, key)
	if err != nil {
		return "", false, fmt.Errorf("error reading storage item %s: %w", key, err)
	}
	if !found {
		return "", false, nil
	}

	return item.Value, true, nil
}

func (s *localStorage) SetItem(c context.Context, key string, value string) error {
	err := s.store.Put(c, key, StorageItem{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("error writing storage item %s: %w", key, err)
	}

	return nil
}

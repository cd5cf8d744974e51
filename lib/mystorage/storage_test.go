package mystorage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcart/lib/mystore"
)

const cartKey = "@RocketShoes:cart"

func TestLocalStorage(t *testing.T) {
	c := context.TODO()

	t.Run("Absent key", func(t *testing.T) {
		sut := setup(t)

		_, found, err := sut.GetItem(c, cartKey)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Set then get", func(t *testing.T) {
		sut := setup(t)

		err := sut.SetItem(c, cartKey, `[{"id":1,"amount":2}]`)
		assert.NoError(t, err)

		value, found, err := sut.GetItem(c, cartKey)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[{"id":1,"amount":2}]`, value)
	})

	t.Run("Set overwrites whole value", func(t *testing.T) {
		sut := setup(t)

		assert.NoError(t, sut.SetItem(c, cartKey, `[{"id":1,"amount":2}]`))
		assert.NoError(t, sut.SetItem(c, cartKey, `[]`))

		value, _, err := sut.GetItem(c, cartKey)
		assert.NoError(t, err)
		assert.Equal(t, `[]`, value)
	})

	t.Run("Store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mystore.NewMockStore[StorageItem](ctrl)
		store.EXPECT().Get(gomock.Any(), cartKey).Return(StorageItem{}, false, fmt.Errorf("connection refused"))
		store.EXPECT().Put(gomock.Any(), cartKey, StorageItem{Key: cartKey, Value: "[]"}).Return(fmt.Errorf("connection refused"))

		sut := New(store)

		_, _, err := sut.GetItem(c, cartKey)
		assert.EqualError(t, err, "error reading storage item @RocketShoes:cart: connection refused")

		err = sut.SetItem(c, cartKey, "[]")
		assert.EqualError(t, err, "error writing storage item @RocketShoes:cart: connection refused")
	})
}

func setup(t *testing.T) LocalStorage {
	store, _, err := mystore.NewInMemoryStore[StorageItem](context.TODO())
	assert.NoError(t, err)
	return New(store)
}

package repository

import (
	"encoding/json"

	"go-inventory-pos/internal/model"

	"github.com/pkg/errors"
)

const ProductsKey = "inventory_products"

type ProductRepository interface {
	Load() ([]model.Product, error)
	Save(products []model.Product) error
	// Clear removes the collection; the next Load is empty
	Clear() error
}

type productRepo struct {
	store KVStore
}

func NewProductRepo(store KVStore) ProductRepository {
	return &productRepo{store}
}

func (r *productRepo) Load() ([]model.Product, error) {
	return loadCollection[model.Product](r.store, ProductsKey)
}

func (r *productRepo) Save(products []model.Product) error {
	return saveCollection(r.store, ProductsKey, products)
}

func (r *productRepo) Clear() error {
	return r.store.Delete(ProductsKey)
}

// loadCollection decodes the JSON array under key; a missing key is an empty collection
func loadCollection[T any](store KVStore, key string) ([]T, error) {
	raw, ok, err := store.Get(key)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if !ok || len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %q", key)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func saveCollection[T any](store KVStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode %q", key)
	}
	return store.Put(key, raw)
}

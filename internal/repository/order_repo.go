package repository

import "go-inventory-pos/internal/model"

const OrdersKey = "orders"

// OrderRepository stores the append-only order log
type OrderRepository interface {
	Load() ([]model.Order, error)
	Save(orders []model.Order) error
	// Clear removes the collection; the next Load is empty
	Clear() error
}

type orderRepo struct {
	store KVStore
}

func NewOrderRepo(store KVStore) OrderRepository {
	return &orderRepo{store}
}

func (r *orderRepo) Load() ([]model.Order, error) {
	return loadCollection[model.Order](r.store, OrdersKey)
}

func (r *orderRepo) Save(orders []model.Order) error {
	return saveCollection(r.store, OrdersKey, orders)
}

func (r *orderRepo) Clear() error {
	return r.store.Delete(OrdersKey)
}

package repository

import (
	"sync"
	"time"

	"go-inventory-pos/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore is a string-keyed blob store. Get reports ok=false for a key never written.
type KVStore interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

type gormKVStore struct {
	db *gorm.DB
}

// NewGormKVStore stores blobs in the kv_records table
func NewGormKVStore(db *gorm.DB) KVStore {
	return &gormKVStore{db}
}

func (s *gormKVStore) Get(key string) ([]byte, bool, error) {
	var rec model.KVRecord
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "get %q", key)
	}
	return []byte(rec.Value), true, nil
}

func (s *gormKVStore) Put(key string, value []byte) error {
	rec := model.KVRecord{Key: key, Value: string(value), UpdatedAt: time.Now()}
	err := upsert(s.db, &rec).Error
	return errors.Wrapf(err, "put %q", key)
}

// upsert overwrites value and updated_at when the key already exists
func upsert(db *gorm.DB, rec *model.KVRecord) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(rec)
}

func (s *gormKVStore) Delete(key string) error {
	err := s.db.Where("key = ?", key).Delete(&model.KVRecord{}).Error
	return errors.Wrapf(err, "delete %q", key)
}

type memoryKVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKVStore keeps blobs in process memory, for tests and throwaway runs
func NewMemoryKVStore() KVStore {
	return &memoryKVStore{data: make(map[string][]byte)}
}

func (s *memoryKVStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *memoryKVStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *memoryKVStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

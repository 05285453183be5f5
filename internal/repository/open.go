package repository

import (
	"go-inventory-pos/internal/config"
	"go-inventory-pos/internal/model"
	"go-inventory-pos/pkg/database"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// OpenStore picks the KV backend named by STORE_DRIVER
func OpenStore(cfg *config.Config, log *logrus.Logger) (KVStore, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Warn("Using in-memory store, data is lost on exit")
		return NewMemoryKVStore(), nil
	}

	db, err := database.ConnectDB(cfg.DSN(), log)
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}
	if err := db.AutoMigrate(&model.KVRecord{}); err != nil {
		return nil, errors.Wrap(err, "migrate kv_records")
	}
	return NewGormKVStore(db), nil
}

package model

import "time"

// KVRecord is one row of the string-keyed blob store
type KVRecord struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (KVRecord) TableName() string {
	return "kv_records"
}

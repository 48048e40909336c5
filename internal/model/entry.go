package model

import "time"

// Entry is one key-value pair in the SQL-backed store
type Entry struct {
	Key       string    `gorm:"primaryKey;size:255" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of naming strategy
func (Entry) TableName() string {
	return "kv_entries"
}

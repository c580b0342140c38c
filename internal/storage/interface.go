// Package storage defines interfaces and implementations for diagnostic result storage backends.
package storage

import (
	"context"
	"sync"
	"time"
)

// Result is one computed diagnostic field, archived for later retrieval.
// The payload carries the JSON-encoded data array so the table stays
// queryable by time, request and diagnostic name without a wide schema.
type Result struct {
	Time       time.Time `gorm:"not null" json:"time"`
	RequestID  string    `gorm:"type:uuid;index" json:"request_id"`
	Diagnostic string    `gorm:"index" json:"diagnostic"`
	FieldName  string    `json:"field_name"`
	Units      string    `json:"units"`
	Shape      string    `json:"shape"`
	Payload    []byte    `gorm:"type:jsonb" json:"payload"`
}

// TableName customizes the GORM table name
func (Result) TableName() string {
	return "diagnostics"
}

// StorageEngineInterface is an interface that provides a few standardized
// methods for various storage backends
type StorageEngineInterface interface {
	StartStorageEngine(context.Context, *sync.WaitGroup) chan<- Result
}

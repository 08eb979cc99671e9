package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type StorageType string

const (
	StorageTypePostgres StorageType = "postgres"
	StorageTypeSQLite   StorageType = "sqlite"
)

type FactoryConfig struct {
	StorageType  StorageType
	PostgresDSN  *string
	SQLiteDBPath *string
}

// NewConnectionFactory создает подключение к хранилищу нужного типа
// и сразу прогоняет миграции схемы.
func NewConnectionFactory(config FactoryConfig) (*gorm.DB, error) {
	switch config.StorageType {
	case StorageTypePostgres:
		if config.PostgresDSN == nil {
			return nil, errors.New("postgres dsn is empty")
		}
		conn, err := NewPostgres(*config.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres connection: %w", err)
		}
		return conn, nil
	case StorageTypeSQLite:
		if config.SQLiteDBPath == nil {
			return nil, errors.New("sqlite db path is empty")
		}
		conn, err := NewSQLite(*config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite connection: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}

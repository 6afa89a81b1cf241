package db

import (
	"fmt"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/talkifydocs/ingest-backend/config"
)

var db *gorm.DB
var once sync.Once

// DSN builds the PostgreSQL connection string for the database in cfg.
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=%s",
		cfg.Host,
		cfg.Username,
		cfg.Password,
		cfg.Name,
		cfg.Port,
		cfg.TimeZone,
	)
}

// GetSharedConnection returns the process-wide database connection, opening
// it on the first call.
func GetSharedConnection() *gorm.DB {
	once.Do(func() {
		db = GetConnection(config.Config.Database, config.Config.Server.Debug)
	})
	return db
}

// GetConnection opens a new connection pool with the given settings.
func GetConnection(cfg config.DatabaseConfig, debug bool) *gorm.DB {
	logMode := logger.Warn
	if debug {
		logMode = logger.Info
	}

	conn, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  DSN(cfg),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		QueryFields: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		panic(err.Error())
	}

	sqlDB, err := conn.DB()
	if err != nil {
		panic(err.Error())
	}

	sqlDB.SetMaxIdleConns(cfg.Pool.IdleConnections)
	sqlDB.SetMaxOpenConns(cfg.Pool.MaxConnections)
	sqlDB.SetConnMaxLifetime(cfg.Pool.ConnLifeTime)

	return conn
}

// Close closes the underlying connection pool.
func Close(conn *gorm.DB) {
	if conn == nil {
		return
	}
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

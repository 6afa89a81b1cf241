package repository

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Repository gathers the persistence adapters of the ingestion backend: the
// ingestion record store, the vector index and the run leases.
type Repository interface {
	File
	VectorIndex
	Lease
}

type repository struct {
	db          *gorm.DB
	vectorIndex VectorIndex
	redisClient *redis.Client
}

// NewRepository returns a Repository over the given clients.
func NewRepository(db *gorm.DB, vectorIndex VectorIndex, redisClient *redis.Client) Repository {
	return &repository{
		db:          db,
		vectorIndex: vectorIndex,
		redisClient: redisClient,
	}
}

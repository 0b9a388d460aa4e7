package store

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iac-appeals/aip-sync/core/db"
)

type Stores struct {
	redis      *redis.Client
	db         *db.DB
	sessionTTL time.Duration
	prefix     string
}

func NewStores(redisClient *redis.Client, database *db.DB, prefix string, sessionTTL time.Duration) *Stores {
	return &Stores{
		redis:      redisClient,
		db:         database,
		sessionTTL: sessionTTL,
		prefix:     prefix,
	}
}

func (s *Stores) Sessions() SessionStore {
	return newRedisSessionStore(s.redis, s.prefix, s.sessionTTL)
}

func (s *Stores) Audit() AuditStore {
	return newAuditStore(s.db)
}

package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"quickdrop/config"
)

// DraftCacheClient holds booking draft sessions as JSON blobs.
var DraftCacheClient *redis.Client

// InitDraftCache initializes the Redis client backing the draft session store.
func InitDraftCache() {
	DraftCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDraftDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DraftCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (draft cache): %v", err)
	}
}

// GetDraftCacheClient returns the draft session cache client.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		InitDraftCache()
	}
	return DraftCacheClient
}

package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis dials Redis for the rate limiter. Unlike a hard dependency,
// a missing or unreachable Redis leaves RedisClient nil and the limiter
// passes requests through — the reporting endpoints never need it.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("[config.redis] REDIS_URL not set, rate limiting disabled")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[config.redis] invalid REDIS_URL, rate limiting disabled: %v", err)
		return
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("[config.redis] connection failed, rate limiting disabled: %v", err)
		return
	}

	RedisClient = client
	log.Println("[config.redis] connected")
}

package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis initialise la connexion Redis qui porte tout l'état par navigateur
// (session, panier, compteurs de rate limit)
func InitRedis() error {
	redisHost := os.Getenv("REDIS_HOST")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	if redisHost == "" {
		redisHost = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     redisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := contextWithTimeout()
	defer cancel()
	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("impossible de se connecter à Redis: %v", err)
	}

	log.Println("✅ Redis connecté avec succès")
	return nil
}

func contextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// CloseRedis ferme la connexion Redis
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// --- Clés par navigateur (sid = identifiant de session navigateur) ---

// SessionKey est l'entrée unique {user, access_token} d'un navigateur
func SessionKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

// CartKey est le panier local d'un navigateur
func CartKey(sid string) string {
	return fmt.Sprintf("cart:%s", sid)
}

// CartChannel est le canal pub/sub notifiant les changements de panier
// (consommé par le badge WebSocket)
func CartChannel(sid string) string {
	return fmt.Sprintf("cart:events:%s", sid)
}

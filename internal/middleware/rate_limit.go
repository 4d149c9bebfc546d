package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vibeshop_front_end/internal/cache"
)

const (
	// Limites par endpoint
	LoginMaxAttempts  = 5
	SearchMaxRequests = 30

	// Durées de cooldown
	LoginCooldown  = 15 * time.Minute
	SearchCooldown = 1 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par identifiant
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		if username == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "login_attempts:" + username

		// Vérifier si l'identifiant est en cooldown
		cooldownKey := "login_cooldown:" + username
		if cache.RedisClient.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := cache.RedisClient.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		// Vérifier le nombre de tentatives
		attempts, _ := cache.RedisClient.Get(ctx, key).Int()
		if attempts >= LoginMaxAttempts {
			// Activer le cooldown
			cache.RedisClient.Set(ctx, cooldownKey, "1", LoginCooldown)
			cache.RedisClient.Del(ctx, key)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Compte bloqué pendant %d minutes", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		// Si login échoué, incrémenter les tentatives ; si réussi, réinitialiser
		switch {
		case c.Writer.Status() == http.StatusUnauthorized:
			cache.RedisClient.Incr(ctx, key)
			cache.RedisClient.Expire(ctx, key, LoginCooldown)
		case c.Writer.Status() < 400:
			cache.RedisClient.Del(ctx, key)
			cache.RedisClient.Del(ctx, cooldownKey)
		}
	}
}

// SearchRateLimit limite les recherches catalogue par IP (anti-spam)
func SearchRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Seules les recherches explicites comptent
		if c.Query("q") == "" {
			c.Next()
			return
		}

		ip := c.ClientIP()
		ctx := context.Background()
		key := "search_requests:" + ip

		requests, _ := cache.RedisClient.Get(ctx, key).Int()
		if requests >= SearchMaxRequests {
			c.String(http.StatusTooManyRequests, "Trop de recherches. Réessayez dans 1 minute")
			c.Abort()
			return
		}

		// Incrémenter
		pipe := cache.RedisClient.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, SearchCooldown)
		pipe.Exec(ctx)

		c.Next()
	}
}

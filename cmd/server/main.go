package main

import (
	"html/template"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"vibeshop_front_end/internal/api"
	"vibeshop_front_end/internal/cache"
	"vibeshop_front_end/internal/cart"
	"vibeshop_front_end/internal/config"
	"vibeshop_front_end/internal/handlers"
	"vibeshop_front_end/internal/middleware"
	"vibeshop_front_end/internal/routes"
	"vibeshop_front_end/internal/session"
)

func main() {
	config.Load()

	if err := cache.InitRedis(); err != nil {
		log.Fatal("❌ Impossible d'initialiser Redis : ", err)
	}
	defer cache.CloseRedis()

	backend := config.BackendURL()
	apiClient := api.NewClient(backend)
	log.Println("✅ Backend configuré :", backend)

	sessionStore := session.NewStore(cache.RedisClient, apiClient)
	cartStore := cart.NewStore(cache.RedisClient, apiClient)
	h := handlers.New(apiClient, sessionStore, cartStore, cache.RedisClient)

	r := gin.Default()
	r.Use(corsMiddleware())
	r.Use(middleware.Session(cookieStore(), sessionStore))

	r.Static("/static", "./web/static")
	r.SetFuncMap(template.FuncMap{
		// Sous-total d'une ligne de panier
		"mulf": func(price float64, qty int) float64 { return price * float64(qty) },
	})
	r.LoadHTMLGlob("web/templates/*.html")

	routes.RegisterRoutes(r, h)

	port := config.Port()
	log.Println("🚀 Front VibeShop lancé sur le port", port)
	r.Run(":" + port)
}

// cookieStore configure le cookie qui porte l'identifiant navigateur (sid)
func cookieStore() *sessions.CookieStore {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func corsMiddleware() gin.HandlerFunc {
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Split(origins, ","),
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"vibeshop_front_end/internal/api"
	"vibeshop_front_end/internal/cart"
	"vibeshop_front_end/internal/middleware"
	"vibeshop_front_end/internal/models"
	"vibeshop_front_end/internal/session"
)

const darkCookieName = "vibeshop_dark"

// Handler regroupe les vues du front. Les stores sont injectés : les tests en
// construisent des instances isolées sur un Redis et un backend factices.
type Handler struct {
	api      *api.Client
	sessions *session.Store
	carts    *cart.Store
	rdb      *redis.Client
}

func New(client *api.Client, sessions *session.Store, carts *cart.Store, rdb *redis.Client) *Handler {
	return &Handler{api: client, sessions: sessions, carts: carts, rdb: rdb}
}

// render ajoute aux données de vue l'état commun à toutes les pages :
// session courante, compteur panier, thème
func (h *Handler) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := middleware.CurrentSession(c)
	count := 0
	if items, err := h.carts.Items(c.Request.Context(), middleware.SID(c)); err == nil {
		count = models.CartCount(items)
	}

	data["Session"] = sess
	data["User"] = sess.User
	data["CartCount"] = count
	data["Dark"] = darkMode(c)
	c.HTML(status, tmpl, data)
}

func darkMode(c *gin.Context) bool {
	v, _ := c.Cookie(darkCookieName)
	return v == "1"
}

// ToggleTheme bascule le mode sombre, mémorisé en cookie
func (h *Handler) ToggleTheme(c *gin.Context) {
	next := "1"
	if darkMode(c) {
		next = "0"
	}
	c.SetCookie(darkCookieName, next, 86400*365, "/", "", false, false)
	c.Redirect(http.StatusSeeOther, backTo(c, "/"))
}

// backTo renvoie la page d'origine de la requête, ou fallback
func backTo(c *gin.Context, fallback string) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return fallback
}

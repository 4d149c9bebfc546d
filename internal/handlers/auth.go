package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vibeshop_front_end/internal/middleware"
)

// LoginPage affiche le formulaire de connexion
func (h *Handler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", nil)
}

// Login authentifie auprès du backend puis adopte le panier serveur : le
// panier local accumulé hors session est remplacé, le serveur fait foi.
func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"Error":    "Email et mot de passe requis",
			"Username": username,
		})
		return
	}

	sid := middleware.SID(c)
	sess, err := h.sessions.Login(c.Request.Context(), sid, username, password)
	if err != nil {
		h.render(c, http.StatusUnauthorized, "login.html", gin.H{
			"Error":    err.Error(),
			"Username": username,
		})
		return
	}

	if _, err := h.carts.Adopt(c.Request.Context(), sid, sess.Token); err != nil {
		// Le panier distant n'a pas pu être chargé : on garde le panier local
		log.Printf("⚠️ Chargement panier distant échoué pour %s: %v", sid, err)
	}

	log.Printf("✅ Connexion de %s", sess.User.Email)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout efface la session et le panier, en mémoire comme dans le cache
func (h *Handler) Logout(c *gin.Context) {
	sid := middleware.SID(c)
	ctx := c.Request.Context()

	if err := h.sessions.Logout(ctx, sid); err != nil {
		log.Printf("⚠️ Erreur suppression session %s: %v", sid, err)
	}
	// Plus de session : vidage purement local, aucune synchro distante
	if err := h.carts.Clear(ctx, sid, ""); err != nil {
		log.Printf("⚠️ Erreur vidage panier %s: %v", sid, err)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

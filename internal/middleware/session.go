package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"vibeshop_front_end/internal/models"
	"vibeshop_front_end/internal/session"
)

const sidCookieName = "vibeshop_sid"

// Session attache à chaque requête l'identifiant navigateur (sid) et la
// session restaurée depuis le cache. Le token est relu à chaque requête :
// aucune capture périmée possible après un logout.
func Session(cookies *sessions.CookieStore, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cs, _ := cookies.Get(c.Request, sidCookieName)

		sid, _ := cs.Values["sid"].(string)
		if sid == "" {
			sid = uuid.NewString()
			cs.Values["sid"] = sid
			if err := cs.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️ Erreur sauvegarde cookie sid: %v", err)
			}
		}

		sess, err := store.Restore(c.Request.Context(), sid)
		if err != nil {
			// Cache indisponible : on sert la page en anonyme plutôt que d'échouer
			log.Printf("⚠️ Erreur restauration session %s: %v", sid, err)
			sess = models.Session{}
		}

		c.Set("sid", sid)
		c.Set("session", sess)
		c.Next()
	}
}

// SID retourne l'identifiant navigateur de la requête
func SID(c *gin.Context) string {
	return c.GetString("sid")
}

// CurrentSession retourne la session de la requête (vide si anonyme)
func CurrentSession(c *gin.Context) models.Session {
	if v, ok := c.Get("session"); ok {
		if sess, ok := v.(models.Session); ok {
			return sess
		}
	}
	return models.Session{}
}

// RequireSession redirige vers la page de connexion si aucune session active
func RequireSession(c *gin.Context) {
	if !CurrentSession(c).Active() {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.Next()
}

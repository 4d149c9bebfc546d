package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin vérifie que la session porte le drapeau administrateur.
// Protège les endpoints de mutation admin ; la page admin elle-même affiche
// un message d'accès restreint sans appel privilégié.
func RequireAdmin(c *gin.Context) {
	sess := CurrentSession(c)
	if !sess.Active() || !sess.User.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
		c.Abort()
		return
	}
	c.Next()
}

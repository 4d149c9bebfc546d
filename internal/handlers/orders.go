package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibeshop_front_end/internal/middleware"
)

// OrdersPage affiche l'historique de commandes de l'utilisateur connecté
func (h *Handler) OrdersPage(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if !sess.Active() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	orders, err := h.api.Orders(c.Request.Context(), sess.Token)
	if err != nil {
		h.render(c, http.StatusBadGateway, "orders.html", gin.H{"Error": err.Error()})
		return
	}

	h.render(c, http.StatusOK, "orders.html", gin.H{"Orders": orders})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibeshop_front_end/internal/middleware"
)

// ProductPage affiche un produit avec ses avis
func (h *Handler) ProductPage(c *gin.Context) {
	id := c.Param("id")

	product, err := h.api.Product(c.Request.Context(), id)
	if err != nil {
		h.render(c, http.StatusBadGateway, "product.html", gin.H{"Error": err.Error()})
		return
	}

	h.render(c, http.StatusOK, "product.html", gin.H{"Product": product})
}

// SubmitReview poste un avis. Sans session active la demande est rejetée
// localement, sans appel réseau. Après succès on redirige vers la fiche
// produit : le GET recharge le produit complet, la note agrégée affichée est
// donc toujours celle calculée par le serveur.
func (h *Handler) SubmitReview(c *gin.Context) {
	id := c.Param("id")

	sess := middleware.CurrentSession(c)
	if !sess.Active() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil || rating < 1 || rating > 5 {
		rating = 5
	}
	comment := c.PostForm("comment")

	if err := h.api.CreateReview(c.Request.Context(), sess.Token, id, rating, comment); err != nil {
		// Message serveur remonté tel quel, pas d'ajout local spéculatif
		product, perr := h.api.Product(c.Request.Context(), id)
		if perr != nil {
			h.render(c, http.StatusBadGateway, "product.html", gin.H{"Error": err.Error()})
			return
		}
		h.render(c, http.StatusBadGateway, "product.html", gin.H{
			"Product": product,
			"Error":   err.Error(),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/product/"+id)
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vibeshop_front_end/internal/middleware"
	"vibeshop_front_end/internal/models"
)

// CartPage affiche le panier
func (h *Handler) CartPage(c *gin.Context) {
	items, err := h.carts.Items(c.Request.Context(), middleware.SID(c))
	if err != nil {
		h.render(c, http.StatusInternalServerError, "cart.html", gin.H{
			"Error": "Impossible de charger le panier",
		})
		return
	}

	h.render(c, http.StatusOK, "cart.html", gin.H{
		"Items": items,
		"Total": models.CartTotal(items),
	})
}

// CartAdd ajoute un produit au panier avec un instantané de son titre, prix
// et image au moment de l'ajout
func (h *Handler) CartAdd(c *gin.Context) {
	productID := c.PostForm("product_id")
	if productID == "" {
		c.Redirect(http.StatusSeeOther, backTo(c, "/"))
		return
	}

	product, err := h.api.Product(c.Request.Context(), productID)
	if err != nil {
		log.Printf("❌ Produit %s introuvable pour ajout panier: %v", productID, err)
		h.render(c, http.StatusBadGateway, "cart.html", gin.H{"Error": err.Error()})
		return
	}

	sess := middleware.CurrentSession(c)
	if _, err := h.carts.AddItem(c.Request.Context(), middleware.SID(c), sess.Token, product); err != nil {
		h.render(c, http.StatusInternalServerError, "cart.html", gin.H{"Error": "Impossible de mettre à jour le panier"})
		return
	}

	c.Redirect(http.StatusSeeOther, backTo(c, "/cart"))
}

// CartIncrement augmente la quantité d'une ligne
func (h *Handler) CartIncrement(c *gin.Context) {
	h.mutate(c, func() error {
		sess := middleware.CurrentSession(c)
		_, err := h.carts.Increment(c.Request.Context(), middleware.SID(c), sess.Token, c.Param("id"))
		return err
	})
}

// CartDecrement diminue la quantité d'une ligne (plancher à 1)
func (h *Handler) CartDecrement(c *gin.Context) {
	h.mutate(c, func() error {
		sess := middleware.CurrentSession(c)
		_, err := h.carts.Decrement(c.Request.Context(), middleware.SID(c), sess.Token, c.Param("id"))
		return err
	})
}

// CartRemove supprime une ligne du panier
func (h *Handler) CartRemove(c *gin.Context) {
	h.mutate(c, func() error {
		sess := middleware.CurrentSession(c)
		_, err := h.carts.Remove(c.Request.Context(), middleware.SID(c), sess.Token, c.Param("id"))
		return err
	})
}

func (h *Handler) mutate(c *gin.Context, fn func() error) {
	if err := fn(); err != nil {
		h.render(c, http.StatusInternalServerError, "cart.html", gin.H{"Error": "Impossible de mettre à jour le panier"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

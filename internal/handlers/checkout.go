package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vibeshop_front_end/internal/api"
	"vibeshop_front_end/internal/checkout"
	"vibeshop_front_end/internal/middleware"
	"vibeshop_front_end/internal/models"
)

// CheckoutPage affiche l'adresse de livraison et le récapitulatif
func (h *Handler) CheckoutPage(c *gin.Context) {
	sid := middleware.SID(c)
	items, err := h.carts.Items(c.Request.Context(), sid)
	if err != nil {
		h.render(c, http.StatusInternalServerError, "checkout.html", gin.H{"Error": "Impossible de charger le panier"})
		return
	}

	addr := models.Address{Country: "US"}
	if sess := middleware.CurrentSession(c); sess.Active() {
		addr.FullName = sess.User.Name
	}

	h.render(c, http.StatusOK, "checkout.html", gin.H{
		"Items":   items,
		"Total":   models.CartTotal(items),
		"Address": addr,
	})
}

// PlaceOrder déroule le tunnel de commande : payment intent puis création de
// commande. Tout échec laisse le panier intact pour permettre de réessayer ;
// seul le succès vide le panier et renvoie vers l'historique.
func (h *Handler) PlaceOrder(c *gin.Context) {
	sid := middleware.SID(c)
	sess := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	items, err := h.carts.Items(ctx, sid)
	if err != nil {
		h.render(c, http.StatusInternalServerError, "checkout.html", gin.H{"Error": "Impossible de charger le panier"})
		return
	}
	if len(items) == 0 {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	addr := models.Address{
		FullName:   strings.TrimSpace(c.PostForm("full_name")),
		Line1:      strings.TrimSpace(c.PostForm("line1")),
		City:       strings.TrimSpace(c.PostForm("city")),
		State:      strings.TrimSpace(c.PostForm("state")),
		PostalCode: strings.TrimSpace(c.PostForm("postal_code")),
		Country:    strings.TrimSpace(c.PostForm("country")),
	}

	flow := checkout.NewFlow(h.api)
	order, err := flow.Place(ctx, sess, items, addr)
	if err != nil {
		status := http.StatusBadGateway
		msg := err.Error()
		if errors.Is(err, api.ErrAuthRequired) {
			status = http.StatusUnauthorized
			msg = "Connectez-vous pour passer commande"
		}
		flow.Reset()
		h.render(c, status, "checkout.html", gin.H{
			"Error":   msg,
			"Items":   items,
			"Total":   models.CartTotal(items),
			"Address": addr,
		})
		return
	}

	log.Printf("✅ Commande %s créée (%.2f %s)", order.ID, order.TotalAmount, order.Currency)

	if err := h.carts.Clear(ctx, sid, sess.Token); err != nil {
		log.Printf("⚠️ Erreur vidage panier après commande %s: %v", order.ID, err)
	}
	c.Redirect(http.StatusSeeOther, "/orders")
}

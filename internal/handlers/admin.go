package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"vibeshop_front_end/internal/middleware"
	"vibeshop_front_end/internal/models"
)

// AdminPage affiche le gestionnaire de produits. Sans session ou sans
// drapeau admin, un message d'accès restreint est rendu sans qu'aucun appel
// privilégié ne soit tenté.
func (h *Handler) AdminPage(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if !sess.Active() {
		h.render(c, http.StatusOK, "admin.html", gin.H{"LoggedOut": true})
		return
	}
	if !sess.User.IsAdmin {
		h.render(c, http.StatusForbidden, "admin.html", gin.H{"Restricted": true})
		return
	}

	list, err := h.api.SearchProducts(c.Request.Context(), "", "", "newest")
	if err != nil {
		h.render(c, http.StatusBadGateway, "admin.html", gin.H{"Error": err.Error()})
		return
	}

	h.render(c, http.StatusOK, "admin.html", gin.H{
		"Items": list.Items,
		"Form":  models.ProductInput{},
	})
}

// AdminCreate crée un produit. Titre et prix sont validés côté front avant
// tout appel ; après succès la liste est rechargée entièrement depuis le
// serveur (redirection) pour refléter identifiants et valeurs par défaut
// attribués côté backend.
func (h *Handler) AdminCreate(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	input := models.ProductInput{
		Title:        strings.TrimSpace(c.PostForm("title")),
		Description:  strings.TrimSpace(c.PostForm("description")),
		CategoryName: strings.TrimSpace(c.PostForm("category_name")),
		Brand:        strings.TrimSpace(c.PostForm("brand")),
		Images:       splitImages(c.PostForm("images")),
	}
	input.CountInStock, _ = strconv.Atoi(c.PostForm("count_in_stock"))

	price, priceErr := strconv.ParseFloat(strings.TrimSpace(c.PostForm("price")), 64)
	input.Price = price

	// Validation locale : bloque la soumission avant toute requête
	var validation string
	switch {
	case input.Title == "":
		validation = "Le titre est requis"
	case priceErr != nil || c.PostForm("price") == "":
		validation = "Le prix doit être un nombre"
	case price < 0:
		validation = "Le prix ne peut pas être négatif"
	}
	if validation != "" {
		h.renderAdminForm(c, http.StatusBadRequest, input, validation)
		return
	}

	if _, err := h.api.CreateProduct(c.Request.Context(), sess.Token, input); err != nil {
		h.renderAdminForm(c, http.StatusBadGateway, input, err.Error())
		return
	}

	log.Printf("✅ Produit créé: %s", input.Title)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// AdminDelete supprime un produit. Appelé en fetch depuis la page admin après
// confirmation ; en cas de succès la carte est retirée du DOM sans rechargement
// complet de la liste.
func (h *Handler) AdminDelete(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id := c.Param("id")

	if err := h.api.DeleteProduct(c.Request.Context(), sess.Token, id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	log.Printf("🗑️ Produit supprimé: %s", id)
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}

// renderAdminForm réaffiche le formulaire avec ses valeurs et l'erreur, en
// rechargeant la liste courante
func (h *Handler) renderAdminForm(c *gin.Context, status int, input models.ProductInput, msg string) {
	var items []models.Product
	if list, err := h.api.SearchProducts(c.Request.Context(), "", "", "newest"); err == nil {
		items = list.Items
	}

	h.render(c, status, "admin.html", gin.H{
		"Items":     items,
		"Form":      input,
		"FormError": msg,
	})
}

func splitImages(raw string) []string {
	images := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	return images
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"vibeshop_front_end/internal/models"
)

// Home affiche le catalogue, filtrable par recherche, catégorie et tri.
// Catégories et produits sont chargés en parallèle.
func (h *Handler) Home(c *gin.Context) {
	q := c.Query("q")
	category := c.Query("category")
	sort := c.DefaultQuery("sort", "newest")

	var (
		categories []models.Category
		list       models.ProductList
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		categories, err = h.api.Categories(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		list, err = h.api.SearchProducts(ctx, q, category, sort)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("❌ Erreur chargement catalogue: %v", err)
		h.render(c, http.StatusBadGateway, "home.html", gin.H{
			"Error": err.Error(),
			"Query": q, "Category": category, "Sort": sort,
		})
		return
	}

	h.render(c, http.StatusOK, "home.html", gin.H{
		"Categories": categories,
		"Products":   list.Items,
		"Total":      list.Total,
		"Query":      q, "Category": category, "Sort": sort,
	})
}

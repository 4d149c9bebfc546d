package api

import (
	"context"
	"net/http"
	"net/url"

	"vibeshop_front_end/internal/models"
)

// Categories récupère la liste des catégories
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/categories", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// SearchProducts interroge le catalogue. sort ∈ {newest, price_asc, price_desc}
func (c *Client) SearchProducts(ctx context.Context, q, category, sort string) (models.ProductList, error) {
	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	if category != "" {
		params.Set("category", category)
	}
	if sort != "" {
		params.Set("sort", sort)
	}

	path := "/api/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.ProductList{}, err
	}

	var list models.ProductList
	if err := c.do(req, &list); err != nil {
		return models.ProductList{}, err
	}
	return list, nil
}

// Product récupère un produit avec ses avis
func (c *Client) Product(ctx context.Context, id string) (models.Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err := c.do(req, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

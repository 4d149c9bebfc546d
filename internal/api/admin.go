package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"vibeshop_front_end/internal/models"
)

// CreateProduct crée un produit (réservé admin côté backend)
func (c *Client) CreateProduct(ctx context.Context, token string, input models.ProductInput) (models.Product, error) {
	if token == "" {
		return models.Product{}, ErrAuthRequired
	}
	if input.Images == nil {
		input.Images = []string{}
	}

	body, err := json.Marshal(input)
	if err != nil {
		return models.Product{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/products", bytes.NewReader(body))
	if err != nil {
		return models.Product{}, err
	}
	addAuthHeader(req, token)
	req.Header.Set("Content-Type", "application/json")

	var created models.Product
	if err := c.do(req, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// DeleteProduct supprime un produit (réservé admin côté backend)
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	if token == "" {
		return ErrAuthRequired
	}

	req, err := c.newRequest(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	addAuthHeader(req, token)

	return c.do(req, nil)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"vibeshop_front_end/internal/models"
)

// Cart récupère le panier distant de l'utilisateur authentifié
func (c *Client) Cart(ctx context.Context, token string) ([]models.CartItem, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/cart", nil)
	if err != nil {
		return nil, err
	}
	addAuthHeader(req, token)

	var resp struct {
		Items []models.CartItem `json:"items"`
	}
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// SaveCart persiste le panier complet côté serveur (dernier écrit gagne)
func (c *Client) SaveCart(ctx context.Context, token string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	body, err := json.Marshal(map[string]any{"items": items})
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/cart", bytes.NewReader(body))
	if err != nil {
		return err
	}
	addAuthHeader(req, token)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"vibeshop_front_end/internal/models"
)

// OrderRequest est le payload de création de commande
type OrderRequest struct {
	Items           []models.CartItem `json:"items"`
	ShippingAddress models.Address    `json:"shipping_address"`
	TotalAmount     float64           `json:"total_amount"`
	Currency        string            `json:"currency"`
	PaymentIntentID string            `json:"payment_intent_id"`
}

// CreatePaymentIntent demande au backend d'autoriser le paiement et retourne
// l'identifiant du payment intent
func (c *Client) CreatePaymentIntent(ctx context.Context, token string, amount float64, currency string) (string, error) {
	body, err := json.Marshal(map[string]any{"amount": amount, "currency": currency})
	if err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/payments/intent", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	addAuthHeader(req, token)
	req.Header.Set("Content-Type", "application/json")

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// CreateOrder crée la commande à partir d'un payment intent obtenu au préalable
func (c *Client) CreateOrder(ctx context.Context, token string, order OrderRequest) (models.Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return models.Order{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/orders", bytes.NewReader(body))
	if err != nil {
		return models.Order{}, err
	}
	addAuthHeader(req, token)
	req.Header.Set("Content-Type", "application/json")

	var created models.Order
	if err := c.do(req, &created); err != nil {
		return models.Order{}, err
	}
	return created, nil
}

// Orders récupère l'historique de commandes de l'utilisateur
func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/orders", nil)
	if err != nil {
		return nil, err
	}
	addAuthHeader(req, token)

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// CreateReview poste un avis sur un produit. Le front refait ensuite un GET
// complet du produit : la note agrégée affichée est toujours celle calculée
// par le serveur, jamais patchée localement.
func (c *Client) CreateReview(ctx context.Context, token, productID string, rating int, comment string) error {
	if token == "" {
		return ErrAuthRequired
	}

	body, err := json.Marshal(map[string]any{"rating": rating, "comment": comment})
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/products/"+url.PathEscape(productID)+"/reviews", bytes.NewReader(body))
	if err != nil {
		return err
	}
	addAuthHeader(req, token)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

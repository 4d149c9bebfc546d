package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"vibeshop_front_end/internal/models"
)

// Login authentifie l'utilisateur. Le backend attend un formulaire
// x-www-form-urlencoded {username, password} et renvoie {user, access_token}.
func (c *Client) Login(ctx context.Context, username, password string) (models.Session, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return models.Session{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var session models.Session
	if err := c.do(req, &session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrAuthRequired : l'opération exige une session active. Vérifié localement,
// aucun appel réseau n'est émis quand cette erreur est retournée.
var ErrAuthRequired = errors.New("authentification requise")

// Client appelle l'API backend REST (catalogue, panier, commandes, paiements).
// Le token est passé à chaque appel, jamais capturé à la construction : une
// déconnexion est ainsi effective immédiatement.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError est une réponse non-2xx du backend. Message reprend tel quel le
// champ "detail" renvoyé par le serveur.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewClient construit un client pour l'API backend
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Le backend renvoie {"detail": "..."} — on remonte le message tel quel,
		// avec un repli générique si le corps n'est pas du JSON exploitable
		var errResp struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.Detail
		if msg == "" {
			msg = "Une erreur est survenue, réessayez plus tard"
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func addAuthHeader(req *http.Request, token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

package cart

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"vibeshop_front_end/internal/api"
	"vibeshop_front_end/internal/cache"
	"vibeshop_front_end/internal/models"
)

const cartTTL = 30 * 24 * time.Hour

// Store gère le panier d'un navigateur, persisté dans Redis. L'état local fait
// autorité pour l'UI ; quand une session existe, chaque mutation déclenche une
// synchronisation best-effort vers le backend (fire-and-forget, jamais
// remontée à l'appelant). Panier local et panier serveur peuvent donc diverger
// silencieusement en cas de panne réseau.
type Store struct {
	rdb *redis.Client
	api *api.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, client *api.Client) *Store {
	return &Store{rdb: rdb, api: client, ttl: cartTTL}
}

// Items retourne les lignes du panier, dans l'ordre d'ajout
func (s *Store) Items(ctx context.Context, sid string) ([]models.CartItem, error) {
	data, err := s.rdb.Get(ctx, cache.CartKey(sid)).Result()
	if err == redis.Nil || data == "" {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem ajoute un produit : ligne existante → quantité +1, sinon nouvelle
// ligne en fin de panier avec un instantané du titre/prix/image actuels
func (s *Store) AddItem(ctx context.Context, sid, token string, p models.Product) ([]models.CartItem, error) {
	items, err := s.Items(ctx, sid)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		items = append(items, models.CartItem{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Image:     image,
			Quantity:  1,
		})
	}

	return s.apply(ctx, sid, token, items)
}

// Increment augmente la quantité d'une ligne de 1
func (s *Store) Increment(ctx context.Context, sid, token, productID string) ([]models.CartItem, error) {
	items, err := s.Items(ctx, sid)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity++
		}
	}
	return s.apply(ctx, sid, token, items)
}

// Decrement diminue la quantité d'une ligne de 1, plancher à 1 — la
// suppression d'une ligne passe par Remove, jamais par Decrement
func (s *Store) Decrement(ctx context.Context, sid, token, productID string) ([]models.CartItem, error) {
	items, err := s.Items(ctx, sid)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProductID == productID && items[i].Quantity > 1 {
			items[i].Quantity--
		}
	}
	return s.apply(ctx, sid, token, items)
}

// Remove supprime entièrement une ligne
func (s *Store) Remove(ctx context.Context, sid, token, productID string) ([]models.CartItem, error) {
	items, err := s.Items(ctx, sid)
	if err != nil {
		return nil, err
	}

	kept := []models.CartItem{}
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return s.apply(ctx, sid, token, kept)
}

// Replace remplace tout le panier (chargement distant, vidage après commande)
func (s *Store) Replace(ctx context.Context, sid, token string, items []models.CartItem) ([]models.CartItem, error) {
	if items == nil {
		items = []models.CartItem{}
	}
	return s.apply(ctx, sid, token, items)
}

// Clear vide le panier
func (s *Store) Clear(ctx context.Context, sid, token string) error {
	_, err := s.apply(ctx, sid, token, []models.CartItem{})
	return err
}

// Adopt remplace le panier local par le panier serveur — appelé à la
// connexion : une fois authentifié, le serveur fait foi, et le panier local
// accumulé hors session est abandonné. Pas de resynchronisation en retour.
func (s *Store) Adopt(ctx context.Context, sid, token string) ([]models.CartItem, error) {
	remote, err := s.api.Cart(ctx, token)
	if err != nil {
		return nil, err
	}
	if remote == nil {
		remote = []models.CartItem{}
	}
	if err := s.save(ctx, sid, remote); err != nil {
		return nil, err
	}
	return remote, nil
}

// apply persiste localement puis déclenche la synchro distante si une session
// existe. L'écriture locale est la seule dont l'échec est remonté.
func (s *Store) apply(ctx context.Context, sid, token string, items []models.CartItem) ([]models.CartItem, error) {
	if err := s.save(ctx, sid, items); err != nil {
		return nil, err
	}
	s.sync(sid, token, items)
	return items, nil
}

func (s *Store) save(ctx context.Context, sid string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, cache.CartKey(sid), data, s.ttl).Err(); err != nil {
		return err
	}

	// Notifie le badge WebSocket
	payload := "updated"
	if len(items) == 0 {
		payload = "cleared"
	}
	if err := s.rdb.Publish(ctx, cache.CartChannel(sid), payload).Err(); err != nil {
		log.Printf("⚠️ Erreur publication panier %s: %v", sid, err)
	}
	return nil
}

// sync pousse le panier complet vers le backend en fire-and-forget. Aucun
// retry, aucune file : en cas de mutations rapprochées c'est la dernière
// réponse arrivée qui fixe l'état serveur, et l'état local reste la référence
// de l'UI quoi qu'il arrive.
func (s *Store) sync(sid, token string, items []models.CartItem) {
	if token == "" {
		return
	}

	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.api.SaveCart(ctx, token, snapshot); err != nil {
			log.Printf("⚠️ Synchro panier %s échouée (ignorée): %v", sid, err)
		}
	}()
}

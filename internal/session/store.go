package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"vibeshop_front_end/internal/api"
	"vibeshop_front_end/internal/cache"
	"vibeshop_front_end/internal/models"
)

// TTL aligné sur le cookie navigateur (30 jours)
const sessionTTL = 30 * 24 * time.Hour

// Store gère la session {user, access_token} d'un navigateur, persistée dans
// Redis en une seule entrée JSON : user et token sont écrits et effacés
// ensemble, jamais séparément.
type Store struct {
	rdb *redis.Client
	api *api.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, client *api.Client) *Store {
	return &Store{rdb: rdb, api: client, ttl: sessionTTL}
}

// Restore recharge la session persistée d'un navigateur. Entrée absente ou
// token expiré → session vide.
func (s *Store) Restore(ctx context.Context, sid string) (models.Session, error) {
	data, err := s.rdb.Get(ctx, cache.SessionKey(sid)).Result()
	if err == redis.Nil {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		// Entrée corrompue : on repart d'une session vide
		_ = s.rdb.Del(ctx, cache.SessionKey(sid)).Err()
		return models.Session{}, nil
	}

	if !sess.Active() || tokenExpired(sess.Token) {
		_ = s.rdb.Del(ctx, cache.SessionKey(sid)).Err()
		return models.Session{}, nil
	}
	return sess, nil
}

// Login authentifie auprès du backend puis persiste la session. Un seul SET
// Redis : impossible de se retrouver avec un user sans token ou l'inverse.
func (s *Store) Login(ctx context.Context, sid, username, password string) (models.Session, error) {
	sess, err := s.api.Login(ctx, username, password)
	if err != nil {
		return models.Session{}, err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return models.Session{}, err
	}
	if err := s.rdb.Set(ctx, cache.SessionKey(sid), data, s.ttl).Err(); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// Logout efface la session persistée du navigateur
func (s *Store) Logout(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, cache.SessionKey(sid)).Err()
}

// tokenExpired lit la claim exp du bearer token sans vérifier la signature —
// seul le backend peut la vérifier, le front s'en sert uniquement pour ne pas
// restaurer une session morte. Un token opaque (non-JWT) est accepté tel quel.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}

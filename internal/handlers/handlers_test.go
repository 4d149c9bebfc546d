package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"vibeshop_front_end/internal/api"
	"vibeshop_front_end/internal/cache"
	"vibeshop_front_end/internal/cart"
	"vibeshop_front_end/internal/middleware"
	"vibeshop_front_end/internal/models"
	"vibeshop_front_end/internal/session"
)

const testSID = "sid-test"

// newTestRouter monte les routes avec des stores isolés (Redis et backend
// factices) et une session injectée directement dans le contexte
func newTestRouter(t *testing.T, backendURL string, sess models.Session) (*gin.Engine, *redis.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	client := api.NewClient(backendURL)
	h := New(client, session.NewStore(rdb, client), cart.NewStore(rdb, client), rdb)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("sid", testSID)
		c.Set("session", sess)
		c.Next()
	})
	r.POST("/product/:id/reviews", h.SubmitReview)
	r.POST("/logout", h.Logout)
	r.DELETE("/admin/products/:id", middleware.RequireAdmin, h.AdminDelete)
	return r, rdb
}

func adminSession() models.Session {
	return models.Session{
		User:  &models.User{ID: "u1", Name: "Alice", Email: "alice@example.com", IsAdmin: true},
		Token: "tok",
	}
}

func TestSubmitReviewWithoutSessionIsRejectedLocally(t *testing.T) {
	var calls int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer backend.Close()

	r, _ := newTestRouter(t, backend.URL, models.Session{})

	req := httptest.NewRequest(http.MethodPost, "/product/p1/reviews", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("attendu redirection, obtenu %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("attendu redirection vers /login, obtenu %q", loc)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("rejet local attendu sans appel réseau, obtenu %d appels", got)
	}
}

func TestLogoutClearsSessionAndCart(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer backend.Close()

	r, rdb := newTestRouter(t, backend.URL, adminSession())
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	// Session et panier persistés avant déconnexion
	sessData, _ := json.Marshal(adminSession())
	rdb.Set(ctx, cache.SessionKey(testSID), sessData, 0)
	cartData, _ := json.Marshal([]models.CartItem{{ProductID: "A", Price: 10, Quantity: 1}})
	rdb.Set(ctx, cache.CartKey(testSID), cartData, 0)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("attendu redirection, obtenu %d", w.Code)
	}
	if rdb.Exists(ctx, cache.SessionKey(testSID)).Val() != 0 {
		t.Fatal("la session doit être purgée du cache")
	}
	var items []models.CartItem
	raw, err := rdb.Get(ctx, cache.CartKey(testSID)).Result()
	if err == nil {
		json.Unmarshal([]byte(raw), &items)
	}
	if len(items) != 0 {
		t.Fatalf("le panier doit être vidé au logout: %+v", items)
	}
}

func TestAdminDeleteForbiddenWithoutAdminFlag(t *testing.T) {
	var calls int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer backend.Close()

	sess := adminSession()
	sess.User.IsAdmin = false
	r, _ := newTestRouter(t, backend.URL, sess)

	req := httptest.NewRequest(http.MethodDelete, "/admin/products/p1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("attendu 403, obtenu %d", w.Code)
	}
	// Aucun appel privilégié tenté
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("aucun appel backend attendu, obtenu %d", got)
	}
}

func TestAdminDeleteProxiesToBackend(t *testing.T) {
	var deleted atomic.Value
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted.Store(r.URL.Path)
			if r.Header.Get("Authorization") != "Bearer tok" {
				t.Errorf("header Authorization inattendu: %q", r.Header.Get("Authorization"))
			}
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer backend.Close()

	r, _ := newTestRouter(t, backend.URL, adminSession())

	req := httptest.NewRequest(http.MethodDelete, "/admin/products/p1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("attendu 200, obtenu %d (%s)", w.Code, w.Body.String())
	}
	if got, _ := deleted.Load().(string); got != "/api/products/p1" {
		t.Fatalf("chemin supprimé inattendu: %q", got)
	}
}

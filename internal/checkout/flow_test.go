package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"vibeshop_front_end/internal/api"
	"vibeshop_front_end/internal/models"
)

func activeSession() models.Session {
	return models.Session{
		User:  &models.User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
		Token: "tok",
	}
}

func cartFixture() []models.CartItem {
	return []models.CartItem{
		{ProductID: "A", Title: "Produit A", Price: 10, Quantity: 2},
		{ProductID: "B", Title: "Produit B", Price: 5, Quantity: 1},
	}
}

func TestPlaceRequiresSession(t *testing.T) {
	var calls int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer backend.Close()

	flow := NewFlow(api.NewClient(backend.URL))

	_, err := flow.Place(context.Background(), models.Session{}, cartFixture(), models.Address{})
	if !errors.Is(err, api.ErrAuthRequired) {
		t.Fatalf("attendu ErrAuthRequired, obtenu %v", err)
	}
	if flow.State() != Failed {
		t.Fatalf("attendu état Failed, obtenu %s", flow.State())
	}
	// Rejet purement local : aucun appel réseau
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("aucun appel backend attendu, obtenu %d", got)
	}
}

func TestNoOrderWhenPaymentIntentFails(t *testing.T) {
	var orderCalls int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/payments/intent":
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Paiement indisponible"})
		case "/api/orders":
			atomic.AddInt32(&orderCalls, 1)
		default:
			http.NotFound(w, r)
		}
	}))
	defer backend.Close()

	flow := NewFlow(api.NewClient(backend.URL))

	_, err := flow.Place(context.Background(), activeSession(), cartFixture(), models.Address{Country: "US"})
	if err == nil {
		t.Fatal("erreur attendue")
	}
	if err.Error() != "Paiement indisponible" {
		t.Fatalf("le message serveur doit remonter tel quel, obtenu %q", err.Error())
	}
	if flow.State() != Failed {
		t.Fatalf("attendu état Failed, obtenu %s", flow.State())
	}
	// Jamais de commande partielle
	if got := atomic.LoadInt32(&orderCalls); got != 0 {
		t.Fatalf("la création de commande ne doit jamais être émise, obtenu %d appels", got)
	}
}

func TestPlaceSuccess(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/payments/intent":
			var payload struct {
				Amount   float64 `json:"amount"`
				Currency string  `json:"currency"`
			}
			json.NewDecoder(r.Body).Decode(&payload)
			if payload.Amount != 25 || payload.Currency != "usd" {
				t.Errorf("payment intent inattendu: %+v", payload)
			}
			json.NewEncoder(w).Encode(map[string]string{"id": "pi_42"})
		case "/api/orders":
			var payload api.OrderRequest
			json.NewDecoder(r.Body).Decode(&payload)
			if payload.PaymentIntentID != "pi_42" {
				t.Errorf("payment_intent_id manquant: %+v", payload)
			}
			if payload.TotalAmount != 25 || len(payload.Items) != 2 {
				t.Errorf("commande inattendue: %+v", payload)
			}
			json.NewEncoder(w).Encode(models.Order{ID: "order-1", TotalAmount: payload.TotalAmount, Currency: "usd"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer backend.Close()

	flow := NewFlow(api.NewClient(backend.URL))

	order, err := flow.Place(context.Background(), activeSession(), cartFixture(), models.Address{Country: "US"})
	if err != nil {
		t.Fatalf("commande: %v", err)
	}
	if order.ID != "order-1" {
		t.Fatalf("commande inattendue: %+v", order)
	}
	if flow.State() != Completed {
		t.Fatalf("attendu état Completed, obtenu %s", flow.State())
	}

	flow.Reset()
	if flow.State() != Idle {
		t.Fatalf("attendu retour à Idle, obtenu %s", flow.State())
	}
}

func TestOrderFailureLeavesFlowFailed(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/payments/intent":
			json.NewEncoder(w).Encode(map[string]string{"id": "pi_42"})
		case "/api/orders":
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Stock insuffisant"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer backend.Close()

	flow := NewFlow(api.NewClient(backend.URL))

	_, err := flow.Place(context.Background(), activeSession(), cartFixture(), models.Address{})
	if err == nil || err.Error() != "Stock insuffisant" {
		t.Fatalf("message serveur attendu tel quel, obtenu %v", err)
	}
	if flow.State() != Failed {
		t.Fatalf("attendu état Failed, obtenu %s", flow.State())
	}
}

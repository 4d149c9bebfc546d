package checkout

import (
	"context"

	"vibeshop_front_end/internal/api"
	"vibeshop_front_end/internal/models"
)

// State est l'état du tunnel de commande
type State string

const (
	Idle                  State = "idle"
	AwaitingPaymentIntent State = "awaiting_payment_intent"
	AwaitingOrderCreation State = "awaiting_order_creation"
	Completed             State = "completed"
	Failed                State = "failed"
)

// Flow déroule la commande : payment intent d'abord, création de commande
// ensuite. Si le payment intent échoue, l'appel de création de commande n'est
// jamais émis — aucune commande partielle possible. Aucun retry automatique :
// en cas d'échec le panier est laissé intact et le flow revient à Idle via
// Reset pour permettre une nouvelle tentative manuelle.
type Flow struct {
	api   *api.Client
	state State
}

func NewFlow(client *api.Client) *Flow {
	return &Flow{api: client, state: Idle}
}

// State retourne l'état courant du flow
func (f *Flow) State() State {
	return f.state
}

// Reset ramène le flow à Idle après l'affichage du résultat
func (f *Flow) Reset() {
	f.state = Idle
}

// Place exécute le tunnel complet pour le panier donné. Sans session active,
// le flow passe directement à Failed sans émettre le moindre appel réseau.
func (f *Flow) Place(ctx context.Context, sess models.Session, items []models.CartItem, addr models.Address) (models.Order, error) {
	if !sess.Active() {
		f.state = Failed
		return models.Order{}, api.ErrAuthRequired
	}

	total := models.CartTotal(items)

	f.state = AwaitingPaymentIntent
	intentID, err := f.api.CreatePaymentIntent(ctx, sess.Token, total, "usd")
	if err != nil {
		f.state = Failed
		return models.Order{}, err
	}

	f.state = AwaitingOrderCreation
	order, err := f.api.CreateOrder(ctx, sess.Token, api.OrderRequest{
		Items:           items,
		ShippingAddress: addr,
		TotalAmount:     total,
		Currency:        "usd",
		PaymentIntentID: intentID,
	})
	if err != nil {
		f.state = Failed
		return models.Order{}, err
	}

	f.state = Completed
	return order, nil
}

package models

import "time"

// Order est immuable côté front une fois créée par le checkout
type Order struct {
	ID              string     `json:"id"`
	Items           []CartItem `json:"items"`
	ShippingAddress Address    `json:"shipping_address"`
	TotalAmount     float64    `json:"total_amount"`
	Currency        string     `json:"currency"`
	CreatedAt       time.Time  `json:"created_at"`
	PaymentIntentID string     `json:"payment_intent_id"`
}

// ShortID retourne les 6 derniers caractères de l'ID pour l'affichage
func (o Order) ShortID() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}

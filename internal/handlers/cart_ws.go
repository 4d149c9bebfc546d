package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"vibeshop_front_end/internal/cache"
	"vibeshop_front_end/internal/middleware"
	"vibeshop_front_end/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWS pousse le badge panier en temps réel : chaque mutation publie sur le
// canal Redis du navigateur, le socket renvoie alors l'état recalculé
func (h *Handler) CartWS(c *gin.Context) {
	sid := middleware.SID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()

	pubsub := h.rdb.Subscribe(ctx, cache.CartChannel(sid))
	defer pubsub.Close()
	ch := pubsub.Channel()

	conn.WriteJSON(map[string]any{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}

			items, err := h.carts.Items(ctx, sid)
			if err != nil {
				items = []models.CartItem{}
			}

			response := map[string]any{
				"type":  "cart_updated",
				"items": items,
				"total": models.CartTotal(items),
				"count": models.CartCount(items),
			}
			if err := conn.WriteJSON(response); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

package models

// CartItem est une ligne du panier. Title, Price et Image sont un instantané
// du produit au moment de l'ajout : un changement de prix côté serveur ne
// modifie pas rétroactivement la ligne.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"qty"`
}

// CartTotal calcule le total du panier (somme prix × quantité)
func CartTotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CartCount calcule le nombre total d'articles (somme des quantités)
func CartCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

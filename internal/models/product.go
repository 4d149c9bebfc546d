package models

// Product est en lecture seule côté front : seul l'admin le crée ou le
// supprime, toujours via l'API backend.
type Product struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Brand        string   `json:"brand,omitempty"`
	CategoryName string   `json:"category_name,omitempty"`
	Images       []string `json:"images"`
	Rating       float64  `json:"rating"`
	NumReviews   int      `json:"num_reviews"`
	CountInStock int      `json:"count_in_stock"`
	Reviews      []Review `json:"reviews,omitempty"`
}

type ProductList struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
}

// ProductInput est le payload de création d'un produit (admin)
type ProductInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	CategoryName string   `json:"category_name,omitempty"`
	Images       []string `json:"images"`
	Brand        string   `json:"brand,omitempty"`
	CountInStock int      `json:"count_in_stock"`
}

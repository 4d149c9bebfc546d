package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// BackendURL retourne l'URL de base de l'API backend (catalogue, panier, commandes…)
func BackendURL() string {
	url := os.Getenv("BACKEND_URL")
	if url == "" {
		url = "http://localhost:8000"
	}
	return url
}

// Port retourne le port d'écoute du front
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return port
}

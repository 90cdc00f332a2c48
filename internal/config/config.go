package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// defaults couvre les variables dont la boutique a besoin pour tourner
// en local sans .env. Les secrets (JWT, SMTP, Scylla…) n'ont pas de
// défaut : mieux vaut un échec franc qu'une valeur silencieuse.
var defaults = map[string]string{
	"PORT":             "8080",
	"FRONTEND_URL":     "http://localhost:3000",
	"MERCHANT_UPI_VPA": "shopkart@upi",
	"MERCHANT_NAME":    "ShopKart",
	"MINIO_BUCKET":     "shopkart-images",
}

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	for key, value := range defaults {
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

package main

import (
	"context"
	"log"

	"shopkart_back_end/internal/catalog"
	"shopkart_back_end/internal/config"
	"shopkart_back_end/internal/database"
)

// Remplit le catalogue avec les produits de démonstration et les indexe
// dans Elasticsearch. À lancer une fois après scripts/scylladb_init.cql.
func main() {
	config.Load()
	database.ConnectDatabases()
	defer database.CloseScylla()

	if err := catalog.Seed(context.Background()); err != nil {
		log.Fatal("❌ Erreur seed catalogue:", err)
	}

	log.Println("✅ Catalogue initialisé")
}

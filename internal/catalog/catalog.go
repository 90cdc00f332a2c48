package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"shopkart_back_end/internal/cache"
	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"

	"github.com/gocql/gocql"
)

var ErrProductNotFound = errors.New("produit introuvable")

// GetProduct retourne un produit du catalogue par identifiant.
func GetProduct(ctx context.Context, id int) (models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return models.Product{}, fmt.Errorf("connexion keyspace products: %w", err)
	}

	var p models.Product
	err = session.Query(`
		SELECT product_id, name, price, rating, image_url, description, created_at, updated_at
		FROM products WHERE product_id = ?
	`, id).WithContext(ctx).Scan(&p.ID, &p.Name, &p.Price, &p.Rating,
		&p.ImageURL, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// ListProducts retourne tout le catalogue, via le cache Redis quand il est
// chaud.
func ListProducts(ctx context.Context) ([]models.Product, error) {
	if cached := cache.GetCachedProducts(ctx); cached != nil {
		return cached, nil
	}

	session, err := database.GetProductsSession()
	if err != nil {
		return nil, fmt.Errorf("connexion keyspace products: %w", err)
	}

	iter := session.Query(`
		SELECT product_id, name, price, rating, image_url, description, created_at, updated_at
		FROM products
	`).WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Price, &p.Rating, &p.ImageURL,
		&p.Description, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("lecture catalogue: %w", err)
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	cache.CacheProducts(ctx, products)
	return products, nil
}

// SaveProduct insère ou remplace un produit du catalogue et invalide le cache.
func SaveProduct(ctx context.Context, p models.Product) error {
	session, err := database.GetProductsSession()
	if err != nil {
		return fmt.Errorf("connexion keyspace products: %w", err)
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	err = session.Query(`
		INSERT INTO products (product_id, name, price, rating, image_url, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Price, p.Rating, p.ImageURL, p.Description,
		p.CreatedAt, p.UpdatedAt).WithContext(ctx).Exec()
	if err != nil {
		return err
	}

	cache.InvalidateProductCache(ctx)
	return nil
}

package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("commande introuvable")

// Gateway persiste les commandes dans le keyspace orders de ScyllaDB.
// Items et adresse sont stockés en JSON dans leurs colonnes.
type Gateway struct {
	session func() (*gocql.Session, error)
}

func NewGateway() *Gateway {
	return &Gateway{session: database.GetOrdersSession}
}

// Create enregistre la commande et retourne son identifiant.
func (g *Gateway) Create(ctx context.Context, order models.Order) (string, error) {
	session, err := g.session()
	if err != nil {
		return "", fmt.Errorf("connexion keyspace orders: %w", err)
	}

	orderID := uuid.NewString()

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return "", fmt.Errorf("sérialisation items: %w", err)
	}
	addressJSON, err := json.Marshal(order.Address)
	if err != nil {
		return "", fmt.Errorf("sérialisation adresse: %w", err)
	}

	err = session.Query(`
		INSERT INTO orders (order_id, user_id, items, subtotal, shipping, total, address, payment_method, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, orderID, order.UserID, string(itemsJSON), order.Subtotal, order.Shipping,
		order.Total, string(addressJSON), order.PaymentMethod, order.Status,
		order.CreatedAt).WithContext(ctx).Exec()
	if err != nil {
		log.Printf("❌ Erreur insertion commande: %v", err)
		return "", err
	}

	log.Printf("📦 Commande %s enregistrée pour user %s (%.2f₹)", orderID, order.UserID, order.Total)
	return orderID, nil
}

// ListByUser retourne les commandes d'un utilisateur, plus récentes d'abord.
func (g *Gateway) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	session, err := g.session()
	if err != nil {
		return nil, fmt.Errorf("connexion keyspace orders: %w", err)
	}

	iter := session.Query(`
		SELECT order_id, user_id, items, subtotal, shipping, total, address, payment_method, status, created_at
		FROM orders WHERE user_id = ? ALLOW FILTERING
	`, userID).WithContext(ctx).Iter()

	var orders []models.Order
	var (
		order                 models.Order
		itemsJSON, addressJSON string
	)
	for iter.Scan(&order.ID, &order.UserID, &itemsJSON, &order.Subtotal,
		&order.Shipping, &order.Total, &addressJSON, &order.PaymentMethod,
		&order.Status, &order.CreatedAt) {
		decodeOrder(&order, itemsJSON, addressJSON)
		orders = append(orders, order)
		order = models.Order{}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("lecture commandes: %w", err)
	}

	sortNewestFirst(orders)
	return orders, nil
}

// ListAll retourne toutes les commandes de la boutique, plus récentes
// d'abord. Vue back-office.
func (g *Gateway) ListAll(ctx context.Context) ([]models.Order, error) {
	session, err := g.session()
	if err != nil {
		return nil, fmt.Errorf("connexion keyspace orders: %w", err)
	}

	iter := session.Query(`
		SELECT order_id, user_id, items, subtotal, shipping, total, address, payment_method, status, created_at
		FROM orders
	`).WithContext(ctx).Iter()

	var orders []models.Order
	var (
		order                  models.Order
		itemsJSON, addressJSON string
	)
	for iter.Scan(&order.ID, &order.UserID, &itemsJSON, &order.Subtotal,
		&order.Shipping, &order.Total, &addressJSON, &order.PaymentMethod,
		&order.Status, &order.CreatedAt) {
		decodeOrder(&order, itemsJSON, addressJSON)
		orders = append(orders, order)
		order = models.Order{}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("lecture commandes: %w", err)
	}

	sortNewestFirst(orders)
	return orders, nil
}

// Scylla ne trie pas sans clé de clustering, on trie côté Go
func sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// GetByID retourne une commande par identifiant.
func (g *Gateway) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	session, err := g.session()
	if err != nil {
		return nil, fmt.Errorf("connexion keyspace orders: %w", err)
	}

	var (
		order                  models.Order
		itemsJSON, addressJSON string
	)
	err = session.Query(`
		SELECT order_id, user_id, items, subtotal, shipping, total, address, payment_method, status, created_at
		FROM orders WHERE order_id = ?
	`, orderID).WithContext(ctx).Scan(&order.ID, &order.UserID, &itemsJSON,
		&order.Subtotal, &order.Shipping, &order.Total, &addressJSON,
		&order.PaymentMethod, &order.Status, &order.CreatedAt)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	decodeOrder(&order, itemsJSON, addressJSON)
	return &order, nil
}

func decodeOrder(order *models.Order, itemsJSON, addressJSON string) {
	if err := json.Unmarshal([]byte(itemsJSON), &order.Items); err != nil {
		log.Printf("⚠️ Items illisibles pour la commande %s: %v", order.ID, err)
	}
	if err := json.Unmarshal([]byte(addressJSON), &order.Address); err != nil {
		log.Printf("⚠️ Adresse illisible pour la commande %s: %v", order.ID, err)
	}
}

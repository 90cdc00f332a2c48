package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/store"
)

// Étapes du checkout. Progression linéaire Address → Payment → Review,
// puis commit unique Review → Submitting → Success/Failed.
type Step int

const (
	StepAddress Step = iota
	StepPayment
	StepReview
	StepSubmitting
	StepSuccess
	StepFailed
)

func (s Step) String() string {
	switch s {
	case StepAddress:
		return "address"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepSubmitting:
		return "submitting"
	case StepSuccess:
		return "success"
	case StepFailed:
		return "failed"
	}
	return "unknown"
}

// Gateway est le collaborateur externe de persistance des commandes.
// Un seul appel par commit, aucun retry automatique.
type Gateway interface {
	Create(ctx context.Context, order models.Order) (string, error)
}

// Flow est la machine à états du checkout. Elle possède le brouillon de
// commande (adresse + paiement validés) et le jette après soumission.
// L'étape Submitting sert de verrou : toute ré-entrée est rejetée.
type Flow struct {
	mu      sync.Mutex
	step    Step
	cart    *store.CartStore
	gateway Gateway

	address models.Address
	payment models.Payment
	orderID string
	lastErr error
}

func NewFlow(cart *store.CartStore, gateway Gateway) *Flow {
	return &Flow{step: StepAddress, cart: cart, gateway: gateway}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// SubmitAddress valide l'adresse et avance Address → Payment.
func (f *Flow) SubmitAddress(a models.Address) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepAddress {
		return fmt.Errorf("%w: étape %s", ErrInvalidTransition, f.step)
	}
	if err := ValidateAddress(a); err != nil {
		return err
	}
	f.address = a
	f.step = StepPayment
	return nil
}

// SubmitPayment valide la méthode de paiement et avance Payment → Review.
func (f *Flow) SubmitPayment(p models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepPayment {
		return fmt.Errorf("%w: étape %s", ErrInvalidTransition, f.step)
	}
	if err := ValidatePayment(p); err != nil {
		return err
	}
	f.payment = p
	f.step = StepReview
	return nil
}

// Back recule d'une étape (Payment → Address, Review → Payment). Après un
// échec de soumission, Back ramène au paiement pour le corriger avant de
// retenter. Les données déjà saisies sont conservées.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepPayment:
		f.step = StepAddress
	case StepReview, StepFailed:
		f.step = StepPayment
	default:
		return fmt.Errorf("%w: étape %s", ErrInvalidTransition, f.step)
	}
	return nil
}

// Subtotal/Shipping/Total sont recalculés à chaque appel depuis le snapshot
// courant du panier.
func (f *Flow) Subtotal() float64 { return f.cart.Subtotal() }
func (f *Flow) ShippingFee() float64 {
	return Shipping(f.cart.Subtotal())
}
func (f *Flow) Total() float64 { return Total(f.cart.Subtotal()) }

// PlaceOrder exécute le commit Review → Submitting → Success/Failed.
// Exige un panier non vide et un utilisateur connecté. Un seul appel au
// collaborateur par commit ; en cas d'échec le flow revient en Failed et une
// nouvelle tentative est possible. Une fois Success atteint, le flow est figé.
func (f *Flow) PlaceOrder(ctx context.Context) (string, error) {
	f.mu.Lock()

	switch f.step {
	case StepReview, StepFailed:
		// commit ou re-tentative manuelle
	case StepSubmitting:
		f.mu.Unlock()
		return "", ErrSubmitting
	default:
		f.mu.Unlock()
		return "", fmt.Errorf("%w: étape %s", ErrInvalidTransition, f.step)
	}

	user := f.cart.User()
	if user == nil || user.ID == "" {
		f.mu.Unlock()
		return "", ErrAuthRequired
	}

	items := f.cart.Items()
	if len(items) == 0 {
		f.mu.Unlock()
		return "", ErrEmptyCart
	}

	subtotal := f.cart.Subtotal()
	order := models.Order{
		UserID:        user.ID,
		Items:         orderItems(items),
		Subtotal:      subtotal,
		Shipping:      Shipping(subtotal),
		Total:         Total(subtotal),
		Address:       f.address,
		PaymentMethod: f.payment.Method,
		Status:        models.OrderStatusPlaced,
		CreatedAt:     time.Now().UTC(),
	}

	f.step = StepSubmitting
	f.mu.Unlock()

	// appel unique au collaborateur, attendu jusqu'au bout
	orderID, err := f.gateway.Create(ctx, order)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		// retour en Failed, panier intact, re-tentative possible
		f.step = StepFailed
		f.lastErr = err
		return "", fmt.Errorf("%w: %v", ErrSubmission, err)
	}

	f.step = StepSuccess
	f.orderID = orderID
	f.lastErr = nil

	// succès ⇒ panier vidé ; un échec de persistance du snapshot n'annule
	// pas la commande déjà enregistrée
	_ = f.cart.Clear(ctx)

	return orderID, nil
}

// OrderID retourne l'identifiant de la commande après Success.
func (f *Flow) OrderID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderID
}

// Err retourne l'erreur de la dernière soumission échouée.
func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func orderItems(items []models.CartItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return out
}

package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"shopkart_back_end/internal/identity"
	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGateway struct {
	mu      sync.Mutex
	calls   int
	err     error
	orderID string
	last    models.Order

	// release bloque Create jusqu'à fermeture (tests de verrouillage)
	release chan struct{}
	entered chan struct{}
}

func (m *mockGateway) Create(_ context.Context, order models.Order) (string, error) {
	m.mu.Lock()
	m.calls++
	m.last = order
	entered := m.entered
	release := m.release
	m.mu.Unlock()

	if entered != nil {
		close(entered)
	}
	if release != nil {
		<-release
	}
	if m.err != nil {
		return "", m.err
	}
	if m.orderID == "" {
		return "order-1", nil
	}
	return m.orderID, nil
}

func (m *mockGateway) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newCheckoutCart(t *testing.T) *store.CartStore {
	t.Helper()
	cart := store.NewCartStore(store.NewMemoryKV())
	user := &identity.Identity{ID: "alice", Email: "alice@example.com"}
	require.NoError(t, cart.SetUser(context.Background(), user))
	require.NoError(t, cart.Add(context.Background(), models.Product{ID: 1, Name: "iPhone 14", Price: 69999}))
	return cart
}

func advanceToReview(t *testing.T, f *Flow) {
	t.Helper()
	require.NoError(t, f.SubmitAddress(validAddress()))
	require.NoError(t, f.SubmitPayment(models.Payment{Method: models.PaymentCOD}))
	require.Equal(t, StepReview, f.Step())
}

func TestFlow_HappyPath(t *testing.T) {
	gw := &mockGateway{orderID: "order-42"}
	cart := newCheckoutCart(t)
	f := NewFlow(cart, gw)

	require.Equal(t, StepAddress, f.Step())
	advanceToReview(t, f)

	orderID, err := f.PlaceOrder(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "order-42", orderID)
	assert.Equal(t, "order-42", f.OrderID())
	assert.Equal(t, StepSuccess, f.Step())
	assert.Empty(t, cart.Items(), "le panier doit être vidé après succès")
}

func TestFlow_OrderSnapshot(t *testing.T) {
	gw := &mockGateway{}
	cart := newCheckoutCart(t)
	require.NoError(t, cart.Add(context.Background(), models.Product{ID: 1, Name: "iPhone 14", Price: 69999}))
	f := NewFlow(cart, gw)
	advanceToReview(t, f)

	_, err := f.PlaceOrder(context.Background())
	require.NoError(t, err)

	order := gw.last
	assert.Equal(t, "alice", order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 2*69999.0, order.Subtotal, 0.001)
	assert.Equal(t, ShippingFlat, order.Shipping)
	assert.InDelta(t, 2*69999+99, order.Total, 0.001)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, validAddress(), order.Address)
	assert.Equal(t, models.PaymentCOD, order.PaymentMethod)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestFlow_InvalidAddressStaysOnStep(t *testing.T) {
	f := NewFlow(newCheckoutCart(t), &mockGateway{})

	a := validAddress()
	a.Pincode = ""
	assert.ErrorIs(t, f.SubmitAddress(a), ErrIncompleteAddress)
	assert.Equal(t, StepAddress, f.Step())
}

func TestFlow_InvalidPaymentStaysOnStep(t *testing.T) {
	f := NewFlow(newCheckoutCart(t), &mockGateway{})
	require.NoError(t, f.SubmitAddress(validAddress()))

	err := f.SubmitPayment(models.Payment{Method: models.PaymentUPI, UPIID: "pas-un-vpa"})
	assert.ErrorIs(t, err, ErrInvalidPayment)
	assert.Equal(t, StepPayment, f.Step())
}

func TestFlow_OutOfOrderTransitionsRejected(t *testing.T) {
	f := NewFlow(newCheckoutCart(t), &mockGateway{})

	// paiement avant adresse
	assert.ErrorIs(t, f.SubmitPayment(models.Payment{Method: models.PaymentCOD}), ErrInvalidTransition)

	// commande depuis l'étape adresse
	_, err := f.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// retour depuis la première étape
	assert.ErrorIs(t, f.Back(), ErrInvalidTransition)
}

func TestFlow_BackPreservesData(t *testing.T) {
	f := NewFlow(newCheckoutCart(t), &mockGateway{})
	advanceToReview(t, f)

	require.NoError(t, f.Back())
	assert.Equal(t, StepPayment, f.Step())
	require.NoError(t, f.Back())
	assert.Equal(t, StepAddress, f.Step())

	// les données saisies survivent aux retours
	require.NoError(t, f.SubmitAddress(validAddress()))
	require.NoError(t, f.SubmitPayment(models.Payment{Method: models.PaymentCOD}))
	assert.Equal(t, StepReview, f.Step())
}

func TestFlow_EmptyCartRejected(t *testing.T) {
	cart := store.NewCartStore(store.NewMemoryKV())
	require.NoError(t, cart.SetUser(context.Background(), &identity.Identity{ID: "alice"}))

	f := NewFlow(cart, &mockGateway{})
	advanceToReview(t, f)

	_, err := f.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestFlow_AnonymousRejected(t *testing.T) {
	cart := store.NewCartStore(store.NewMemoryKV())
	require.NoError(t, cart.SetUser(context.Background(), nil))
	require.NoError(t, cart.Add(context.Background(), models.Product{ID: 1, Price: 100}))

	f := NewFlow(cart, &mockGateway{})
	advanceToReview(t, f)

	_, err := f.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestFlow_FailureKeepsCartAndAllowsRetry(t *testing.T) {
	gw := &mockGateway{err: errors.New("scylla indisponible")}
	cart := newCheckoutCart(t)
	f := NewFlow(cart, gw)
	advanceToReview(t, f)

	_, err := f.PlaceOrder(context.Background())
	require.ErrorIs(t, err, ErrSubmission)
	assert.Equal(t, StepFailed, f.Step())
	assert.Error(t, f.Err())
	assert.Len(t, cart.Items(), 1, "le panier reste intact après échec")

	// nouvelle tentative depuis Failed
	gw.mu.Lock()
	gw.err = nil
	gw.mu.Unlock()

	orderID, err := f.PlaceOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "order-1", orderID)
	assert.Equal(t, StepSuccess, f.Step())
	assert.NoError(t, f.Err())
	assert.Equal(t, 2, gw.callCount())
}

func TestFlow_BackFromFailureToAmendPayment(t *testing.T) {
	gw := &mockGateway{err: errors.New("scylla indisponible")}
	cart := newCheckoutCart(t)
	f := NewFlow(cart, gw)
	advanceToReview(t, f)

	_, err := f.PlaceOrder(context.Background())
	require.ErrorIs(t, err, ErrSubmission)
	require.Equal(t, StepFailed, f.Step())

	// après l'échec on peut revenir corriger le moyen de paiement
	require.NoError(t, f.Back())
	assert.Equal(t, StepPayment, f.Step())

	gw.mu.Lock()
	gw.err = nil
	gw.mu.Unlock()

	require.NoError(t, f.SubmitPayment(models.Payment{Method: models.PaymentUPI, UPIID: "alice@upi"}))
	orderID, err := f.PlaceOrder(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)
	assert.Equal(t, models.PaymentUPI, gw.last.PaymentMethod)
}

func TestFlow_SubmittingLockRejectsReentry(t *testing.T) {
	gw := &mockGateway{
		release: make(chan struct{}),
		entered: make(chan struct{}),
	}
	cart := newCheckoutCart(t)
	f := NewFlow(cart, gw)
	advanceToReview(t, f)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = f.PlaceOrder(context.Background())
	}()

	<-gw.entered
	assert.Equal(t, StepSubmitting, f.Step())

	// double soumission pendant l'envoi
	_, err := f.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrSubmitting)

	close(gw.release)
	<-done

	assert.Equal(t, StepSuccess, f.Step())
	assert.Equal(t, 1, gw.callCount())
}

func TestFlow_SuccessIsTerminal(t *testing.T) {
	f := NewFlow(newCheckoutCart(t), &mockGateway{})
	advanceToReview(t, f)

	_, err := f.PlaceOrder(context.Background())
	require.NoError(t, err)

	_, err = f.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, f.SubmitAddress(validAddress()), ErrInvalidTransition)
}

func TestFlow_TotalsFollowCart(t *testing.T) {
	cart := newCheckoutCart(t)
	f := NewFlow(cart, &mockGateway{})

	assert.InDelta(t, 69999.0, f.Subtotal(), 0.001)
	assert.Equal(t, ShippingFlat, f.ShippingFee())
	assert.InDelta(t, 69999+99, f.Total(), 0.001)

	require.NoError(t, cart.Add(context.Background(), models.Product{ID: 2, Name: "boAt Airdopes", Price: 1299}))
	assert.InDelta(t, 69999+1299+99, f.Total(), 0.001)
}

func TestFlow_EndToEndCODOrder(t *testing.T) {
	ctx := context.Background()
	cart := store.NewCartStore(store.NewMemoryKV())
	require.NoError(t, cart.SetUser(ctx, &identity.Identity{ID: "alice", Email: "alice@example.com"}))
	require.NoError(t, cart.Add(ctx, models.Product{ID: 1, Name: "iPhone 14", Price: 69999}))
	require.NoError(t, cart.Add(ctx, models.Product{ID: 7, Name: "AirPods Pro", Price: 24999}))

	gw := &mockGateway{}
	f := NewFlow(cart, gw)
	advanceToReview(t, f)

	assert.InDelta(t, 94998.0, f.Subtotal(), 0.001)
	assert.Equal(t, 99.0, f.ShippingFee())
	assert.InDelta(t, 95097.0, f.Total(), 0.001)

	orderID, err := f.PlaceOrder(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)
	assert.Empty(t, cart.Items())
	assert.InDelta(t, 95097.0, gw.last.Total, 0.001)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "address", StepAddress.String())
	assert.Equal(t, "payment", StepPayment.String())
	assert.Equal(t, "review", StepReview.String())
	assert.Equal(t, "submitting", StepSubmitting.String())
	assert.Equal(t, "success", StepSuccess.String())
	assert.Equal(t, "failed", StepFailed.String())
	assert.Equal(t, "unknown", Step(99).String())
}

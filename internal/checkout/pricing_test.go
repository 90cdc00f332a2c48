package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShipping_FreeOnEmptyCart(t *testing.T) {
	assert.Equal(t, 0.0, Shipping(0))
}

func TestShipping_FlatFeeOnAnySubtotal(t *testing.T) {
	assert.Equal(t, ShippingFlat, Shipping(0.01))
	assert.Equal(t, ShippingFlat, Shipping(69999))
	assert.Equal(t, ShippingFlat, Shipping(1_000_000))
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 0.0, Total(0))
	// deux téléphones à 69999 et un casque à 1299
	assert.InDelta(t, 2*69999+1299+99, Total(2*69999+1299), 0.001)
}

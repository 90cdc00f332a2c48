package checkout

// Frais de port forfaitaires (₹), offerts seulement sur panier vide
const ShippingFlat = 99.0

// Shipping retourne les frais de port pour un sous-total donné.
func Shipping(subtotal float64) float64 {
	if subtotal > 0 {
		return ShippingFlat
	}
	return 0
}

// Total = sous-total + frais de port. Toujours recalculé depuis le panier,
// jamais mis en cache.
func Total(subtotal float64) float64 {
	return subtotal + Shipping(subtotal)
}

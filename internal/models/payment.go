package models

// Méthodes de paiement acceptées au checkout
const (
	PaymentCOD  = "COD"
	PaymentUPI  = "UPI"
	PaymentCard = "CARD"
)

type Payment struct {
	Method string `json:"method"`
	UPIID  string `json:"upi_id,omitempty"`
	Card   Card   `json:"card,omitempty"`
}

type Card struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

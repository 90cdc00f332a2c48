package checkout

import (
	"testing"

	"shopkart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func validAddress() models.Address {
	return models.Address{
		FullName: "Asha Verma",
		Phone:    "9876543210",
		Street:   "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
	}
}

func validCard() models.Payment {
	return models.Payment{
		Method: models.PaymentCard,
		Card: models.Card{
			Number: "4111 1111 1111 1111",
			Name:   "Asha Verma",
			Expiry: "09/27",
			CVV:    "123",
		},
	}
}

func TestValidateAddress_AllFieldsPresent(t *testing.T) {
	assert.NoError(t, ValidateAddress(validAddress()))
}

func TestValidateAddress_MissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Address)
	}{
		{"fullName", func(a *models.Address) { a.FullName = "" }},
		{"phone", func(a *models.Address) { a.Phone = "" }},
		{"street", func(a *models.Address) { a.Street = "" }},
		{"city", func(a *models.Address) { a.City = "" }},
		{"state", func(a *models.Address) { a.State = "" }},
		{"pincode", func(a *models.Address) { a.Pincode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAddress()
			tt.mutate(&a)
			assert.ErrorIs(t, ValidateAddress(a), ErrIncompleteAddress)
		})
	}
}

func TestValidateAddress_WhitespaceOnlyIsMissing(t *testing.T) {
	a := validAddress()
	a.City = "   "
	assert.ErrorIs(t, ValidateAddress(a), ErrIncompleteAddress)
}

func TestValidatePayment_CODAlwaysValid(t *testing.T) {
	assert.NoError(t, ValidatePayment(models.Payment{Method: models.PaymentCOD}))
}

func TestValidatePayment_UPI(t *testing.T) {
	assert.NoError(t, ValidatePayment(models.Payment{Method: models.PaymentUPI, UPIID: "asha@upi"}))

	assert.ErrorIs(t, ValidatePayment(models.Payment{Method: models.PaymentUPI, UPIID: ""}), ErrInvalidPayment)
	assert.ErrorIs(t, ValidatePayment(models.Payment{Method: models.PaymentUPI, UPIID: "asha-upi"}), ErrInvalidPayment)
}

func TestValidatePayment_CardValid(t *testing.T) {
	assert.NoError(t, ValidatePayment(validCard()))
}

func TestValidatePayment_CardNumberIgnoresSpaces(t *testing.T) {
	p := validCard()
	p.Card.Number = "4111111111111111"
	assert.NoError(t, ValidatePayment(p))
}

func TestValidatePayment_CardRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Payment)
	}{
		{"15 chiffres", func(p *models.Payment) { p.Card.Number = "411111111111111" }},
		{"17 chiffres", func(p *models.Payment) { p.Card.Number = "41111111111111111" }},
		{"lettres dans le numéro", func(p *models.Payment) { p.Card.Number = "4111x11111111111" }},
		{"nom vide", func(p *models.Payment) { p.Card.Name = "  " }},
		{"expiration sans slash", func(p *models.Payment) { p.Card.Expiry = "0927" }},
		{"expiration trop longue", func(p *models.Payment) { p.Card.Expiry = "09/2027" }},
		{"cvv 2 chiffres", func(p *models.Payment) { p.Card.CVV = "12" }},
		{"cvv 4 chiffres", func(p *models.Payment) { p.Card.CVV = "1234" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validCard()
			tt.mutate(&p)
			assert.ErrorIs(t, ValidatePayment(p), ErrInvalidPayment)
		})
	}
}

func TestValidatePayment_UnknownMethod(t *testing.T) {
	assert.ErrorIs(t, ValidatePayment(models.Payment{Method: "CHEQUE"}), ErrInvalidPayment)
}

package checkout

import (
	"fmt"
	"regexp"
	"strings"

	"shopkart_back_end/internal/models"
)

var (
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3}$`)
	digitsPattern = regexp.MustCompile(`^\d{16}$`)
)

// ValidateAddress vérifie que les six champs de livraison sont renseignés.
func ValidateAddress(a models.Address) error {
	fields := map[string]string{
		"fullName": a.FullName,
		"phone":    a.Phone,
		"street":   a.Street,
		"city":     a.City,
		"state":    a.State,
		"pincode":  a.Pincode,
	}
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: champ %s manquant", ErrIncompleteAddress, name)
		}
	}
	return nil
}

// ValidatePayment vérifie la validité de la méthode choisie :
//   - COD : toujours valide
//   - UPI : identifiant non vide contenant "@"
//   - CARD : numéro de 16 chiffres (espaces ignorés), nom non vide,
//     expiration MM/YY, cvv de 3 chiffres
func ValidatePayment(p models.Payment) error {
	switch p.Method {
	case models.PaymentCOD:
		return nil

	case models.PaymentUPI:
		if p.UPIID == "" || !strings.Contains(p.UPIID, "@") {
			return fmt.Errorf("%w: identifiant UPI incorrect", ErrInvalidPayment)
		}
		return nil

	case models.PaymentCard:
		number := strings.ReplaceAll(p.Card.Number, " ", "")
		if !digitsPattern.MatchString(number) {
			return fmt.Errorf("%w: numéro de carte incorrect", ErrInvalidPayment)
		}
		if strings.TrimSpace(p.Card.Name) == "" {
			return fmt.Errorf("%w: nom du titulaire manquant", ErrInvalidPayment)
		}
		if !expiryPattern.MatchString(p.Card.Expiry) {
			return fmt.Errorf("%w: date d'expiration incorrecte", ErrInvalidPayment)
		}
		if !cvvPattern.MatchString(p.Card.CVV) {
			return fmt.Errorf("%w: cvv incorrect", ErrInvalidPayment)
		}
		return nil

	default:
		return fmt.Errorf("%w: méthode inconnue %q", ErrInvalidPayment, p.Method)
	}
}

package models

// Address est l'adresse de livraison saisie au checkout.
// Valide = les six champs non vides.
type Address struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

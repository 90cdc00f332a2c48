package models

type User struct {
	ID       string `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Provider string `json:"provider,omitempty"`
}

// Profile regroupe les infos de livraison sauvegardées de l'utilisateur.
// Sert d'adresse pré-remplie au checkout.
type Profile struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

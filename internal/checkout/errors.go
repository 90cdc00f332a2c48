package checkout

import "errors"

var (
	// Étape adresse : un des six champs est vide
	ErrIncompleteAddress = errors.New("adresse incomplète")
	// Étape paiement : la méthode choisie n'est pas valide
	ErrInvalidPayment = errors.New("méthode de paiement invalide")
	// Commande impossible sans panier
	ErrEmptyCart = errors.New("panier vide")
	// Commande impossible sans utilisateur connecté
	ErrAuthRequired = errors.New("utilisateur non authentifié")
	// Un envoi est déjà en cours, pas de double soumission
	ErrSubmitting = errors.New("commande déjà en cours d'envoi")
	// Opération incompatible avec l'étape courante
	ErrInvalidTransition = errors.New("étape de checkout invalide")
	// Le collaborateur de persistance a rejeté la commande
	ErrSubmission = errors.New("échec de l'enregistrement de la commande")
)

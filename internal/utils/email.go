package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"shopkart_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderConfirmationEmail envoie la confirmation de commande, avec la
// facture PDF en pièce jointe si fournie.
func SendOrderConfirmationEmail(to string, order models.Order, pdfAttachment []byte) error {
	msg := mail.NewMsg()

	if err := msg.From("noreply@shopkart.in"); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("SHOPKART — Commande %s confirmée", order.ID))
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order))

	if pdfAttachment != nil {
		msg.AttachReader("facture_shopkart.pdf", bytes.NewReader(pdfAttachment))
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}

// SendPasswordResetEmail envoie le lien de réinitialisation de mot de passe
func SendPasswordResetEmail(to, resetLink string) error {
	msg := mail.NewMsg()

	if err := msg.From("noreply@shopkart.in"); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("SHOPKART — Réinitialisation du mot de passe")
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(`
		<p>Bonjour,</p>
		<p>Pour réinitialiser votre mot de passe, cliquez sur ce lien (valable 1 heure) :</p>
		<p><a href="%s">%s</a></p>
		<p>Si vous n'êtes pas à l'origine de cette demande, ignorez cet email.</p>`,
		resetLink, resetLink))

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi du lien de réinitialisation à", to)
	return client.DialAndSend(msg)
}

// orderConfirmationHTML génère le HTML de confirmation de commande
func orderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>₹%.0f</td>
				<td>₹%.0f</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Votre commande est confirmée</h2>
		<p>Bonjour,</p>
		<p>Votre commande <strong>%s</strong> a bien été enregistrée.</p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Produit</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right;">Livraison:</td>
					<td style="padding: 10px;">₹%.0f</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">₹%.0f</td>
				</tr>
			</tfoot>
		</table>

		<p style="margin-top: 30px; color: #555;">
			Merci pour votre confiance,<br>
			<strong>L'équipe SHOPKART</strong>
		</p>
	</div>
</body>
</html>`, order.ID, itemsHTML, order.Shipping, order.Total)
}

package utils

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// GenerateUPIQR génère un QR de paiement UPI en base64 prêt à mettre dans
// <img src="...">. Format deeplink upi://pay standard.
func GenerateUPIQR(payeeVPA, payeeName string, amount float64, ref string) (string, error) {
	q := url.Values{}
	q.Set("pa", payeeVPA)
	q.Set("pn", payeeName)
	q.Set("am", fmt.Sprintf("%.2f", amount))
	q.Set("cu", "INR")
	if ref != "" {
		q.Set("tn", ref)
	}

	uri := "upi://pay?" + q.Encode()

	png, err := qrcode.Encode(uri, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

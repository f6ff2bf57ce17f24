package services

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"loja-backend/models"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

// SendOrderConfirmation emails a summary of the placed order. Callers treat
// failure as non-fatal; the order is already committed.
func (s *EmailService) SendOrderConfirmation(toEmail string, order *models.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Pedido #%d confirmado - Loja", order.ID))

	itemRows := ""
	for _, item := range order.Items {
		itemRows += fmt.Sprintf(
			`<tr><td>%s</td><td style="text-align:center">%d</td><td style="text-align:right">R$ %s</td></tr>`,
			item.ProductName, item.Quantity, item.Total().StringFixed(2),
		)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Pedido #%d confirmado</h2>
        <p>Recebemos o seu pedido e ele ja esta com status <strong>%s</strong>.</p>
        <table style="width:100%%; border-collapse: collapse;">
            <tr><th align="left">Produto</th><th>Qtd</th><th align="right">Total</th></tr>
            %s
        </table>
        <p style="text-align:right; font-size: 18px;"><strong>Total: R$ %s</strong></p>
        <p style="color: #666; font-size: 12px;">Voce recebera novas atualizacoes conforme o pedido avancar.</p>
    </div>
</body>
</html>`, order.ID, order.Status, itemRows, order.Total().StringFixed(2))

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

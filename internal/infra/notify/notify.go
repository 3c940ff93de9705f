package notify

import (
	"fmt"
	"log"
	"path/filepath"
)

// Mailer sends one email, optionally with a PDF attached.
type Mailer interface {
	Send(to, subject, text, attachmentPath string) error
}

// SMSSender sends one text message.
type SMSSender interface {
	Send(to, body string) error
}

type Config struct {
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	SendGridKey string

	TwilioSID   string
	TwilioToken string
	TwilioFrom  string

	PublicBaseURL string
	AttachInvoice bool
}

// Notifier holds the process-wide notification capabilities, selected once
// at startup. Missing credentials degrade each capability to a logged no-op.
// Every method swallows provider failures; callers fire these from detached
// goroutines and never depend on the outcome.
type Notifier struct {
	mailer  Mailer
	sms     SMSSender
	baseURL string
	attach  bool
}

func New(cfg Config) *Notifier {
	var mailer Mailer = noopMailer{}
	switch {
	case cfg.SMTPHost != "" && cfg.SMTPUser != "":
		mailer = &smtpMailer{
			host: cfg.SMTPHost,
			port: cfg.SMTPPort,
			user: cfg.SMTPUser,
			pass: cfg.SMTPPass,
		}
	case cfg.SendGridKey != "":
		mailer = newSendGridMailer(cfg.SendGridKey)
	}

	var sms SMSSender = noopSMS{}
	if cfg.TwilioSID != "" && cfg.TwilioToken != "" {
		sms = newTwilioSMS(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)
	}

	return &Notifier{
		mailer:  mailer,
		sms:     sms,
		baseURL: cfg.PublicBaseURL,
		attach:  cfg.AttachInvoice,
	}
}

// RegistrationEmail welcomes a newly registered user.
func (n *Notifier) RegistrationEmail(to, name string) {
	body := fmt.Sprintf(
		"Hola %s,\n\nTu cuenta fue creada exitosamente. Ya puedes acceder a todos los servicios de Parqueo Arquitectura.\n\nSi no creaste esta cuenta, ignora este correo.",
		name)
	if err := n.mailer.Send(to, "Confirmación de registro - Parqueo Arquitectura", body, ""); err != nil {
		log.Println("Error enviando correo de registro:", err)
	}
}

// InvoiceEmail delivers the invoice, attached or as a download link
// depending on the deployment mode.
func (n *Notifier) InvoiceEmail(to, ticketID, amount, pdfPath string) {
	subject := fmt.Sprintf("Factura Ticket %s", ticketID)
	body := fmt.Sprintf("Se cargó Q%s por su estadía.", amount)
	attachment := pdfPath
	if !n.attach {
		body += fmt.Sprintf("\n\nDescargue su factura: %s/invoices/%s", n.baseURL, filepath.Base(pdfPath))
		attachment = ""
	}
	if err := n.mailer.Send(to, subject, body, attachment); err != nil {
		log.Println("No se pudo enviar email:", err)
	}
}

// PaymentSMS confirms a successful charge by text message.
func (n *Notifier) PaymentSMS(to, ticketID, amount string) {
	if err := n.sms.Send(to, fmt.Sprintf("Pago exitoso Q%s - Ticket %s", amount, ticketID)); err != nil {
		log.Println("No se pudo enviar SMS:", err)
	}
}

type noopMailer struct{}

func (noopMailer) Send(to, subject, _, _ string) error {
	log.Printf("Mailer no configurado; correo simulado: to=%s subject=%q", to, subject)
	return nil
}

type noopSMS struct{}

func (noopSMS) Send(to, body string) error {
	log.Printf("Twilio no configurado; SMS simulado: to=%s body=%q", to, body)
	return nil
}

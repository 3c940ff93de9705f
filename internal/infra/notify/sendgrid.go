package notify

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendgridFrom = "facturacion@parqueo-arquitectura.com"

type sendgridMailer struct {
	client *sendgrid.Client
}

func newSendGridMailer(apiKey string) *sendgridMailer {
	return &sendgridMailer{client: sendgrid.NewSendClient(apiKey)}
}

func (m *sendgridMailer) Send(to, subject, text, attachmentPath string) error {
	from := mail.NewEmail("Parqueo Arquitectura", sendgridFrom)
	msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), text, "")

	if attachmentPath != "" {
		data, err := os.ReadFile(attachmentPath)
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(data))
		att.SetType("application/pdf")
		att.SetFilename(filepath.Base(attachmentPath))
		att.SetDisposition("attachment")
		msg.AddAttachment(att)
	}

	resp, err := m.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

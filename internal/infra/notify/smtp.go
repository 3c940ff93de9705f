package notify

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
)

type smtpMailer struct {
	host string
	port string
	user string
	pass string
}

func (m *smtpMailer) Send(to, subject, text, attachmentPath string) error {
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)

	msg, err := m.buildMessage(to, subject, text, attachmentPath)
	if err != nil {
		return err
	}
	return smtp.SendMail(m.host+":"+m.port, auth, m.user, []string{to}, msg)
}

func (m *smtpMailer) buildMessage(to, subject, text, attachmentPath string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("From: \"Parqueo Arquitectura\" <" + m.user + ">\r\n")
	buf.WriteString("To: " + to + "\r\n")
	buf.WriteString("Subject: " + subject + "\r\n")

	if attachmentPath == "" {
		buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		buf.WriteString(text + "\r\n")
		return buf.Bytes(), nil
	}

	data, err := os.ReadFile(attachmentPath)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}

	const boundary = "parqueo-pagos-mixed"
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: multipart/mixed; boundary=" + boundary + "\r\n\r\n")

	buf.WriteString("--" + boundary + "\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	buf.WriteString(text + "\r\n\r\n")

	buf.WriteString("--" + boundary + "\r\n")
	buf.WriteString("Content-Type: application/pdf\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	buf.WriteString("Content-Disposition: attachment; filename=\"" + filepath.Base(attachmentPath) + "\"\r\n\r\n")

	encoded := base64.StdEncoding.EncodeToString(data)
	// 76-char lines per RFC 2045
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76] + "\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded + "\r\n")
	buf.WriteString("--" + boundary + "--\r\n")

	return buf.Bytes(), nil
}

package infra

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/chars222/lista-compras/internal/config"
)

// Mailer sends a lista as a PDF attachment over plain SMTP.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     from,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Configurado reports whether SMTP settings were provided; without them the
// share endpoint answers 503 instead of failing mid-send.
func (m *Mailer) Configurado() bool {
	return m.host != ""
}

// EnviarLista mails the rendered PDF to a single recipient.
func (m *Mailer) EnviarLista(to, asunto, cuerpo string, pdf []byte) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = asunto
	e.Text = []byte(cuerpo)

	if _, err := e.Attach(bytes.NewReader(pdf), "lista.pdf", "application/pdf"); err != nil {
		return fmt.Errorf("mailer: adjuntar PDF: %w", err)
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}

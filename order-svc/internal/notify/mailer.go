package notify

import (
	"context"

	"gopkg.in/gomail.v2"
)

const (
	InlineImageName = "qr_code.png"
	InlineContentID = "qrcode@feastly"
)

type Mail struct {
	To      string
	Subject string
	HTML    string
	// InlineImagePath is embedded as InlineImageName under InlineContentID.
	InlineImagePath string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, mail Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.dialer.DialAndSend(m.compose(mail))
}

func (m *SMTPMailer) compose(mail Mail) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/html", mail.HTML)
	if mail.InlineImagePath != "" {
		msg.Embed(mail.InlineImagePath,
			gomail.Rename(InlineImageName),
			gomail.SetHeader(map[string][]string{"Content-ID": {"<" + InlineContentID + ">"}}),
		)
	}
	return msg
}

var _ Mailer = (*SMTPMailer)(nil)

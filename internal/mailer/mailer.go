package mailer

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/go-mail/mail/v2"
)

//go:embed "templates"
var templateFS embed.FS

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}

type SMTPMailer struct {
	dialer *mail.Dialer
	sender string
}

func NewSMTPMailer(host string, port int, username, password, sender string) *SMTPMailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return &SMTPMailer{
		dialer: dialer,
		sender: sender,
	}
}

// Send renders templateFile with data and delivers it, retrying up to three
// times on transient SMTP failures.
func (m *SMTPMailer) Send(recipient, templateFile string, data any) error {
	msg, err := m.message(recipient, templateFile, data)
	if err != nil {
		return err
	}

	for i := 1; i <= 3; i++ {
		err = m.dialer.DialAndSend(msg)
		if err == nil {
			return nil
		}

		time.Sleep(500 * time.Millisecond)
	}

	return err
}

func (m *SMTPMailer) message(recipient, templateFile string, data any) (*mail.Message, error) {
	content, err := render(templateFile, data)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", content.subject)
	msg.SetBody("text/plain", content.plain)
	msg.AddAlternative("text/html", content.html)

	return msg, nil
}

type rendered struct {
	subject string
	plain   string
	html    string
}

func render(templateFile string, data any) (*rendered, error) {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return nil, err
	}

	var out rendered

	for name, dst := range map[string]*string{
		"subject":   &out.subject,
		"plainBody": &out.plain,
		"htmlBody":  &out.html,
	} {
		buf := new(bytes.Buffer)

		err = tmpl.ExecuteTemplate(buf, name, data)
		if err != nil {
			return nil, err
		}

		*dst = buf.String()
	}

	return &out, nil
}
